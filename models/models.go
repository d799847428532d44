package models

// StatusResponse is the payload served on the backend root route. The root
// route doubles as the load balancer health check.
type StatusResponse struct {
	Message string `json:"message"`
}

// BackendResponse is the payload served on the backend data route and decoded
// by the frontend. A fresh value is built per request.
type BackendResponse struct {
	Users   []string `json:"users"`
	Message string   `json:"message"`
}

// FrontendViewModel carries the fields rendered into the frontend home page.
// It is built per request from a decoded BackendResponse, or from the caught
// failure when the backend could not be reached.
type FrontendViewModel struct {
	Users   []string
	Message string
	Error   string
}
