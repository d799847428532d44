package handlers

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/twotier/twotier-services/internal/metrics"
	"github.com/twotier/twotier-services/models"
)

//go:embed templates/home.html
var homeHTML string

var homeTmpl = template.Must(template.New("home").Parse(homeHTML))

// BackendFetcher retrieves the user list payload from the backend tier.
type BackendFetcher interface {
	FetchData(ctx context.Context) (*models.BackendResponse, error)
}

// GetHome renders the frontend home page from the backend data route. Any
// failure to reach or decode the backend is folded into the page as an error
// message; the route always answers 200 so the load balancer health check
// stays green while the backend tier is down.
func GetHome(client BackendFetcher, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())

		vm := models.FrontendViewModel{Users: []string{}}

		data, err := client.FetchData(r.Context())
		if err != nil {
			logger.Warn().Err(err).Msg("failed to fetch backend data")
			m.BackendFetchFailures.Inc()
			vm.Error = fmt.Sprintf("Error fetching data from backend: %v", err)
		} else {
			vm.Users = data.Users
			vm.Message = data.Message
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := homeTmpl.Execute(w, vm); err != nil {
			logger.Error().Err(err).Msg("failed to render home page")
		}
	}
}
