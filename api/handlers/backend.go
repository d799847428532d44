package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	services "github.com/twotier/twotier-services/api/services"
	"github.com/twotier/twotier-services/internal/appconfig"
	"github.com/twotier/twotier-services/models"
)

// @Summary Backend status
// @Description Returns the backend status message. Also serves as the load balancer health check.
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router / [get]
func GetStatus(cfg *appconfig.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())
		logger.Debug().Msg("serving status")

		response := models.StatusResponse{
			Message: cfg.Backend.StatusMessage,
		}

		services.HandleSuccessResponse(w, http.StatusOK, nil, response)
	}
}

// @Summary Backend demo data
// @Description Returns the demo user list and message consumed by the frontend.
// @Produce json
// @Success 200 {object} models.BackendResponse
// @Router /data [get]
func GetData(cfg *appconfig.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())
		logger.Debug().Msg("serving data")

		users := cfg.Backend.Users
		if users == nil {
			users = []string{}
		}

		response := models.BackendResponse{
			Users:   users,
			Message: cfg.Backend.DataMessage,
		}

		services.HandleSuccessResponse(w, http.StatusOK, nil, response)
	}
}

// NotFound returns the JSON error envelope for unknown routes.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		services.HandleErrResponse(w, http.StatusNotFound, errors.New("route not found"))
	})
}
