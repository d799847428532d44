package cmd

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/twotier/twotier-services/api/handlers"
	"github.com/twotier/twotier-services/api/middleware"
	services "github.com/twotier/twotier-services/api/services"
	"github.com/twotier/twotier-services/internal/metrics"
)

var (
	frontendHost string
	frontendPort int
)

var frontendCmd = &cobra.Command{
	Use:   "serve-frontend",
	Short: "Run the frontend page service",
	Long:  `Run the public frontend service that fetches the user list from the backend and renders the home page.`,
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		m := metrics.New(prometheus.DefaultRegisterer)

		// Client for the backend tier
		client := services.NewBackendClient(appCfg.Frontend.BackendURL,
			appCfg.Frontend.FetchTimeout())

		log.Info().Str("backend_url", appCfg.Frontend.BackendURL).
			Msg("frontend configured")

		// Create routes
		r := mux.NewRouter()
		r.Use(middleware.WithRequestID)
		r.Use(middleware.WithLogger)
		r.Use(middleware.WithMetrics(m))

		// Register the routes
		r.HandleFunc("/", handlers.GetHome(client, m)).Methods(http.MethodGet)
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

		host := resolveHost(frontendHost)
		port := resolvePort(frontendPort)

		log.Info().Msg(fmt.Sprintf("Frontend started at %s:%d", host, port))
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(frontendCmd)
	frontendCmd.Flags().StringVar(&frontendHost, "host", "", "host to run the server on, defaults from config")
	frontendCmd.Flags().IntVar(&frontendPort, "port", 8080, "port to run the server on")
}
