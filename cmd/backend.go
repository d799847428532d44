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
	"github.com/twotier/twotier-services/internal/metrics"
)

var (
	backendHost string
	backendPort int
)

var backendCmd = &cobra.Command{
	Use:   "serve-backend",
	Short: "Run the backend JSON API",
	Long:  `Run the internal backend service serving the status and demo data routes.`,
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		m := metrics.New(prometheus.DefaultRegisterer)

		// Create routes
		r := mux.NewRouter()
		r.Use(middleware.WithRequestID)
		r.Use(middleware.WithLogger)
		r.Use(middleware.WithMetrics(m))

		// Register the routes
		r.HandleFunc("/", handlers.GetStatus(appCfg)).Methods(http.MethodGet)
		r.HandleFunc("/data", handlers.GetData(appCfg)).Methods(http.MethodGet)
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
		r.NotFoundHandler = handlers.NotFound()

		host := resolveHost(backendHost)
		port := resolvePort(backendPort)

		log.Info().Msg(fmt.Sprintf("Backend started at %s:%d", host, port))
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(backendCmd)
	backendCmd.Flags().StringVar(&backendHost, "host", "", "host to run the server on, defaults from config")
	backendCmd.Flags().IntVar(&backendPort, "port", 5000, "port to run the server on")
}
