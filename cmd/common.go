package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/twotier/twotier-services/internal/appconfig"
)

var appCfg *appconfig.Config

// commonSetUp initializes logging and loads the configuration. A .env file is
// picked up when present so local runs match the deployed environment.
func commonSetUp() {
	setLogging(logLevel)

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
}

// resolveHost applies the configured host when the host flag is unset.
func resolveHost(flagHost string) string {
	if flagHost != "" {
		return flagHost
	}
	return appCfg.Host
}

// resolvePort applies the PORT environment variable over the port flag. The
// hosting platform dictates the listen port through PORT.
func resolvePort(flagPort int) int {
	p := os.Getenv("PORT")
	if p == "" {
		return flagPort
	}

	v, err := strconv.Atoi(p)
	if err != nil {
		log.Warn().Str("port", p).Msg("invalid PORT environment variable, using flag value")
		return flagPort
	}

	return v
}
