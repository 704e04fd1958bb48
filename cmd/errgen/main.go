// Command errgen generates the AnyError umbrella boilerplate from a leaf
// registry and prints the registered catalogue.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("ERRGEN_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("errgen failed")
		os.Exit(1)
	}
}
