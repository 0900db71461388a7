// Command satchel replays a script of operations against a list, stack, queue or bag and logs the
// outcome of each one.
//
//	satchel -script ops.yaml
//
// where ops.yaml looks like
//
//	kind: list
//	ops:
//	  - push_back 10
//	  - push_front 20
//	  - pop_back
//	  - iter
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	scriptPath := flag.String("script", "", "Script file path, or '-' for stdin")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal().Msg("required flag -script not provided")
	}
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Str("level", *level).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	log.Debug().Str("file", *scriptPath).Msg("Reading script")
	script, err := readScript(*scriptPath, os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Str("file", *scriptPath).Msg("Failed to load script")
	}

	results, err := replay(script, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Int("applied", len(results)).Msg("Replay failed")
	}
	log.Info().Str("kind", script.Kind).Int("ops", len(results)).Msg("Replay finished")
}
