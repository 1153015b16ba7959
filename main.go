package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cerke/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cerke(); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func cerke() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
