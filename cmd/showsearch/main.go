package main

import (
	"context"
	"os"

	"github.com/Belphemur/ShowSearch/internal/cli"
	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
)

func main() {
	logger := config.GetLogger()

	root := cli.NewRootCommand(client.NewClient)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
