package main

import (
	"fmt"
	"os"

	"taskmanager/internal/cli"
	"taskmanager/internal/config"
	"taskmanager/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log)

	root := cli.NewRootCommand(cfg, logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
