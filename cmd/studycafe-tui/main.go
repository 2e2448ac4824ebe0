package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/space84/studycafe/internal/config"
	"github.com/space84/studycafe/internal/logging"
	"github.com/space84/studycafe/internal/tui"
)

func main() {
	var (
		configFlag = flag.String("config", "", "Path to config file")
		apiURLFlag = flag.String("api-url", "", "Fanfic API base URL (overrides config and "+config.EnvAPIURL+")")
	)
	flag.Parse()

	// Load config
	path := *configFlag
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	settings.ApplyEnv(os.LookupEnv)
	if *apiURLFlag != "" {
		settings.APIURL = *apiURLFlag
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.NewFromSettings(settings, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := tui.Run(settings, logger); err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
