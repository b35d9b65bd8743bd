package main

import (
	"fmt"
	"os"
	"runtime"

	"orthoview/internal/app"
	"orthoview/internal/config"
	"orthoview/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)
	log.Debug("Main", "runtime", map[string]interface{}{
		"go_version": runtime.Version(),
		"num_cpu":    runtime.NumCPU(),
	})

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "initialization"})
		os.Exit(1)
	}

	// orthoview [image-path]
	if len(os.Args) > 1 {
		application.OpenAtStartup(os.Args[1])
	}

	if err := application.Run(); err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}
}
