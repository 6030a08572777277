package cmd

import (
	"io"
	"jobaudit/config"
	"jobaudit/internal/logging"
	"log/slog"
)

// loadRuntime validates the active configuration and installs the process
// logger on stderr.
func loadRuntime(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(stderr, logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
