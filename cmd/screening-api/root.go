package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/pkg/config"
	"github.com/tbcare/screening-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "screening-api",
	Short:        "TB screening clinical data API",
	SilenceUsage: true,
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logr, nil
}
