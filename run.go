package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mntm/graphql-codegen/config"
	"github.com/mntm/graphql-codegen/plugins"
)

type options struct {
	configFile string
	verbose    bool
}

func run(ctx context.Context, fs afero.Fs, opts options) error {
	cfgFile := opts.configFile
	if cfgFile == "" {
		var err error
		cfgFile, err = config.FindConfigFile(fs, ".", config.ConfigFilenames)
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
	}
	logrus.WithField("config", cfgFile).Debug("loading config")

	cfg, err := config.LoadConfig(fs, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	if err := cfg.PrepareSchema(ctx, fs); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	if err := plugins.GenerateCode(cfg, fs); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}

func joinFilenames() string {
	return strings.Join(config.ConfigFilenames, ", ")
}
