package main

import (
	"github.com/osse101/PackOpener_Go/internal/config"
)

type ValidateConfigCommand struct{}

func (c *ValidateConfigCommand) Name() string {
	return "validate-config"
}

func (c *ValidateConfigCommand) Description() string {
	return "Check the environment the server would start with"
}

func (c *ValidateConfigCommand) Run(args []string) error {
	PrintHeader("Validating environment...")

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		PrintWarning("%s", w)
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	PrintInfo("Storage backend: %s", cfg.StorageBackend)
	PrintSuccess("Configuration is valid")
	return nil
}
