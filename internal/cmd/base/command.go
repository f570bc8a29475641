package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/rainstash/rainstash/internal/config"
	"github.com/rainstash/rainstash/pkg/raindrop"
)

// Command holds the dependencies shared by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// FS is the filesystem commands write output files through. Defaults
	// to the OS filesystem; tests substitute an in-memory one.
	FS afero.Fs
}

// Filesystem returns the configured filesystem.
func (c *Command) Filesystem() afero.Fs {
	if c.FS == nil {
		c.FS = afero.NewOsFs()
	}
	return c.FS
}

// NewClient loads the configuration file at configPath (optional) and
// constructs a Raindrop.io client from it and the environment.
func (c *Command) NewClient(configPath string) (*raindrop.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	c.Log.SetLevel(cfg.LogLevelOrDefault())

	clientCfg, err := cfg.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}
	return raindrop.New(clientCfg)
}
