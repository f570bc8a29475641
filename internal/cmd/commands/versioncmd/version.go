package versioncmd

import (
	"github.com/rainstash/rainstash/internal/cmd/base"
	"github.com/rainstash/rainstash/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the rainstash version"
}

func (c *Command) Help() string {
	return `Usage: rainstash version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("rainstash " + version.Version)
	return 0
}
