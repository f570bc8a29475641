// Package copy implements the permanent-copy commands: resolving signed
// links and retrieving archived content for a raindrop.
package copy

import (
	"github.com/mitchellh/cli"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with permanent copies of raindrops"
}

func (c *Command) Help() string {
	return `Usage: rainstash copy <subcommand> [options] <id>

  This command groups subcommands for retrieving permanent copies: archived
  snapshots of bookmarked pages and files stored by Raindrop.io.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
