package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/rainstash/rainstash/internal/cmd/base"
	"github.com/rainstash/rainstash/internal/cmd/commands/copy"
	"github.com/rainstash/rainstash/internal/cmd/commands/raindrops"
	"github.com/rainstash/rainstash/internal/cmd/commands/versioncmd"
	"github.com/rainstash/rainstash/internal/cmd/commands/whoami"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		UI:  ui,
		Log: log,
	}

	Commands = map[string]cli.CommandFactory{
		"get": func() (cli.Command, error) {
			return &raindrops.GetCommand{Command: baseCommand}, nil
		},
		"list": func() (cli.Command, error) {
			return &raindrops.ListCommand{Command: baseCommand}, nil
		},
		"collections": func() (cli.Command, error) {
			return &raindrops.CollectionsCommand{Command: baseCommand}, nil
		},
		"tags": func() (cli.Command, error) {
			return &raindrops.TagsCommand{Command: baseCommand}, nil
		},
		"copy": func() (cli.Command, error) {
			return &copy.Command{Command: baseCommand}, nil
		},
		"copy link": func() (cli.Command, error) {
			return &copy.LinkCommand{Command: baseCommand}, nil
		},
		"copy content": func() (cli.Command, error) {
			return &copy.ContentCommand{Command: baseCommand}, nil
		},
		"whoami": func() (cli.Command, error) {
			return &whoami.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
