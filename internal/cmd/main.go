package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/rainstash/rainstash/internal/version"
)

// logLevelEnvVar selects the CLI log verbosity. Anything hclog understands
// works; unset means warnings and above only, keeping command output clean.
const logLevelEnvVar = "RAINSTASH_LOG_LEVEL"

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := filepath.Base(args[0])

	level := hclog.Warn
	if v := os.Getenv(logLevelEnvVar); v != "" {
		level = hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			fmt.Fprintf(os.Stderr, "invalid %s value %q\n", logLevelEnvVar, v)
			return 1
		}
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:   cliName,
		Level:  level,
		Output: os.Stderr,
		Color:  hclog.AutoColor,
	})

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	initCommands(log, ui)

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("error running %s: %v", cliName, err))
		return 1
	}

	return exitCode
}
