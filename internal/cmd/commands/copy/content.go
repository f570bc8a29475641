package copy

import (
	"context"
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

type ContentCommand struct {
	*base.Command

	flagConfig string
	flagOut    string
}

func (c *ContentCommand) Synopsis() string {
	return "Retrieve the permanent-copy content of a raindrop"
}

func (c *ContentCommand) Help() string {
	return `Usage: rainstash copy content [options] <id>

  Retrieves the archived content of a raindrop's permanent copy. Printed
  content is truncated; use -out to write the full body to a file. When no
  copy exists yet, a creation request is issued and the reported status is
  printed instead.` +
		c.Flags().Help()
}

func (c *ContentCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("copy content", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the rainstash config file.")
	f.StringVar(&c.flagOut, "out", "", "Write the full, untruncated content to this file.")
	return f
}

func (c *ContentCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}
	id, ok := parseID(c.UI, flags.Args())
	if !ok {
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	content, err := client.GetCopyContent(context.Background(), id)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Permanent copy content for %q:", content.Title))
	if content.Cache != nil {
		c.UI.Output("  Cache:  " + string(content.Cache.Status) +
			", " + content.Cache.SizeMB() + " MB, created " + content.Cache.CreatedDisplay())
	}
	c.UI.Output("  Source: " + content.SourceURL)
	c.UI.Output("")
	c.UI.Output(content.Advisory)

	if content.Raw == nil {
		return 0
	}

	if c.flagOut != "" {
		if err := afero.WriteFile(c.Filesystem(), c.flagOut, content.Raw, 0o644); err != nil {
			c.UI.Error(fmt.Sprintf("error writing %s: %v", c.flagOut, err))
			return 1
		}
		c.UI.Output(fmt.Sprintf("Wrote %d bytes to %s", content.TotalSize, c.flagOut))
		return 0
	}

	c.UI.Output("")
	c.UI.Output("--- CONTENT ---")
	c.UI.Output(content.Content)
	return 0
}
