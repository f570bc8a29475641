package copy

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/pkg/browser"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

type LinkCommand struct {
	*base.Command

	flagConfig string
	flagOpen   bool
}

func (c *LinkCommand) Synopsis() string {
	return "Resolve the signed permanent-copy link for a raindrop"
}

func (c *LinkCommand) Help() string {
	return `Usage: rainstash copy link [options] <id>

  Resolves the permanent-copy link of a raindrop. For documents this is the
  signed download URL; for web pages it is the signed cached-content URL.
  When no copy exists yet, a creation request is issued and the reported
  status is printed instead.` +
		c.Flags().Help()
}

func (c *LinkCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("copy link", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the rainstash config file.")
	f.BoolVar(&c.flagOpen, "open", false, "Open the signed URL in the default browser.")
	return f
}

func (c *LinkCommand) Run(args []string) int {
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

	link, err := client.GetCopyLink(context.Background(), id)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Permanent copy for %q:", link.Title))
	c.UI.Output("  Type:   " + link.Type)
	c.UI.Output("  Source: " + link.SourceURL)
	if link.Cache != nil {
		c.UI.Output("  Cache:  " + string(link.Cache.Status) +
			", " + link.Cache.SizeMB() + " MB, created " + link.Cache.CreatedDisplay())
	}
	if link.SignedURL != "" {
		c.UI.Output("")
		c.UI.Output("Signed URL:")
		c.UI.Output("  " + link.SignedURL)
	}
	c.UI.Output("")
	c.UI.Output(link.Advisory)

	if c.flagOpen && link.SignedURL != "" {
		if err := browser.OpenURL(link.SignedURL); err != nil {
			c.UI.Warn(fmt.Sprintf("could not open browser: %v", err))
		}
	}
	return 0
}

func parseID(ui interface{ Error(string) }, args []string) (int, bool) {
	if len(args) != 1 {
		ui.Error("exactly one raindrop ID argument is required")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		ui.Error(fmt.Sprintf("invalid raindrop ID %q", args[0]))
		return 0, false
	}
	return id, true
}
