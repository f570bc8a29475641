// Package raindrops implements the bookmark browsing commands.
package raindrops

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

type GetCommand struct {
	*base.Command

	flagConfig string
}

func (c *GetCommand) Synopsis() string {
	return "Show a single raindrop"
}

func (c *GetCommand) Help() string {
	return `Usage: rainstash get [options] <id>

  Shows one raindrop's metadata, including its permanent-copy status when
  one exists.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the rainstash config file.")
	return f
}

func (c *GetCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}
	rest := flags.Args()
	if len(rest) != 1 {
		c.UI.Error("exactly one raindrop ID argument is required")
		return 1
	}
	id, err := strconv.Atoi(rest[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("invalid raindrop ID %q", rest[0]))
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	r, err := client.GetRaindrop(context.Background(), id)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("%d  %s", r.ID, r.Title))
	c.UI.Output("  Link:    " + r.Link)
	c.UI.Output("  Type:    " + r.Type)
	if len(r.Tags) > 0 {
		c.UI.Output("  Tags:    " + strings.Join(r.Tags, ", "))
	}
	if r.Excerpt != "" {
		c.UI.Output("  Excerpt: " + r.Excerpt)
	}
	if r.Cache != nil {
		c.UI.Output("  Copy:    " + string(r.Cache.Status) +
			", " + r.Cache.SizeMB() + " MB, created " + r.Cache.CreatedDisplay())
	}
	return 0
}
