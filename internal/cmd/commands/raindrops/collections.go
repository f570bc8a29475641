package raindrops

import (
	"context"
	"flag"
	"fmt"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

type CollectionsCommand struct {
	*base.Command

	flagConfig string
}

func (c *CollectionsCommand) Synopsis() string {
	return "List collections"
}

func (c *CollectionsCommand) Help() string {
	return `Usage: rainstash collections [options]

  Lists the account's root collections.` +
		c.Flags().Help()
}

func (c *CollectionsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("collections", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the rainstash config file.")
	return f
}

func (c *CollectionsCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	collections, err := client.ListCollections(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	for _, col := range collections {
		c.UI.Output(fmt.Sprintf("%-10d %-30.30s %d raindrops", col.ID, col.Title, col.Count))
	}
	return 0
}
