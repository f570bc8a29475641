package raindrops

import (
	"context"
	"flag"
	"fmt"

	"github.com/rainstash/rainstash/internal/cmd/base"
	"github.com/rainstash/rainstash/pkg/raindrop"
)

type ListCommand struct {
	*base.Command

	flagConfig     string
	flagCollection int
	flagSearch     string
	flagPerPage    int
}

func (c *ListCommand) Synopsis() string {
	return "List raindrops in a collection"
}

func (c *ListCommand) Help() string {
	return `Usage: rainstash list [options]

  Lists the raindrops in a collection. Collection 0 is the unsorted
  collection.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the rainstash config file.")
	f.IntVar(&c.flagCollection, "collection", 0, "Collection ID to list.")
	f.StringVar(&c.flagSearch, "search", "", "Full-text search query.")
	f.IntVar(&c.flagPerPage, "per-page", 25, "Number of raindrops per page.")
	return f
}

func (c *ListCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	items, err := client.ListRaindrops(context.Background(), c.flagCollection,
		&raindrop.ListOptions{
			Search:  c.flagSearch,
			PerPage: c.flagPerPage,
		})
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	if len(items) == 0 {
		c.UI.Output("No raindrops found.")
		return 0
	}
	for _, r := range items {
		copyMark := " "
		if r.Cache != nil && r.Cache.Status == raindrop.CacheReady {
			copyMark = "*"
		}
		c.UI.Output(fmt.Sprintf("%s %-10d %-40.40s %s", copyMark, r.ID, r.Title, r.Link))
	}
	return 0
}
