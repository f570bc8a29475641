package raindrops

import (
	"context"
	"flag"
	"fmt"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

type TagsCommand struct {
	*base.Command

	flagConfig     string
	flagCollection int
}

func (c *TagsCommand) Synopsis() string {
	return "List tags"
}

func (c *TagsCommand) Help() string {
	return `Usage: rainstash tags [options]

  Lists tags across a collection. Collection 0 means all collections.` +
		c.Flags().Help()
}

func (c *TagsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("tags", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the rainstash config file.")
	f.IntVar(&c.flagCollection, "collection", 0, "Collection ID to list tags for.")
	return f
}

func (c *TagsCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	tags, err := client.ListTags(context.Background(), c.flagCollection)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	for _, tag := range tags {
		c.UI.Output(fmt.Sprintf("%-30.30s %d", tag.Name, tag.Count))
	}
	return 0
}
