// Package whoami implements the credential check command.
package whoami

import (
	"context"
	"flag"
	"fmt"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "Show the authenticated Raindrop.io account"
}

func (c *Command) Help() string {
	return `Usage: rainstash whoami [options]

  Verifies connectivity and the configured token by fetching the
  authenticated account.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("whoami", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the rainstash config file.")
	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	user, err := client.GetUser(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error: %v", err))
		return 1
	}

	plan := "free"
	if user.Pro {
		plan = "pro"
	}
	c.UI.Output(fmt.Sprintf("%s <%s> (%s plan)", user.FullName, user.Email, plan))
	c.UI.Output("Token: " + client.MaskedToken())
	return 0
}
