package main

import (
	"strings"

	"github.com/jcooky/go-din"
	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newDiscoverCmd() *cobra.Command {
	flags := &struct {
		directoryUrl string
	}{}
	cmd := &cobra.Command{
		Use:   "discover <capability> [...<capability>]",
		Short: "Find agents by capability",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.Errorf("capability is required")
			}

			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()

			dir, err := newDirectoryClient(c, flags.directoryUrl)
			if err != nil {
				return err
			}

			agents, err := dir.Discover(c, args)
			if err != nil {
				return err
			}

			printAgents(agents)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.directoryUrl, "directory", "d", "", "Directory base URL (default from A2A_DIRECTORY_URL)")

	return cmd
}

func newAgentsCmd() *cobra.Command {
	flags := &struct {
		directoryUrl string
	}{}
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()

			dir, err := newDirectoryClient(c, flags.directoryUrl)
			if err != nil {
				return err
			}

			agents, err := dir.ListAgents(c)
			if err != nil {
				return err
			}

			printAgents(agents)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.directoryUrl, "directory", "d", "", "Directory base URL (default from A2A_DIRECTORY_URL)")

	return cmd
}

func printAgents(agents []a2a.AgentInfo) {
	secondary := pterm.ThemeDefault.SecondaryStyle

	if len(agents) == 0 {
		secondary.Println("No agents found")
		return
	}

	for _, agent := range agents {
		secondary.Printfln("%s\t%s\t[%s]", agent.AgentId, agent.Endpoint, strings.Join(agent.Capabilities, ", "))
	}
}
