package main

import (
	"github.com/jcooky/go-din"
	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newPingCmd() *cobra.Command {
	flags := &struct {
		directoryUrl string
	}{}
	cmd := &cobra.Command{
		Use:   "ping [<agent-id> ...]",
		Short: "Heartbeat agents through the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()

			dir, err := newDirectoryClient(c, flags.directoryUrl)
			if err != nil {
				return err
			}

			agentIds := args
			if len(agentIds) == 0 {
				agents, err := dir.ListAgents(c)
				if err != nil {
					return err
				}
				agentIds = lo.Map(agents, func(agent a2a.AgentInfo, _ int) string {
					return agent.AgentId
				})
			}

			secondary := pterm.ThemeDefault.SecondaryStyle

			if len(agentIds) == 0 {
				secondary.Println("No agents found")
				return nil
			}

			var eg errgroup.Group
			for _, agentId := range agentIds {
				eg.Go(func() error {
					ack, err := dir.Heartbeat(c, agentId)
					if err != nil {
						return errors.Wrapf(err, "failed to ping agent %q", agentId)
					}
					secondary.Printfln("%s is %s", ack.AgentId, ack.Status)
					return nil
				})
			}

			return eg.Wait()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.directoryUrl, "directory", "d", "", "Directory base URL (default from A2A_DIRECTORY_URL)")

	return cmd
}
