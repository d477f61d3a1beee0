package main

import (
	"github.com/jcooky/go-din"
	"github.com/mentessaas/a2a-protocol/directory"
	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a2a",
		Short: "A2A agent CLI",
	}

	cmd.AddCommand(
		newServeCmd(),
		newRegisterCmd(),
		newDeregisterCmd(),
		newDiscoverCmd(),
		newAgentsCmd(),
		newSendCmd(),
		newPingCmd(),
	)

	return cmd
}

// newDirectoryClient prefers an explicit --directory flag over the
// container-provided client resolved from A2A_DIRECTORY_URL.
func newDirectoryClient(c *din.Container, baseUrl string) (directory.Client, error) {
	if baseUrl != "" {
		return directory.NewClient(baseUrl), nil
	}
	return din.GetT[directory.Client](c)
}
