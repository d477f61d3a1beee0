package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jcooky/go-din"
	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mokiat/gog"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	flags := &struct {
		directoryUrl string
	}{}
	cmd := &cobra.Command{
		Use:   "register <agent-file OR agent-files-dir> [...<agent-file OR agent-files-dir>]",
		Short: "Register agent cards with the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.Errorf("agent-file or agent-files-dir is required")
			}

			cardFiles, err := expandCardFiles(args)
			if err != nil {
				return err
			}
			if len(cardFiles) == 0 {
				return errors.New("no agent files found")
			}

			cards, err := config.LoadAgentCardsFromFiles(cardFiles)
			if err != nil {
				return err
			}

			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()

			dir, err := newDirectoryClient(c, flags.directoryUrl)
			if err != nil {
				return err
			}

			for _, card := range cards {
				if _, err := dir.Register(c, &a2a.RegisterParams{
					AgentId:      card.AgentId,
					Name:         card.Name,
					Capabilities: card.Capabilities,
					Endpoint:     card.Endpoint,
				}); err != nil {
					return errors.Wrapf(err, "failed to register agent %q", card.AgentId)
				}
			}

			names := gog.Map(cards, func(card config.AgentCard) string {
				return card.AgentId
			})
			pterm.DefaultLogger.Info("agents registered", []pterm.LoggerArgument{{Key: "agents", Value: names}})

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.directoryUrl, "directory", "d", "", "Directory base URL (default from A2A_DIRECTORY_URL)")

	return cmd
}

func newDeregisterCmd() *cobra.Command {
	flags := &struct {
		directoryUrl string
	}{}
	cmd := &cobra.Command{
		Use:   "deregister <agent-id> [...<agent-id>]",
		Short: "Remove agents from the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.Errorf("agent-id is required")
			}

			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()

			dir, err := newDirectoryClient(c, flags.directoryUrl)
			if err != nil {
				return err
			}

			for _, agentId := range args {
				ack, err := dir.Deregister(c, agentId)
				if err != nil {
					return errors.Wrapf(err, "failed to deregister agent %q", agentId)
				}
				println("Agent deregistered:", ack.AgentId)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.directoryUrl, "directory", "d", "", "Directory base URL (default from A2A_DIRECTORY_URL)")

	return cmd
}

func expandCardFiles(args []string) ([]string, error) {
	var cardFiles []string
	for _, filename := range args {
		stat, err := os.Stat(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "agent-file or agent-files-dir does not exist")
		}
		if stat.IsDir() {
			files, err := os.ReadDir(filename)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read agent-files-dir")
			}
			for _, file := range files {
				if file.IsDir() ||
					(!strings.HasSuffix(file.Name(), ".yaml") && !strings.HasSuffix(file.Name(), ".yml")) {
					continue
				}
				cardFiles = append(cardFiles, fmt.Sprintf("%s/%s", filename, file.Name()))
			}
		} else {
			cardFiles = append(cardFiles, filename)
		}
	}
	return cardFiles, nil
}
