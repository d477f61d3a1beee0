package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jcooky/go-din"
	"github.com/mentessaas/a2a-protocol/agent"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newSendCmd() *cobra.Command {
	flags := &struct {
		directoryUrl string
		sender       string
		inputs       []string
	}{}
	cmd := &cobra.Command{
		Use:   "send <agent-id> <action>",
		Short: "Send a task to an agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("agent-id and action are required")
			}

			input, err := parseInputArgs(flags.inputs)
			if err != nil {
				return err
			}

			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()

			dir, err := newDirectoryClient(c, flags.directoryUrl)
			if err != nil {
				return err
			}

			sender, err := agent.NewAgent(flags.sender, agent.WithDirectoryClient(dir))
			if err != nil {
				return err
			}

			result, err := sender.SendTask(c, args[0], args[1], input)
			if err != nil {
				return errors.Wrapf(err, "failed to send task to agent %q", args[0])
			}

			pterm.DefaultLogger.Info("task completed", []pterm.LoggerArgument{
				{Key: "taskId", Value: result.TaskId},
				{Key: "status", Value: result.Status},
			})

			output, err := json.MarshalIndent(result.Output, "", "  ")
			if err != nil {
				return errors.WithStack(err)
			}
			fmt.Println(string(output))

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.directoryUrl, "directory", "d", "", "Directory base URL (default from A2A_DIRECTORY_URL)")
	f.StringVarP(&flags.sender, "sender", "s", "a2a-cli", "Agent id to send as")
	f.StringArrayVarP(&flags.inputs, "input", "i", nil, "Task input as key=value, repeatable")

	return cmd
}

// parseInputArgs turns repeated key=value flags into a task input map.
// Values that parse as JSON literals keep their type, the rest stay strings.
func parseInputArgs(kvargs []string) (map[string]any, error) {
	input := map[string]any{}
	for _, kv := range kvargs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid input %q, expected key=value", kv)
		}

		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		input[key] = parsed
	}
	return input, nil
}
