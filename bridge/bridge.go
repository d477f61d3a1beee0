// Package bridge adapts local commands into protocol task handlers: a
// YAML actions file maps action names to argv templates, each rendered
// against the task input and executed with a per-action timeout.
package bridge

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
)

func funcMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

type (
	action struct {
		command []*template.Template
		timeout time.Duration
		workDir string
	}

	Bridge struct {
		logger  *mylog.Logger
		actions map[string]*action
	}
)

var (
	_ a2a.TaskHandler = (*Bridge)(nil)
)

func NewBridge(conf config.BridgeConfig, logger *mylog.Logger) (*Bridge, error) {
	b := &Bridge{
		logger:  logger,
		actions: make(map[string]*action, len(conf.Actions)),
	}

	for name, ac := range conf.Actions {
		if len(ac.Command) == 0 {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "action %q has no command", name)
		}

		act := &action{
			timeout: time.Duration(ac.Timeout) * time.Second,
			workDir: ac.WorkDir,
		}
		for i, arg := range ac.Command {
			tmpl, err := template.New(fmt.Sprintf("%s.%d", name, i)).Funcs(funcMap()).Parse(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse command of action %q", name)
			}
			act.command = append(act.command, tmpl)
		}

		b.actions[name] = act
	}

	return b, nil
}

// HandleTask implements a2a.TaskHandler. Template and exec failures are
// handler errors; they surface on the wire as application errors, never
// as panics. A non-zero exit is not an error: it comes back to the
// caller in the output's exitCode.
func (b *Bridge) HandleTask(ctx context.Context, actionName string, input map[string]any, sender string) (map[string]any, error) {
	act, ok := b.actions[actionName]
	if !ok {
		return nil, errors.Errorf("unsupported action %q", actionName)
	}

	argv := make([]string, 0, len(act.command))
	for _, tmpl := range act.command {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, input); err != nil {
			return nil, errors.Wrapf(err, "failed to render command of action %q", actionName)
		}
		argv = append(argv, buf.String())
	}

	if act.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, act.timeout)
		defer cancel()
	}

	b.logger.Info("run action", "action", actionName, "sender", sender, "command", argv[0])

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = act.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Wrapf(err, "failed to run %q", argv[0])
		}
		exitCode = exitErr.ExitCode()
	}

	return map[string]any{
		"stdout":   strings.TrimRight(stdout.String(), "\n"),
		"stderr":   strings.TrimRight(stderr.String(), "\n"),
		"exitCode": exitCode,
	}, nil
}

// Actions lists the action names the bridge serves, for registration as
// capabilities.
func (b *Bridge) Actions() []string {
	actions := make([]string, 0, len(b.actions))
	for name := range b.actions {
		actions = append(actions, name)
	}

	return actions
}
