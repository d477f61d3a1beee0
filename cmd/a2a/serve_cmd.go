package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/jcooky/go-din"
	"github.com/mentessaas/a2a-protocol/agent"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	flags := &struct {
		port int
	}{}
	cmd := &cobra.Command{
		Use:   "serve <agent-file>",
		Short: "Serve an agent from a card file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.Errorf("agent-file is required")
			}

			card, err := config.LoadAgentCardFromFile(args[0])
			if err != nil {
				return err
			}

			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()

			conf := din.MustGetT[*config.AgentConfig](c)
			logger := din.MustGet[*mylog.Logger](c, mylog.Key)

			if flags.port != 0 {
				conf.Port = flags.port
			}

			endpoint := card.Endpoint
			if endpoint == "" {
				endpoint = fmt.Sprintf("http://127.0.0.1:%d", conf.Port)
			}
			directoryUrl := card.DirectoryUrl
			if directoryUrl == "" {
				directoryUrl = conf.DirectoryUrl
			}

			ag, err := agent.NewAgent(card.AgentId,
				agent.WithName(card.Name),
				agent.WithCapabilities(card.Capabilities...),
				agent.WithEndpoint(endpoint),
				agent.WithDirectoryUrl(directoryUrl),
				agent.WithLogger(logger),
				agent.WithLogConfig(&conf.LogConfig),
			)
			if err != nil {
				return err
			}

			logger.Info("Agent loaded", "agentId", card.AgentId, "name", card.Name)

			return serveAgent(c, ag, conf, logger)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.port, "port", "p", 0, "Port to listen on (default from PORT)")

	return cmd
}

// serveAgent runs the inbound task server for one agent: register with
// the directory, heartbeat in the background, deregister on the way out.
func serveAgent(c *din.Container, ag *agent.Agent, conf *config.AgentConfig, logger *mylog.Logger) error {
	onSig := make(chan os.Signal, 3)
	defer close(onSig)
	signal.Notify(onSig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)

	card := ag.Info()

	server := http.Server{
		Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Handler: handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			handlers.AllowedHeaders([]string{
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"X-Requested-With",
				"Origin",
				"User-Agent",
				"Referer",
				"Cache-Control",
				"Pragma",
			}),
			handlers.ExposedHeaders([]string{"Content-Length", "Content-Type"}),
			handlers.MaxAge(86400), // Cache preflight for 24 hours
			handlers.AllowCredentials(),
		)(jsonrpc.Recovery(logger)(agent.NewHandler(ag))),
	}

	go func() {
		<-onSig
		if err := server.Shutdown(c); err != nil {
			logger.Error("failed to shutdown server", "err", err)
		}
	}()

	if err := ag.Register(c, card.Endpoint); err != nil {
		return err
	}
	defer func() {
		if err := ag.Deregister(c); err != nil {
			logger.Warn("failed to deregister agent", "err", err)
		}
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-c.Done():
				return
			case <-ticker.C:
				if err := ag.Heartbeat(c); err != nil {
					logger.Warn("failed to check live", "err", err)
				} else {
					logger.Info("agent is alive", "agentId", card.AgentId)
				}
			}
		}
	}()

	logger.Info("Starting server", "host", conf.Host, "port", conf.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
