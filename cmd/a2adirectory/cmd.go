package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/jcooky/go-din"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mentessaas/a2a-protocol/directory"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a2adirectory",
		Short: "A2A agent directory server",
	}

	cmd.AddCommand(
		newServeCmd(),
	)

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := din.NewContainer(cmd.Context(), din.EnvProd)
			defer c.Close()
			onSig := make(chan os.Signal, 3)
			defer close(onSig)
			signal.Notify(onSig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)

			// Initialize the container
			cfg := din.MustGetT[*config.DirectoryConfig](c)
			logger := din.MustGet[*mylog.Logger](c, mylog.Key)

			logger.Debug("start a2a-directory", "config", cfg)

			handler, err := directory.NewHandler(c)
			if err != nil {
				return err
			}

			server := http.Server{
				Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
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
				)(jsonrpc.Recovery(logger)(handler)),
			}

			go func() {
				<-onSig
				if err := server.Shutdown(c); err != nil {
					logger.Error("failed to shutdown server", "err", err)
				}
			}()

			logger.Info("Starting server", "addr", cfg.Host, "port", cfg.Port)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}

			return nil
		},
	}
}
