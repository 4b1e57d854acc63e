// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharmacy-genius/internal/server"
	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the drug search HTTP API",
	Long: `Serve starts the HTTP API: drug search (detailed and quick forms), a
three-state health probe, and static welcome/info endpoints. A missing
OpenAI API key degrades the search endpoints to service-unavailable but
never prevents startup.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", defaultAddr, "listen address")
	serveCmd.Flags().Bool("no-cors", false, "disable the allow-all CORS middleware")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	gateway, err := buildGateway(providerConfig(cmd))
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	noCORS, _ := cmd.Flags().GetBool("no-cors")

	srv := server.New(gateway, types.ServerConfig{
		Addr:            addr,
		AllowCORS:       !noCORS,
		ShutdownTimeout: defaultShutdownTimeout,
	}, version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		return srv.Stop(ctx)
	}
}
