package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/nbtools/nbscan/internal/errors"
	"github.com/nbtools/nbscan/internal/logging"
	"github.com/nbtools/nbscan/internal/server"
)

// serveCmd runs the notebook scanner as an MCP server over stdio, so MCP
// clients can drive the same search operations as the CLI.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an MCP server exposing notebook search tools",
	Long: `Run a Model Context Protocol server on stdio. The server exposes the
NotebookSearch, NotebookTags, and NotebookRead tools, backed by the same
scanner as the command line interface.`,
	RunE: runServe,
}

func runServe(c *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logLevel(cfg))

	srv, err := server.New(&server.Options{Logger: logger})
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		return errors.Wrap(err, "failed to create server")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server", "error", err)
		return errors.Wrap(err, "failed to start server")
	}

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Serve(ctx, mcp.NewStdioTransport())
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Error stopping server", "error", err)
	}

	logger.Info("nbscan MCP server stopped")
	return nil
}
