// Package main runs the preview server, which serves pages with the header pre-rendered
// for the requested path.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/internal/preview"
	"github.com/vcrobe/navheader/navconfig"
	"github.com/vcrobe/navheader/ssr"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "navserve",
		Usage: "Serve pages with the site header rendered for each path",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Navigation config file (YAML); the built-in header is used when empty",
			},
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "Listen address",
			},
			&cli.StringFlag{
				Name:  "static",
				Usage: "Directory served under /static (wasm app assets)",
			},
			&cli.StringSliceFlag{
				Name:  "script",
				Usage: "Script URL appended to every page (repeatable)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Action: serve,
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	if err := console.SetLevel(cmd.String("log-level")); err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)

	cfg := navconfig.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := navconfig.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	srv := preview.New(cfg, preview.Options{
		StaticDir: cmd.String("static"),
		Page:      ssr.PageOptions{Scripts: cmd.StringSlice("script")},
	})

	httpServer := &http.Server{
		Addr:              cmd.String("addr"),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		console.WithFields(map[string]any{"addr": httpServer.Addr}).Info("Preview server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	console.Log("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
