// Package main renders the site header to HTML for a given path.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/navconfig"
	"github.com/vcrobe/navheader/ssr"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "navrender",
		Usage: "Render the site header for a path",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Navigation config file (YAML); the built-in header is used when empty",
			},
			&cli.StringFlag{
				Name:  "path",
				Value: "/",
				Usage: "Current page path the header is rendered for",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "Output file, - for stdout",
			},
			&cli.BoolFlag{
				Name:  "page",
				Usage: "Write a full HTML document instead of the header fragment",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Action: render,
	}
}

func loadConfig(path string) (*navconfig.Config, error) {
	if path == "" {
		return navconfig.Default(), nil
	}
	return navconfig.Load(path)
}

// closeOutput closes c and reports its error through err unless err already holds one.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close output: %w", cerr)
	}
}

func render(_ context.Context, cmd *cli.Command) (err error) {
	if err := console.SetLevel(cmd.String("log-level")); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	var w io.Writer = cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	if out := cmd.String("out"); out != "-" {
		f, createErr := os.Create(out)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer closeOutput(f, &err)
		w = f
	}

	path := cmd.String("path")
	console.WithFields(map[string]any{"path": path, "items": len(cfg.Items)}).Debug("rendering header")

	if cmd.Bool("page") {
		return ssr.WritePage(w, cfg, path, ssr.PageOptions{})
	}
	if err := ssr.WriteHeader(w, cfg, path); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
