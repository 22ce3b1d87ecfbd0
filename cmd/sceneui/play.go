package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-sceneui/ebitenhost"
	"github.com/grindlemire/go-sceneui/internal/config"
)

// runPlay implements the play subcommand.
// It opens the scene in an Ebitengine window sized from the configuration.
func runPlay(args []string, cfg config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: sceneui play <scene.toml>")
	}
	ui, _, err := loadScene(args[0])
	if err != nil {
		return err
	}

	game := ebitenhost.NewGame(ui,
		ebitenhost.WithSize(cfg.Window.Width, cfg.Window.Height),
		ebitenhost.WithStatusLine(),
	)
	return ebitenhost.Run(game, ebitenhost.Window{
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
	})
}

// printConfig writes the effective configuration in the config file's
// key names.
func printConfig(out io.Writer, cfg config.Config) {
	fmt.Fprintf(out, "config file:    %s\n", config.Path())
	fmt.Fprintf(out, "debug.log_path: %q\n", cfg.Debug.LogPath)
	fmt.Fprintf(out, "window.width:   %d\n", cfg.Window.Width)
	fmt.Fprintf(out, "window.height:  %d\n", cfg.Window.Height)
	fmt.Fprintf(out, "window.title:   %q\n", cfg.Window.Title)
	fmt.Fprintf(out, "window.scale:   %g\n", cfg.Window.Scale)
}
