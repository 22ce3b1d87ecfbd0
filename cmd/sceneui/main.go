// Package main provides the CLI tool for sceneui scene documents.
//
// Usage:
//
//	sceneui check [file...]            Validate scene documents
//	sceneui layout <scene.toml>        Print the laid-out scene
//	sceneui run <scene.toml> [script]  Drive the scene from a script
//	sceneui play <scene.toml>          Open the scene in a window
//	sceneui config                     Print the effective configuration
//	sceneui version                    Print the version
//	sceneui help                       Show help
//
// Examples:
//
//	sceneui layout demo.toml
//	sceneui run demo.toml flex.script
//	echo "click Flex" | sceneui run demo.toml -
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-sceneui/internal/config"
	"github.com/grindlemire/go-sceneui/internal/debug"
)

const version = "0.1.0"

const usage = `sceneui - scene documents for the sceneui UI layer

Usage:
  sceneui <command> [options] [args...]

Commands:
  check       Validate scene documents
  layout      Print every node's position, size and tags after layout
  run         Drive a scene with a line-based script and print the signals
  play        Open a scene in a window (Escape quits)
  config      Print the effective configuration
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output (check)
  --type T    Override the panel layout type: row, column, grid, flex (layout)

Script commands (run):
  tab | shift+tab             Move focus forward or backward
  enter                       Press and release Enter
  enter-down | enter-up       Press or release Enter
  click <label>               Press the pointer on a widget (label may contain spaces)
  release [outside]           Release the pointer, over the pressed widget or not
  focus                       Print the focused widget
  dump                        Print the layout

Configuration is read from $SCENEUI_CONFIG or ~/.config/sceneui/config.toml;
SCENEUI_* environment variables override it (e.g. SCENEUI_WINDOW_WIDTH).

Examples:
  sceneui check scenes/*.toml
  sceneui layout --type flex demo.toml
  sceneui run demo.toml flex.script
  echo "click Flex" | sceneui run demo.toml -
  sceneui play demo.toml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Debug.LogPath != "" {
		if err := debug.Init(cfg.Debug.LogPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug log: %v\n", err)
		}
	}
	defer debug.Close()

	switch command {
	case "check":
		exit(runCheck(args))
	case "layout":
		exit(runLayout(args, os.Stdout))
	case "run":
		exit(runScript(args, os.Stdin, os.Stdout))
	case "play":
		exit(runPlay(args, cfg))
	case "config":
		printConfig(os.Stdout, cfg)
	case "version":
		fmt.Printf("sceneui version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// exit reports err and exits non-zero when it is set.
func exit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	debug.Close()
	os.Exit(1)
}
