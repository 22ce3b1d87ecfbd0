package main

import (
	"fmt"
	"os"

	sceneui "github.com/grindlemire/go-sceneui"
	"github.com/grindlemire/go-sceneui/internal/scenefile"
)

// runCheck implements the check subcommand.
// It loads and builds each scene document without running it.
func runCheck(args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		return fmt.Errorf("no scene files given")
	}

	var errorCount int
	for _, path := range paths {
		if verbose {
			fmt.Printf("Checking %s\n", path)
		}
		if err := checkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(paths))
	}
	return nil
}

// checkFile loads path and builds it into a throwaway scene.
func checkFile(path string) error {
	doc, err := scenefile.Load(path)
	if err != nil {
		return err
	}
	if _, err := doc.Build(sceneui.NewUI(sceneui.NewScene())); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
