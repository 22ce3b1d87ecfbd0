package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	sceneui "github.com/grindlemire/go-sceneui"
	"github.com/grindlemire/go-sceneui/internal/scenefile"
	"github.com/grindlemire/go-sceneui/widget"
)

// runLayout implements the layout subcommand.
// It builds a scene document and prints where every widget ended up.
func runLayout(args []string, out io.Writer) error {
	var (
		path     string
		override string
	)
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--type":
			if i+1 >= len(args) {
				return fmt.Errorf("--type needs a value")
			}
			i++
			override = args[i]
		case strings.HasPrefix(arg, "--type="):
			override = strings.TrimPrefix(arg, "--type=")
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("usage: sceneui layout [--type T] <scene.toml>")
	}

	ui, built, err := loadScene(path)
	if err != nil {
		return err
	}
	if override != "" {
		typ, err := sceneui.ParseLayoutType(override)
		if err != nil {
			return err
		}
		if typ == sceneui.LayoutGrid && built.Panel.Columns() < 1 {
			return fmt.Errorf("--type grid: %w", sceneui.ErrGridColumns)
		}
		built.Panel.SetType(typ)
	}
	return dumpLayout(out, ui)
}

// loadScene loads a scene document and builds it into a fresh UI.
func loadScene(path string) (*sceneui.UI, *scenefile.Built, error) {
	doc, err := scenefile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	ui := sceneui.NewUI(sceneui.NewScene())
	built, err := doc.Build(ui)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return ui, built, nil
}

// isDecoration reports whether n only exists to be drawn.
func isDecoration(n *sceneui.Node) bool {
	return n.Is(widget.TagBackground) || n.Is(widget.TagIcon) || n.Is(widget.TagText)
}

// dumpLayout prints every non-decoration node, indented by depth.
func dumpLayout(out io.Writer, ui *sceneui.UI) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tX\tY\tW\tH\tTAGS")
	ui.Scene().Walk(func(n *sceneui.Node) bool {
		if isDecoration(n) {
			return false
		}
		depth := 0
		for p := n.Parent(); p != nil && p != ui.Scene().Root(); p = p.Parent() {
			depth++
		}
		pos, size := n.Pos(), n.Size()
		fmt.Fprintf(tw, "%s%s\t%g\t%g\t%g\t%g\t%s\n",
			strings.Repeat("  ", depth), n.Name(),
			pos.X, pos.Y, size.Width, size.Height,
			strings.Join(n.Tags(), ","))
		return true
	})
	return tw.Flush()
}
