package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	sceneui "github.com/grindlemire/go-sceneui"
	"github.com/grindlemire/go-sceneui/internal/scenefile"
)

// runScript implements the run subcommand.
// It reads commands from the script file, or stdin when the script is "-" or
// omitted, and prints every signal the commands cause.
func runScript(args []string, stdin io.Reader, out io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: sceneui run <scene.toml> [script|-]")
	}
	ui, built, err := loadScene(args[0])
	if err != nil {
		return err
	}

	in := stdin
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	s := newSession(ui, built, out)
	return s.run(in)
}

// scriptPointer is the pointer a script moves. It hovers whatever node
// contains its position.
type scriptPointer struct {
	x, y float64
	down bool
}

func (p *scriptPointer) IsPointerDown() bool { return p.down }

func (p *scriptPointer) IsHovering(n *sceneui.Node) bool {
	return n.Contains(p.x, p.y)
}

// session drives one scene from script commands.
type session struct {
	ui      *sceneui.UI
	built   *scenefile.Built
	out     io.Writer
	pointer *scriptPointer
}

var scriptSignals = []sceneui.Signal{
	sceneui.SignalFocus,
	sceneui.SignalBlur,
	sceneui.SignalPressed,
	sceneui.SignalReleased,
	sceneui.SignalChecked,
	sceneui.SignalAction,
}

func newSession(ui *sceneui.UI, built *scenefile.Built, out io.Writer) *session {
	s := &session{ui: ui, built: built, out: out, pointer: &scriptPointer{}}
	ui.SetInput(s.pointer)
	for _, label := range built.Order {
		n := built.Element(label).Node()
		for _, sig := range scriptSignals {
			sig := sig
			n.On(sig, func(args ...any) {
				if len(args) > 0 {
					fmt.Fprintf(out, "  %s %s %v\n", n.Name(), sig, args[0])
					return
				}
				fmt.Fprintf(out, "  %s %s\n", n.Name(), sig)
			})
		}
	}
	return s
}

// run executes every line of r. Blank lines and lines starting with # are
// skipped. The first failing command stops the run.
func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fmt.Fprintf(s.out, "> %s\n", line)
		if err := s.exec(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

// exec runs a single command.
func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	cmd, rest := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "tab":
		s.ui.HandleKey(sceneui.KeyEvent{Key: sceneui.KeyTab})
	case "shift+tab":
		s.ui.HandleKey(sceneui.KeyEvent{Key: sceneui.KeyTab, Mod: sceneui.ModShift})
	case "enter":
		s.ui.HandleKey(sceneui.KeyEvent{Key: sceneui.KeyEnter})
		s.ui.HandleKey(sceneui.KeyEvent{Key: sceneui.KeyEnter, Action: sceneui.KeyRelease})
	case "enter-down":
		s.ui.HandleKey(sceneui.KeyEvent{Key: sceneui.KeyEnter})
	case "enter-up":
		s.ui.HandleKey(sceneui.KeyEvent{Key: sceneui.KeyEnter, Action: sceneui.KeyRelease})
	case "click":
		label := strings.TrimSpace(line[len(fields[0]):])
		if label == "" {
			return fmt.Errorf("click needs a widget label")
		}
		return s.click(label)
	case "release":
		outside := len(rest) == 1 && rest[0] == "outside"
		if len(rest) > 0 && !outside {
			return fmt.Errorf("release takes no argument or \"outside\"")
		}
		s.release(outside)
	case "focus":
		name := "none"
		if f := s.ui.Focused(); f != nil {
			name = f.Node().Name()
		}
		fmt.Fprintf(s.out, "  focus %s\n", name)
	case "dump":
		return dumpLayout(s.out, s.ui)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// click presses the pointer at the center of the widget with label.
func (s *session) click(label string) error {
	e := s.built.Element(label)
	if e == nil {
		return fmt.Errorf("no widget %q", label)
	}
	n := e.Node()
	p := n.WorldPos()
	s.pointer.x = p.X + n.Width()/2
	s.pointer.y = p.Y + n.Height()/2
	s.pointer.down = true
	if !s.ui.HandlePointer(sceneui.MouseEvent{
		Button: sceneui.MouseLeft,
		Action: sceneui.MousePress,
		X:      s.pointer.x,
		Y:      s.pointer.y,
	}) {
		return fmt.Errorf("widget %q is covered", label)
	}
	s.ui.Update()
	return nil
}

// release lifts the pointer and runs one frame. With outside set the
// pointer is moved off every node first.
func (s *session) release(outside bool) {
	if outside {
		s.pointer.x, s.pointer.y = -1, -1
	}
	s.pointer.down = false
	s.ui.Update()
}
