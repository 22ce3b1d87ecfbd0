// Package ebitenhost runs a sceneui scene in an Ebitengine window. It polls
// mouse and keyboard state every frame, feeds it to the UI and draws every
// node as a flat rectangle with its label.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	sceneui "github.com/grindlemire/go-sceneui"
	"github.com/grindlemire/go-sceneui/internal/debug"
	"github.com/grindlemire/go-sceneui/widget"
)

// Input reports Ebitengine mouse state to the UI.
type Input struct{}

// IsPointerDown reports whether the left mouse button is held.
func (Input) IsPointerDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsHovering reports whether the cursor is inside n.
func (Input) IsHovering(n *sceneui.Node) bool {
	x, y := ebiten.CursorPosition()
	return n.Contains(float64(x), float64(y))
}

// keyMap pairs Ebitengine keys with the keys the UI understands.
var keyMap = []struct {
	ebiten ebiten.Key
	key    sceneui.Key
}{
	{ebiten.KeyEnter, sceneui.KeyEnter},
	{ebiten.KeyNumpadEnter, sceneui.KeyEnter},
	{ebiten.KeyTab, sceneui.KeyTab},
	{ebiten.KeySpace, sceneui.KeySpace},
	{ebiten.KeyBackspace, sceneui.KeyBackspace},
	{ebiten.KeyDelete, sceneui.KeyDelete},
	{ebiten.KeyArrowUp, sceneui.KeyUp},
	{ebiten.KeyArrowDown, sceneui.KeyDown},
	{ebiten.KeyArrowLeft, sceneui.KeyLeft},
	{ebiten.KeyArrowRight, sceneui.KeyRight},
	{ebiten.KeyHome, sceneui.KeyHome},
	{ebiten.KeyEnd, sceneui.KeyEnd},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() sceneui.Modifier {
	var mods sceneui.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= sceneui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= sceneui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= sceneui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= sceneui.ModMeta
	}
	return mods
}

// Palette colors the drawn scene.
type Palette struct {
	Background color.Color
	Panel      color.Color
	Widget     color.Color
	Pressed    color.Color
	Frame      color.Color
	Focus      color.Color
	Text       color.Color
	Mark       color.Color
}

// DefaultPalette is black text on white widgets over a grey background.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0x40, G: 0x44, B: 0x4c, A: 0xff},
	Panel:      color.White,
	Widget:     color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	Pressed:    color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff},
	Frame:      color.White,
	Focus:      color.Black,
	Text:       color.Black,
	Mark:       color.RGBA{R: 0x22, G: 0x66, B: 0xcc, A: 0xff},
}

// Game implements ebiten.Game for one UI.
type Game struct {
	ui      *sceneui.UI
	face    font.Face
	palette Palette
	width   int
	height  int
	status  bool
}

// Option configures a Game.
type Option func(*Game)

// WithSize sets the logical screen size. The default is 640x480.
func WithSize(width, height int) Option {
	return func(g *Game) {
		g.width, g.height = width, height
	}
}

// WithFace sets the label font. The default is basicfont.Face7x13.
func WithFace(f font.Face) Option {
	return func(g *Game) {
		g.face = f
	}
}

// WithPalette sets the drawing colors.
func WithPalette(p Palette) Option {
	return func(g *Game) {
		g.palette = p
	}
}

// WithStatusLine prints the focused element in the bottom-left corner.
func WithStatusLine() Option {
	return func(g *Game) {
		g.status = true
	}
}

// NewGame wraps ui and installs Input as its pointer source.
func NewGame(ui *sceneui.UI, opts ...Option) *Game {
	g := &Game{
		ui:      ui,
		face:    basicfont.Face7x13,
		palette: DefaultPalette,
		width:   640,
		height:  480,
	}
	for _, opt := range opts {
		opt(g)
	}
	ui.SetInput(Input{})
	return g
}

// Update feeds one frame of input to the UI. Escape ends the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mods := readModifiers()
	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			g.ui.HandleKey(sceneui.KeyEvent{Key: k.key, Mod: mods})
		}
		if inpututil.IsKeyJustReleased(k.ebiten) {
			g.ui.HandleKey(sceneui.KeyEvent{Key: k.key, Mod: mods, Action: sceneui.KeyRelease})
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.ui.HandleKey(sceneui.KeyEvent{Key: sceneui.KeyRune, Rune: r, Mod: mods})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ui.HandlePointer(sceneui.MouseEvent{
			Button: sceneui.MouseLeft,
			Action: sceneui.MousePress,
			X:      float64(x),
			Y:      float64(y),
			Mod:    mods,
		})
	}

	g.ui.Update()
	return nil
}

// Draw paints every node in traversal order, so later nodes cover earlier
// ones the same way hit testing sees them.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.ui.Scene().Walk(func(n *sceneui.Node) bool {
		g.drawNode(screen, n)
		return true
	})
	if g.status {
		status := "focus: none"
		if f := g.ui.Focused(); f != nil {
			status = "focus: " + f.Node().Name()
		}
		ebitenutil.DebugPrintAt(screen, status, 4, g.height-16)
	}
}

func (g *Game) drawNode(screen *ebiten.Image, n *sceneui.Node) {
	p := n.WorldPos()
	x, y := float32(p.X), float32(p.Y)
	w, h := float32(n.Width()), float32(n.Height())
	pal := g.palette

	switch {
	case n.Is(widget.TagGroupBox):
		vector.DrawFilledRect(screen, x, y, w, h, pal.Panel, false)
	case n.Is(sceneui.TagCanFocus) || g.isElement(n):
		fill := pal.Widget
		if n.Is(sceneui.TagPressed) {
			fill = pal.Pressed
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		frame := pal.Frame
		if n.Is(sceneui.TagFocus) {
			frame = pal.Focus
		}
		vector.StrokeRect(screen, x, y, w, h, 1, frame, false)
	case n.Is(widget.TagIcon):
		vector.StrokeRect(screen, x+2, y+2, w-4, h-4, 1, pal.Text, false)
		if parent := n.Parent(); parent != nil && parent.Is(sceneui.TagChecked) {
			vector.DrawFilledRect(screen, x+5, y+5, w-10, h-10, pal.Mark, false)
		}
	case n.Is(widget.TagText):
		g.drawLabel(screen, n, x, y, w, h)
	}
}

// drawLabel centers a node's label vertically; labels on text nodes that
// start at the widget's left edge are centered horizontally too.
func (g *Game) drawLabel(screen *ebiten.Image, n *sceneui.Node, x, y, w, h float32) {
	label := n.Label()
	if label == "" {
		return
	}
	tw := float32(widget.TextWidth(g.face, label))
	m := g.face.Metrics()
	ascent, descent := m.Ascent.Round(), m.Descent.Round()
	tx := int(x)
	if n.Pos().X == 0 {
		tx = int(x + (w-tw)/2)
	}
	baseline := int(y) + (int(h)+ascent+descent)/2 - descent
	text.Draw(screen, label, g.face, tx, baseline, g.palette.Text)
}

func (g *Game) isElement(n *sceneui.Node) bool {
	_, ok := g.ui.Element(n)
	return ok
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Window holds window settings for Run.
type Window struct {
	Title string
	Scale float64
}

// Run opens a window and runs g until the window closes or Escape is
// pressed.
func Run(g *Game, win Window) error {
	scale := win.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	debug.Log("ebitenhost.Run: %dx%d scale=%.2f", g.width, g.height, scale)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}
