/*
Package cui implements the interactive terminal surface of the tile editor.

It owns only presentation state. Every mutation of the tile goes through an
elby.Editor, whose decode path guarantees the pixels survive a bad hex
paste untouched.
*/
package cui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/LukeBoehler/elby"
	"github.com/LukeBoehler/elby/tile"
)

const (
	tileSize = 8

	titleY   = 0
	paletteY = 1
	paletteX = 1
	swatchW  = 5

	boxX    = 0
	boxY    = 2
	canvasX = boxX + 1
	canvasY = boxY + 1
	cellW   = 4
	cellH   = 2

	hexY    = boxY + tileSize*cellH + 2
	hexValX = 6
	statusY = hexY + 1
	helpY   = statusY + 1
)

const helpText = "paint: left button   erase: right   0-3: shade   c: clear   h: hex   q: quit"

// ui carries the presentation state for one Run call.
type ui struct {
	screen  tcell.Screen
	ed      *elby.Editor
	shades  [4]tcell.Style
	editing bool
	line    lineEditor
	status  string
	failed  bool
}

// Run opens the terminal editor over ed and blocks until the user quits.
func Run(ed *elby.Editor) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	return run(screen, ed)
}

func run(screen tcell.Screen, ed *elby.Editor) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()

	return newUI(screen, ed).loop()
}

func newUI(screen tcell.Screen, ed *elby.Editor) *ui {
	u := &ui{screen: screen, ed: ed}
	for i := range u.shades {
		r, g, b, _ := tile.Shade(i).RGBA()
		c := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
		u.shades[i] = tcell.StyleDefault.Background(c)
	}
	return u
}

func (u *ui) loop() error {
	for {
		u.draw()

		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if u.editing {
				u.editKey(ev)
			} else if u.key(ev) {
				return nil
			}
		case *tcell.EventMouse:
			u.mouse(ev)
		}
	}
}

// key handles canvas mode keys and reports whether to quit.
func (u *ui) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyEnter:
		u.startEdit()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return true
	case 'c', 'C':
		u.ed.Clear()
		u.info("cleared")
	case 'h', 'H':
		u.startEdit()
	case '0', '1', '2', '3':
		u.ed.SetCurrent(tile.Shade(r - '0'))
		u.info("")
	}

	return false
}

func (u *ui) editKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		u.stopEdit()
	case tcell.KeyEnter:
		if err := u.ed.SetHex(u.line.String()); err != nil {
			u.fail(err.Error())
			return
		}
		u.stopEdit()
		u.info("tile updated")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.line.Backspace()
	case tcell.KeyDelete:
		u.line.Delete()
	case tcell.KeyLeft:
		u.line.Left()
	case tcell.KeyRight:
		u.line.Right()
	case tcell.KeyHome:
		u.line.Home()
	case tcell.KeyEnd:
		u.line.End()
	case tcell.KeyRune:
		u.line.Insert(ev.Rune())
	}
}

func (u *ui) mouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if buttons&(tcell.Button1|tcell.Button2) == 0 {
		return
	}
	if u.editing {
		u.stopEdit()
	}

	mx, my := ev.Position()

	if my == paletteY && mx >= paletteX && buttons&tcell.Button1 != 0 {
		if i := (mx - paletteX) / swatchW; i < len(u.shades) && (mx-paletteX)%swatchW < swatchW-1 {
			u.ed.SetCurrent(tile.Shade(i))
			u.info("")
			return
		}
	}

	if x, y, ok := cellAt(mx, my); ok {
		// Button2 is the secondary, usually right, button.
		if buttons&tcell.Button2 != 0 {
			u.ed.Erase(x, y)
		} else {
			u.ed.Paint(x, y)
		}
	}
}

// cellAt maps screen coordinates to tile coordinates.
func cellAt(mx, my int) (x, y int, ok bool) {
	if mx < canvasX || my < canvasY {
		return 0, 0, false
	}
	x, y = (mx-canvasX)/cellW, (my-canvasY)/cellH
	if x >= tileSize || y >= tileSize {
		return 0, 0, false
	}
	return x, y, true
}

func (u *ui) startEdit() {
	u.editing = true
	u.line.Set(u.ed.Hex())
	u.info("enter applies, esc cancels")
}

func (u *ui) stopEdit() {
	u.editing = false
	u.screen.HideCursor()
	u.info("")
}

func (u *ui) info(msg string) {
	u.status, u.failed = msg, false
}

func (u *ui) fail(msg string) {
	u.status, u.failed = msg, true
}

func (u *ui) draw() {
	u.screen.Clear()

	u.text(1, titleY, "elby - Game Boy tile editor", tcell.StyleDefault.Bold(true))
	u.drawPalette()
	u.drawCanvas()
	u.drawHex()

	status := tcell.StyleDefault
	if u.failed {
		status = status.Foreground(tcell.ColorRed)
	}
	u.text(1, statusY, u.status, status)
	u.text(1, helpY, helpText, tcell.StyleDefault.Dim(true))

	u.screen.Show()
}

func (u *ui) drawPalette() {
	for i, style := range u.shades {
		x := paletteX + i*swatchW
		fg := tcell.ColorBlack
		if tile.Shade(i) >= tile.DarkGray {
			fg = tcell.ColorWhite
		}
		style = style.Foreground(fg)
		for dx := 0; dx < swatchW-1; dx++ {
			r := ' '
			if dx == 1 {
				r = rune('0' + i)
			}
			u.screen.SetContent(x+dx, paletteY, r, nil, style)
		}
		if tile.Shade(i) == u.ed.Current() {
			u.screen.SetContent(x-1, paletteY, '[', nil, tcell.StyleDefault)
			u.screen.SetContent(x+swatchW-1, paletteY, ']', nil, tcell.StyleDefault)
		}
	}

	x := paletteX + len(u.shades)*swatchW + 2
	u.text(x, paletteY, "current", tcell.StyleDefault.Dim(true))
	cur := u.shades[u.ed.Current()]
	for dx := 0; dx < swatchW-1; dx++ {
		u.screen.SetContent(x+8+dx, paletteY, ' ', nil, cur)
	}
}

func (u *ui) drawCanvas() {
	s := u.screen
	w, h := tileSize*cellW, tileSize*cellH
	border := tcell.StyleDefault

	for dx := 1; dx <= w; dx++ {
		s.SetContent(boxX+dx, boxY, tcell.RuneHLine, nil, border)
		s.SetContent(boxX+dx, boxY+h+1, tcell.RuneHLine, nil, border)
	}
	for dy := 1; dy <= h; dy++ {
		s.SetContent(boxX, boxY+dy, tcell.RuneVLine, nil, border)
		s.SetContent(boxX+w+1, boxY+dy, tcell.RuneVLine, nil, border)
	}
	s.SetContent(boxX, boxY, tcell.RuneULCorner, nil, border)
	s.SetContent(boxX+w+1, boxY, tcell.RuneURCorner, nil, border)
	s.SetContent(boxX, boxY+h+1, tcell.RuneLLCorner, nil, border)
	s.SetContent(boxX+w+1, boxY+h+1, tcell.RuneLRCorner, nil, border)

	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			style := u.shades[u.ed.ShadeAt(x, y)]
			for dy := 0; dy < cellH; dy++ {
				for dx := 0; dx < cellW; dx++ {
					s.SetContent(canvasX+x*cellW+dx, canvasY+y*cellH+dy, ' ', nil, style)
				}
			}
		}
	}
}

func (u *ui) drawHex() {
	u.text(1, hexY, "hex", tcell.StyleDefault.Dim(true))
	if u.editing {
		u.text(hexValX, hexY, u.line.String(), tcell.StyleDefault.Underline(true))
		u.screen.ShowCursor(hexValX+u.line.Cursor(), hexY)
	} else {
		u.text(hexValX, hexY, u.ed.Hex(), tcell.StyleDefault)
	}
}

func (u *ui) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
