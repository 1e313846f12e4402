package form

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/annihilation/config"
	"github.com/lixenwraith/annihilation/parameter"
)

// Style defines form colors
type Style struct {
	Bg       tcell.Color
	Border   tcell.Color
	Title    tcell.Color
	Label    tcell.Color
	FieldFg  tcell.Color
	FieldBg  tcell.Color
	FocusBg  tcell.Color
	SliderOn tcell.Color
	Error    tcell.Color
	Hint     tcell.Color
}

// DefaultStyle returns default form colors
func DefaultStyle() Style {
	return Style{
		Bg:       tcell.NewRGBColor(26, 27, 38),
		Border:   tcell.NewRGBColor(80, 100, 140),
		Title:    tcell.NewRGBColor(100, 200, 220),
		Label:    tcell.NewRGBColor(150, 150, 180),
		FieldFg:  tcell.NewRGBColor(220, 220, 220),
		FieldBg:  tcell.NewRGBColor(35, 35, 45),
		FocusBg:  tcell.NewRGBColor(55, 55, 80),
		SliderOn: tcell.NewRGBColor(255, 220, 60),
		Error:    tcell.NewRGBColor(255, 100, 100),
		Hint:     tcell.NewRGBColor(100, 100, 110),
	}
}

const (
	formHeight = 12
	labelWidth = 20
	title      = " Particle Annihilation "
	hint       = "Tab/↑↓ move  ←→ adjust  Enter start  Esc quit"
)

// Row offsets inside the box
const (
	rowRed    = 2
	rowBlue   = 4
	rowChance = 6
	rowSubmit = 8
	rowError  = 9
	rowHint   = 10
)

// Draw paints the dialog centred on screen and shows it
func (f *Form) Draw(screen tcell.Screen) {
	st := f.style
	base := tcell.StyleDefault.Background(st.Bg)

	screen.Clear()
	sw, sh := screen.Size()
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			screen.SetContent(x, y, ' ', nil, base)
		}
	}

	boxW := parameter.FormWidth + 2
	x0 := max((sw-boxW)/2, 0)
	y0 := max((sh-formHeight)/2, 0)

	drawBorder(screen, x0, y0, boxW, formHeight, base.Foreground(st.Border))
	putStr(screen, x0+(boxW-len([]rune(title)))/2, y0, title, base.Foreground(st.Title).Bold(true))

	inner := x0 + 2
	fieldX := inner + labelWidth
	fieldW := parameter.FieldMaxLen + 2

	screen.HideCursor()
	f.drawField(screen, inner, fieldX, fieldW, y0+rowRed, "Red particles", f.Red, f.Focus == FocusRed)
	f.drawField(screen, inner, fieldX, fieldW, y0+rowBlue, "Blue particles", f.Blue, f.Focus == FocusBlue)
	f.drawSlider(screen, inner, fieldX, y0+rowChance)

	button := "[ Start ]"
	btnStyle := base.Foreground(st.FieldFg)
	if f.Focus == FocusSubmit {
		btnStyle = btnStyle.Background(st.FocusBg).Bold(true)
	}
	putStr(screen, x0+(boxW-len(button))/2, y0+rowSubmit, button, btnStyle)

	if f.Err != nil {
		putStr(screen, inner, y0+rowError, clip(config.Reason(f.Err), parameter.FormWidth-2), base.Foreground(st.Error))
	}
	putStr(screen, inner, y0+rowHint, clip(hint, parameter.FormWidth-2), base.Foreground(st.Hint))

	screen.Show()
}

func (f *Form) drawField(screen tcell.Screen, labelX, fieldX, fieldW, y int, label string, field *TextField, focused bool) {
	st := f.style
	base := tcell.StyleDefault.Background(st.Bg)
	labelStyle := base.Foreground(st.Label)
	if focused {
		labelStyle = labelStyle.Bold(true)
	}
	putStr(screen, labelX, y, label, labelStyle)

	bg := st.FieldBg
	if focused {
		bg = st.FocusBg
	}
	fieldStyle := tcell.StyleDefault.Background(bg).Foreground(st.FieldFg)
	for i := 0; i < fieldW; i++ {
		screen.SetContent(fieldX+i, y, ' ', nil, fieldStyle)
	}
	putStr(screen, fieldX+1, y, field.Value(), fieldStyle)

	if focused {
		screen.ShowCursor(fieldX+1+field.Cursor, y)
	}
}

func (f *Form) drawSlider(screen tcell.Screen, labelX, fieldX, y int) {
	st := f.style
	base := tcell.StyleDefault.Background(st.Bg)
	focused := f.Focus == FocusChance

	labelStyle := base.Foreground(st.Label)
	if focused {
		labelStyle = labelStyle.Bold(true)
	}
	putStr(screen, labelX, y, "Elimination chance", labelStyle)

	const trackW = 16
	filled := f.Chance * trackW / 100
	trackBg := st.FieldBg
	if focused {
		trackBg = st.FocusBg
	}
	for i := 0; i < trackW; i++ {
		if i < filled {
			screen.SetContent(fieldX+i, y, '█', nil, tcell.StyleDefault.Background(trackBg).Foreground(st.SliderOn))
		} else {
			screen.SetContent(fieldX+i, y, '─', nil, tcell.StyleDefault.Background(trackBg).Foreground(st.Hint))
		}
	}
	putStr(screen, fieldX+trackW+1, y, fmt.Sprintf("%3d%%", f.Chance), base.Foreground(st.FieldFg))
}

func drawBorder(screen tcell.Screen, x0, y0, w, h int, style tcell.Style) {
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, '─', nil, style)
		screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, '│', nil, style)
		screen.SetContent(x1, y, '│', nil, style)
	}
	screen.SetContent(x0, y0, '╭', nil, style)
	screen.SetContent(x1, y0, '╮', nil, style)
	screen.SetContent(x0, y1, '╰', nil, style)
	screen.SetContent(x1, y1, '╯', nil, style)
}

func putStr(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// clip truncates s to n runes with an ellipsis
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
