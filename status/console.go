package status

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Console writes one status line per frame, colouring counts when the writer is a colour terminal
type Console struct {
	w     io.Writer
	label lipgloss.Style
	red   lipgloss.Style
	blue  lipgloss.Style
}

// NewConsole binds a lipgloss renderer to w, so colour is dropped for pipes and files
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:     w,
		label: r.NewStyle().Foreground(lipgloss.Color("245")),
		red:   r.NewStyle().Foreground(lipgloss.Color("#ff5a5a")).Bold(true),
		blue:  r.NewStyle().Foreground(lipgloss.Color("#64a0ff")).Bold(true),
	}
}

func (c *Console) Emit(r Record) error {
	_, err := fmt.Fprintf(c.w, "%s %s%s %s\n",
		c.label.Render("Red particles:"),
		c.red.Render(strconv.Itoa(r.Red)),
		c.label.Render(", Blue particles:"),
		c.blue.Render(strconv.Itoa(r.Blue)),
	)
	return err
}

// Logger writes status lines through a stdlib logger, the debug log in terminal mode
type Logger struct {
	l *log.Logger
}

// NewLogger uses the standard logger when l is nil
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{l: l}
}

func (lg *Logger) Emit(r Record) error {
	lg.l.Printf("frame=%d %s explosions=%d", r.Frame, r.Line(), r.Explosions)
	return nil
}
