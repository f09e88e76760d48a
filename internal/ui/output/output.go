// Package output creates termenv outputs with a consistent color profile and
// prints lookup results.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/autoload/internal/ui/style"
)

// ColorProfile returns the color profile for w's environment.
// NO_COLOR forces Ascii.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w, defaulting to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Printer writes lookup results, one per line.
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: New(w)}
}

// Resolved prints name and the path it resolved to.
func (p *Printer) Resolved(name, path string) {
	p.line(style.Check+" "+name+" "+style.Arrow+" "+path, style.Green)
}

// Unresolved prints a name that resolved to no file.
func (p *Printer) Unresolved(name string) {
	p.line(style.Cross+" "+name, style.Red)
}

// Item prints a secondary line such as one path of a multi-result lookup.
func (p *Printer) Item(text string) {
	p.line("  "+style.Dot+" "+text, style.Slate)
}

// Plain prints text without decoration.
func (p *Printer) Plain(text string) {
	_, _ = p.out.WriteString(text + "\n")
}

func (p *Printer) line(text string, color lipgloss.Color) {
	styled := p.out.String(text).Foreground(termenv.RGBColor(string(color)))
	_, _ = p.out.WriteString(styled.String() + "\n")
}
