// Package display renders colors for the terminal, either as styled text
// blocks or as JSON.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MeKo-Tech/colorpicker/internal/colormodel"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'text' or 'json'", s)
	}
}

// Options configures a Printer.
type Options struct {
	Format Format
	// NoColor disables all ANSI styling in text output.
	NoColor bool
}

// Printer writes conversion, palette and random results.
type Printer struct {
	w        io.Writer
	format   Format
	renderer *lipgloss.Renderer
	heading  lipgloss.Style
	label    lipgloss.Style
}

// NewPrinter creates a Printer writing to w. The color profile is detected
// from w unless NoColor is set.
func NewPrinter(w io.Writer, opts Options) *Printer {
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	renderer := lipgloss.NewRenderer(w)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		format:   format,
		renderer: renderer,
		heading:  renderer.NewStyle().Foreground(lipgloss.Color("6")),
		label:    renderer.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// Conversion prints a single parsed color.
func (p *Printer) Conversion(c colormodel.Color, preview bool) error {
	if p.format == FormatJSON {
		return p.writeJSON(c)
	}

	hex := strings.ToUpper(c.Hex)
	var sb strings.Builder
	sb.WriteString(p.title("Color conversion"))
	sb.WriteString(p.colored(c, "HEX: "+hex) + "\n")
	sb.WriteString(p.label.Render("RGB: "+c.RGB.String()) + "\n")
	sb.WriteString(p.label.Render("HSL: "+c.HSL.String()) + "\n\n")
	if preview {
		sb.WriteString(p.block(c, true))
	}
	return p.write(sb.String())
}

// Palette prints the colors generated from base.
func (p *Printer) Palette(base colormodel.Color, colors []colormodel.Color, preview bool) error {
	if p.format == FormatJSON {
		return p.writeJSON(colors)
	}

	var sb strings.Builder
	sb.WriteString(p.title("Palette"))
	fmt.Fprintf(&sb, "Based on %s, generated %d colors\n\n", strings.ToUpper(base.Hex), len(colors))
	for _, c := range colors {
		sb.WriteString(p.block(c, preview))
	}
	return p.write(sb.String())
}

// Random prints randomly generated colors, numbered from 1.
func (p *Printer) Random(colors []colormodel.Color, preview bool) error {
	if p.format == FormatJSON {
		return p.writeJSON(colors)
	}

	var sb strings.Builder
	sb.WriteString(p.title("Random colors"))
	for i, c := range colors {
		fmt.Fprintf(&sb, "Color %d:\n", i+1)
		sb.WriteString(p.block(c, preview))
	}
	return p.write(sb.String())
}

func (p *Printer) title(s string) string {
	return "\n" + p.heading.Render("🎨 "+s) + "\n\n"
}

// block renders one color as its hex line followed by rgb() and hsl().
// With preview the hex is preceded by a swatch filled with the color;
// otherwise the hex itself is drawn in the color.
func (p *Printer) block(c colormodel.Color, preview bool) string {
	hex := strings.ToUpper(c.Hex)

	var first string
	if preview {
		swatch := p.renderer.NewStyle().
			Background(lipgloss.Color(c.Hex)).
			Foreground(lipgloss.Color("#ffffff")).
			Render("  ")
		first = swatch + " " + hex
	} else {
		first = p.colored(c, hex)
	}

	return fmt.Sprintf("%s\n  %s\n  %s\n\n", first, c.RGB, c.HSL)
}

func (p *Printer) colored(c colormodel.Color, s string) string {
	return p.renderer.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render(s)
}

func (p *Printer) write(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
