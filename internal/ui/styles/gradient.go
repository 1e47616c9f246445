package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not #rrggbb (ANSI indexes).
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Accent renders text with a gradient from the primary to the secondary
// color, one step per grapheme.
func (t *Theme) Accent(text string) string {
	return Gradient(text, t.Primary, t.Secondary)
}

// Gradient renders text with a horizontal color gradient.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range Blend(len(clusters), from, to) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(clusters[i]))
	}
	return b.String()
}

// Blend returns n colors from from to to, blended in HCL space.
func Blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	c1, c2 := parseHex(from), parseHex(to)
	out := make([]lipgloss.Color, n)
	for i := range n {
		out[i] = lipgloss.Color(c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
