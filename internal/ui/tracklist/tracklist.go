// Package tracklist is the scrollable list shared by every tab.
package tracklist

import (
	"strings"

	"github.com/Sumitb09/music-player/internal/ui/render"
	"github.com/Sumitb09/music-player/internal/ui/styles"
)

// scrollMargin keeps this many rows visible around the cursor.
const scrollMargin = 2

// Row is one rendered line.
type Row struct {
	Title    string
	Subtitle string // artists, track count
	Right    string // duration, size
	Marks    string // ♥ ↓ prefixes
	Active   bool   // currently playing
}

// Model holds rows and cursor state. Height is set by the parent on resize.
type Model struct {
	rows   []Row
	pos    int
	offset int
	height int
}

// SetRows replaces the rows, keeping the cursor in bounds.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
	m.pos = clamp(m.pos, len(rows)-1)
	m.ensureVisible()
}

// Rows returns the current rows.
func (m *Model) Rows() []Row {
	return m.rows
}

// SetHeight sets the number of visible rows.
func (m *Model) SetHeight(h int) {
	m.height = max(h, 0)
	m.ensureVisible()
}

// Pos returns the cursor index, or -1 for an empty list.
func (m *Model) Pos() int {
	if len(m.rows) == 0 {
		return -1
	}
	return m.pos
}

// Offset returns the first visible index.
func (m *Model) Offset() int {
	return m.offset
}

// Jump moves the cursor to pos, clamped.
func (m *Model) Jump(pos int) {
	if len(m.rows) == 0 {
		return
	}
	m.pos = clamp(pos, len(m.rows)-1)
	m.ensureVisible()
}

// Move moves the cursor by delta, clamped.
func (m *Model) Move(delta int) {
	m.Jump(m.pos + delta)
}

// HandleKey handles list navigation keys and reports whether it did.
// Supported keys: j/down, k/up, g/home, G/end, ctrl+d, ctrl+u.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "j", "down":
		m.Move(1)
	case "k", "up":
		m.Move(-1)
	case "g", "home":
		m.Jump(0)
	case "G", "end":
		m.Jump(len(m.rows) - 1)
	case "ctrl+d":
		m.Move(max(m.height/2, 1))
	case "ctrl+u":
		m.Move(-max(m.height/2, 1))
	default:
		return false
	}
	return true
}

func (m *Model) ensureVisible() {
	if m.height <= 0 || len(m.rows) == 0 {
		m.offset = 0
		return
	}
	margin := min(scrollMargin, (m.height-1)/2)
	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	if m.pos >= m.offset+m.height-margin {
		m.offset = m.pos - m.height + margin + 1
	}
	m.offset = clamp(m.offset, max(len(m.rows)-m.height, 0))
}

// View renders the visible rows at the given width. empty is shown when
// there are no rows.
func (m *Model) View(width int, th *styles.Theme, empty string) string {
	st := th.S()
	if len(m.rows) == 0 {
		return st.Subtle.Render(render.Truncate(empty, width))
	}

	end := min(m.offset+m.height, len(m.rows))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		left := r.Marks + r.Title
		if r.Subtitle != "" {
			left += " · " + r.Subtitle
		}
		line := render.Row(render.Sanitize(left), r.Right, width)

		switch {
		case i == m.pos:
			line = st.Cursor.Render(line)
		case r.Active:
			line = st.Playing.Render(line)
		default:
			line = st.Base.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func clamp(v, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	if v < 0 {
		return 0
	}
	return v
}
