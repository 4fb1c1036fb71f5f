package mapview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	userGlyph     = '◉'
	markerGlyph   = '●'
	selectedGlyph = '◆'
	coastGlyph    = '·'
)

type cellRole int

const (
	roleEmpty cellRole = iota
	roleCoast
	roleUser
	roleDestination
	roleSelected
)

var (
	coastStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A6670"))
	userStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498DB")).Bold(true)
	destinationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1C40F")).Bold(true)
)

type cell struct {
	glyph rune
	role  cellRole
}

// Render draws the map on a width x height grid. selected is a marker index,
// -1 for none. A removed map renders as an empty string.
func (m *Map) Render(width, height, selected int) string {
	if m.removed || width <= 0 || height <= 0 {
		return ""
	}

	v := m.viewport(width, height)
	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
		for c := range grid[r] {
			grid[r][c] = cell{glyph: ' ', role: roleEmpty}
		}
	}

	if m.basemap != nil {
		for _, line := range m.basemap.Visible(v.bounds()) {
			drawLine(grid, v, line.Points)
		}
	}

	for i, mk := range m.markers {
		if i == selected {
			continue
		}
		col, row := v.project(mk.Position)
		if !v.inside(col, row) {
			continue
		}
		if mk.Kind == UserMarker {
			// destinations sharing the cell stay visible
			if grid[row][col].role == roleDestination {
				continue
			}
			grid[row][col] = cell{glyph: userGlyph, role: roleUser}
		} else {
			grid[row][col] = cell{glyph: markerGlyph, role: roleDestination}
		}
	}

	if selected >= 0 && selected < len(m.markers) {
		col, row := v.project(m.markers[selected].Position)
		if v.inside(col, row) {
			grid[row][col] = cell{glyph: selectedGlyph, role: roleSelected}
		}
	}

	rows := make([]string, height)
	for r, line := range grid {
		rows[r] = renderRow(line)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles runs of equal role together
func renderRow(line []cell) string {
	var b strings.Builder
	var run strings.Builder
	role := roleEmpty

	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(styleFor(role).Render(run.String()))
		run.Reset()
	}

	for i, c := range line {
		if i > 0 && c.role != role {
			flush()
		}
		role = c.role
		run.WriteRune(c.glyph)
	}
	flush()
	return b.String()
}

func styleFor(role cellRole) lipgloss.Style {
	switch role {
	case roleCoast:
		return coastStyle
	case roleUser:
		return userStyle
	case roleDestination:
		return destinationStyle
	case roleSelected:
		return selectedStyle
	default:
		return lipgloss.NewStyle()
	}
}

// drawLine plots a polyline with Bresenham steps between projected vertices
func drawLine(grid [][]cell, v viewport, points []LatLon) {
	limit := 4 * (v.width + v.height)
	for i := 1; i < len(points); i++ {
		c0, r0 := v.project(points[i-1])
		c1, r1 := v.project(points[i])

		// long segments far off screen are not worth stepping through
		length := abs(c1-c0) + abs(r1-r0)
		if length > 64*limit || (length > limit && !v.inside(c0, r0) && !v.inside(c1, r1)) {
			continue
		}
		plotSegment(grid, v, c0, r0, c1, r1)
	}
}

func plotSegment(grid [][]cell, v viewport, c0, r0, c1, r1 int) {
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr
	for {
		if v.inside(c0, r0) && grid[r0][c0].role == roleEmpty {
			grid[r0][c0] = cell{glyph: coastGlyph, role: roleCoast}
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
