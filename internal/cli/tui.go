package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ben-mad-jlp/wireform/pkg/diagram"
	"github.com/ben-mad-jlp/wireform/pkg/pipeline"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

var (
	previewCanvasStyle   = lipgloss.NewStyle().Foreground(colorGray)
	previewSelectedStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	previewHelpStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// previewModel - Interactive layout preview
// =============================================================================

// previewModel is the bubbletea model for the layout preview. It draws every
// placement as a scaled box on a character grid and lets the user step
// through placements to inspect their bounds.
type previewModel struct {
	canvas     wireframe.Dims
	placements []diagram.Placement
	cursor     int
	width      int
	height     int
}

// newPreviewModel creates a preview model from a pipeline result.
func newPreviewModel(result *pipeline.Result) previewModel {
	return previewModel{
		canvas:     result.Layout.Canvas,
		placements: result.Layout.Placements,
		width:      80,
		height:     24,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k", "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "right", "l":
			if m.cursor < len(m.placements)-1 {
				m.cursor++
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.placements) - 1
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Preview"))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("↑/↓ select component  q quit"))
	b.WriteString("\n\n")

	gridW, gridH := m.gridSize()
	if gridW < 4 || gridH < 3 {
		b.WriteString(previewHelpStyle.Render("terminal too small"))
		return b.String()
	}

	grid := newCellGrid(gridW, gridH)
	for i, p := range m.placements {
		if i == m.cursor {
			continue // Drawn last so its border wins overlaps.
		}
		grid.drawBox(m.project(p.Bounds, gridW, gridH), false)
	}
	if len(m.placements) > 0 {
		grid.drawBox(m.project(m.placements[m.cursor].Bounds, gridW, gridH), true)
	}
	b.WriteString(grid.render())
	b.WriteString("\n")

	if len(m.placements) > 0 {
		p := m.placements[m.cursor]
		detail := fmt.Sprintf("%s %s  x=%.1f y=%.1f w=%.1f h=%.1f  [%d/%d]",
			p.Kind, p.ID,
			p.Bounds.X, p.Bounds.Y, p.Bounds.Width, p.Bounds.Height,
			m.cursor+1, len(m.placements))
		b.WriteString(previewSelectedStyle.Render(detail))
	}

	return b.String()
}

// gridSize fits the canvas aspect ratio into the terminal, compensating for
// character cells being roughly twice as tall as wide.
func (m previewModel) gridSize() (int, int) {
	maxW := m.width - 2
	maxH := m.height - 6
	if m.canvas.Width <= 0 || m.canvas.Height <= 0 {
		return 0, 0
	}

	scale := math.Min(
		float64(maxW)/m.canvas.Width,
		float64(maxH)/(m.canvas.Height*0.5),
	)
	w := int(m.canvas.Width * scale)
	h := int(m.canvas.Height * 0.5 * scale)
	if w > maxW {
		w = maxW
	}
	if h > maxH {
		h = maxH
	}
	return w, h
}

// project maps a canvas rectangle onto grid cells.
func (m previewModel) project(r wireframe.Rect, gridW, gridH int) cellRect {
	sx := float64(gridW) / m.canvas.Width
	sy := float64(gridH) / m.canvas.Height

	x0 := int(math.Round(r.X * sx))
	y0 := int(math.Round(r.Y * sy))
	x1 := int(math.Round(r.Right() * sx))
	y1 := int(math.Round(r.Bottom() * sy))

	// A box needs at least two cells per axis for its border.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	if x1 >= gridW {
		x1 = gridW - 1
	}
	if y1 >= gridH {
		y1 = gridH - 1
	}
	return cellRect{x0: x0, y0: y0, x1: x1, y1: y1}
}

// =============================================================================
// cellGrid - Character canvas
// =============================================================================

type cellRect struct {
	x0, y0, x1, y1 int
}

// cellGrid is a rune buffer that boxes are drawn onto. Selected cells are
// tracked separately so render can style them.
type cellGrid struct {
	w, h     int
	cells    []rune
	selected []bool
}

func newCellGrid(w, h int) *cellGrid {
	cells := make([]rune, w*h)
	for i := range cells {
		cells[i] = ' '
	}
	return &cellGrid{w: w, h: h, cells: cells, selected: make([]bool, w*h)}
}

func (g *cellGrid) set(x, y int, r rune, sel bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	i := y*g.w + x
	g.cells[i] = r
	g.selected[i] = sel
}

// drawBox draws a rectangle border. The selected box uses double lines.
func (g *cellGrid) drawBox(r cellRect, sel bool) {
	horiz, vert := '─', '│'
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if sel {
		horiz, vert = '═', '║'
		tl, tr, bl, br = '╔', '╗', '╚', '╝'
	}

	for x := r.x0 + 1; x < r.x1; x++ {
		g.set(x, r.y0, horiz, sel)
		g.set(x, r.y1, horiz, sel)
	}
	for y := r.y0 + 1; y < r.y1; y++ {
		g.set(r.x0, y, vert, sel)
		g.set(r.x1, y, vert, sel)
	}
	g.set(r.x0, r.y0, tl, sel)
	g.set(r.x1, r.y0, tr, sel)
	g.set(r.x0, r.y1, bl, sel)
	g.set(r.x1, r.y1, br, sel)
}

func (g *cellGrid) render() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		var run strings.Builder
		runSel := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runSel {
				b.WriteString(previewSelectedStyle.Render(run.String()))
			} else {
				b.WriteString(previewCanvasStyle.Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			if g.selected[i] != runSel {
				flush()
				runSel = g.selected[i]
			}
			run.WriteRune(g.cells[i])
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}
