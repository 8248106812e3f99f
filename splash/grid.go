package splash

import (
	"math"

	"github.com/lixenwraith/habit-splash/habit"
	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/vmath"
)

// Cell is one grid square; X, Y are its top-left in layer cells and follow layout changes
type Cell struct {
	Row, Col  int
	X, Y      int
	Active    bool
	Intensity float64
	Pulse     float64
	IsHabit   bool
	Category  habit.Category
}

// Layout places an N×N grid inside a surface, cells are twice as wide as tall to look square in a terminal
type Layout struct {
	OriginX, OriginY int
	CellW, CellH     int
}

// Grid is the fixed N×N habit grid, cell count never changes after construction
type Grid struct {
	size   int
	cells  []Cell
	layout Layout
}

// NewGrid builds a size×size grid, each cell tagged as habit with probability habitProb
func NewGrid(size int, habitProb float64, rng *vmath.FastRand) *Grid {
	size = max(size, 0)
	g := &Grid{size: size, cells: make([]Cell, 0, size*size)}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell := Cell{Row: row, Col: col}
			if rng.Chance(habitProb) {
				cell.IsHabit = true
				cell.Category = habit.Category(1 + rng.Intn(habit.Count))
			}
			g.cells = append(g.cells, cell)
		}
	}
	return g
}

// ComputeLayout fits the grid into width×height, centered
func ComputeLayout(size, width, height int) Layout {
	if size <= 0 {
		return Layout{}
	}
	cellW := width / size
	cellH := cellW / 2
	if cellH*size > height {
		cellH = height / size
		cellW = cellH * 2
	}
	cellW = max(cellW, 1)
	cellH = max(cellH, 1)
	return Layout{
		OriginX: (width - cellW*size) / 2,
		OriginY: (height - cellH*size) / 2,
		CellW:   cellW,
		CellH:   cellH,
	}
}

// Relayout recomputes cell positions for a new surface, activation state is untouched
func (g *Grid) Relayout(width, height int) {
	g.layout = ComputeLayout(g.size, width, height)
	for i := range g.cells {
		c := &g.cells[i]
		c.X = g.layout.OriginX + c.Col*g.layout.CellW
		c.Y = g.layout.OriginY + c.Row*g.layout.CellH
	}
}

// Activate runs the staggered activation wave at eased progress
// Cells past the point where 1-index×delay reaches zero snap straight to full
func (g *Grid) Activate(eased float64) {
	eased = vmath.Clamp01(eased)
	wave := int(math.Floor(eased * float64(len(g.cells)) * parameter.GridWaveStretch))
	for i := range g.cells {
		if i > wave {
			break
		}
		delay := float64(i) * parameter.GridWaveDelay
		local := 1.0
		if denom := 1 - delay; denom > 0 {
			local = vmath.Clamp01((eased - delay) / denom)
		}
		if local > 0 {
			c := &g.cells[i]
			c.Active = true
			c.Intensity = local
			c.Pulse = vmath.Clamp01(vmath.Wave(local*math.Pi, 0.5, 0.5))
		}
	}
}

// PulseHabits drives every habit cell's pulse from a shared sine of elapsed time plus per-cell jitter
func (g *Grid) PulseHabits(elapsedMs float64, rng *vmath.FastRand) {
	value := vmath.Wave(elapsedMs*parameter.PulseCellRate, parameter.PulseCellCenter, parameter.PulseCellAmp)
	for i := range g.cells {
		c := &g.cells[i]
		if !c.IsHabit {
			continue
		}
		c.Pulse = vmath.Clamp01(value + rng.Float64()*parameter.PulseJitter)
	}
}

// Cells returns a copy of the grid cells in row-major order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Layout returns the current layout
func (g *Grid) Layout() Layout {
	return g.layout
}

// Size is the grid dimension N
func (g *Grid) Size() int {
	return g.size
}

// Len is the constant cell count N×N
func (g *Grid) Len() int {
	return len(g.cells)
}

// HabitCount returns how many cells carry a habit category
func (g *Grid) HabitCount() int {
	n := 0
	for _, c := range g.cells {
		if c.IsHabit {
			n++
		}
	}
	return n
}
