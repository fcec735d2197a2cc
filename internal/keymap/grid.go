package keymap

// Column indexes in a grid row
const (
	ColumnFrom = 0
	ColumnTo   = 1
)

// Cell is a grid cell. A nil *Cell is absent; an empty Text is still present.
type Cell struct {
	Text string
}

// NewCell creates a present cell holding text
func NewCell(text string) *Cell {
	return &Cell{Text: text}
}

// Row is one grid row: [ColumnFrom] and [ColumnTo]
type Row [2]*Cell

// Complete reports whether both cells are present
func (r Row) Complete() bool {
	return r[ColumnFrom] != nil && r[ColumnTo] != nil
}

// Grid is the editable two-column table shown to the user
type Grid struct {
	Rows []Row
}

// GridFromMapping builds a grid with one fully populated row per entry
func GridFromMapping(m *Mapping) Grid {
	entries := m.Entries()
	g := Grid{Rows: make([]Row, len(entries))}
	for i, e := range entries {
		g.Rows[i] = Row{NewCell(e.From), NewCell(e.To)}
	}
	return g
}

// Len returns the row count
func (g Grid) Len() int {
	return len(g.Rows)
}

// Cell returns the cell at row/col, nil when absent or out of range
func (g Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= len(g.Rows) || col < ColumnFrom || col > ColumnTo {
		return nil
	}
	return g.Rows[row][col]
}

// SetCell stores text at row/col, creating the cell if it was absent
func (g *Grid) SetCell(row, col int, text string) {
	if row < 0 || row >= len(g.Rows) || col < ColumnFrom || col > ColumnTo {
		return
	}
	g.Rows[row][col] = NewCell(text)
}

// ClearCell makes the cell at row/col absent
func (g *Grid) ClearCell(row, col int) {
	if row < 0 || row >= len(g.Rows) || col < ColumnFrom || col > ColumnTo {
		return
	}
	g.Rows[row][col] = nil
}

// AppendRow adds a row with both cells absent and returns its index
func (g *Grid) AppendRow() int {
	g.Rows = append(g.Rows, Row{})
	return len(g.Rows) - 1
}

// RemoveRow deletes the row at index
func (g *Grid) RemoveRow(row int) {
	if row < 0 || row >= len(g.Rows) {
		return
	}
	g.Rows = append(g.Rows[:row], g.Rows[row+1:]...)
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	c := Grid{Rows: make([]Row, len(g.Rows))}
	for i, r := range g.Rows {
		for col, cell := range r {
			if cell != nil {
				c.Rows[i][col] = NewCell(cell.Text)
			}
		}
	}
	return c
}

// Mapping reads the grid back into a fresh mapping.
// Rows with an absent cell are skipped.
func (g Grid) Mapping() *Mapping {
	m := New()
	for _, r := range g.Rows {
		if !r.Complete() {
			continue
		}
		m.Set(r[ColumnFrom].Text, r[ColumnTo].Text)
	}
	return m
}
