package sheet

import (
	"strings"

	"github.com/dmitrijs2005/washledger/internal/common"
)

// grid is an in-memory sheet; g[0] is the header row.
type grid [][]string

func newGrid(header []string) grid {
	return grid{append([]string(nil), header...)}
}

func (g grid) width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g grid) rows() []Row {
	if len(g) <= common.HeaderRows {
		return []Row{}
	}

	titles := make([]string, g.width())
	for i, t := range g[0] {
		titles[i] = strings.TrimSpace(t)
	}

	out := make([]Row, 0, len(g)-common.HeaderRows)
	for _, line := range g[common.HeaderRows:] {
		r := make(Row, len(titles))
		for i, t := range titles {
			if t == "" {
				continue
			}
			if i < len(line) {
				r[t] = line[i]
			} else {
				r[t] = ""
			}
		}
		out = append(out, r)
	}
	return out
}

func (g grid) find(value string) []Cell {
	var out []Cell
	for i, line := range g {
		for j, v := range line {
			if v == value {
				out = append(out, Cell{Row: i + 1, Col: j + 1})
			}
		}
	}
	return out
}

func (g grid) cell(row, col int) (string, error) {
	if row < 1 || row > len(g) || col < 1 || col > g.width() {
		return "", outOfRange(row, col)
	}
	line := g[row-1]
	if col > len(line) {
		return "", nil
	}
	return line[col-1], nil
}

func (g grid) set(row, col int, value string) error {
	if row <= common.HeaderRows || row > len(g) || col < 1 || col > g.width() {
		return outOfRange(row, col)
	}
	line := g[row-1]
	for len(line) < col {
		line = append(line, "")
	}
	line[col-1] = value
	g[row-1] = line
	return nil
}

func (g *grid) appendRow(values []string) error {
	w := g.width()
	if len(values) > w {
		return outOfRange(len(*g)+1, len(values))
	}
	line := make([]string, w)
	copy(line, values)
	*g = append(*g, line)
	return nil
}

func (g *grid) deleteRow(row int) error {
	if row <= common.HeaderRows || row > len(*g) {
		return outOfRange(row, 1)
	}
	*g = append((*g)[:row-1], (*g)[row:]...)
	return nil
}

func (g grid) clone() grid {
	out := make(grid, len(g))
	for i, line := range g {
		out[i] = append([]string(nil), line...)
	}
	return out
}
