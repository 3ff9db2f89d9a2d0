package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pflow-xyz/go-sudoku/board"
)

// FromText parses a plain text grid. Cells are separated by
// whitespace or commas, rows by newlines; "0", "." and "_" all mark an
// empty cell. Blank lines and trailing "//" row markers are ignored,
// so the output of Board.String round-trips. The dimension is
// inferred from the total cell count.
func FromText(text string) (*board.Board, error) {
	var cells []int
	for ln, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "//"))
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, ",", " ")
		for _, tok := range strings.Fields(line) {
			if tok == "." || tok == "_" {
				cells = append(cells, board.Empty)
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad cell %q", ln+1, tok)
			}
			cells = append(cells, v)
		}
	}
	b, err := board.FromList(cells)
	if err != nil {
		return nil, fmt.Errorf("text puzzle: %w", err)
	}
	return b, nil
}

// ToText serializes a board to the plain text grid format.
func ToText(b *board.Board) string {
	dim := b.Dim()
	cells := b.Cells()
	var sb strings.Builder
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(cells[x+y*dim]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
