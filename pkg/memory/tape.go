package memory

import (
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// Tape is an unbounded Turing machine tape. Cells are materialised lazily:
// moving past either end adds one blank.
type Tape struct {
	cells []string
	head  int
}

// NewTape writes input followed by a single blank, head on the first cell.
func NewTape(input []string) *Tape {
	cells := make([]string, 0, len(input)+1)
	cells = append(cells, input...)
	cells = append(cells, domain.Blank)
	return &Tape{cells: cells}
}

// Read returns the symbol under the head.
func (t *Tape) Read() string { return t.cells[t.head] }

// Write replaces the symbol under the head.
func (t *Tape) Write(sym string) { t.cells[t.head] = sym }

func (t *Tape) Head() int { return t.head }

func (t *Tape) Len() int { return len(t.cells) }

// Move shifts the head one cell.
func (t *Tape) Move(m domain.Move) {
	switch m {
	case domain.MoveRight:
		t.head++
		if t.head == len(t.cells) {
			t.cells = append(t.cells, domain.Blank)
		}
	case domain.MoveLeft:
		if t.head == 0 {
			t.cells = slices.Insert(t.cells, 0, domain.Blank)
			return
		}
		t.head--
	}
}

// Snapshot returns an independent copy of the tape.
func (t *Tape) Snapshot() *domain.TapeSnapshot {
	return &domain.TapeSnapshot{Cells: slices.Clone(t.cells), Head: t.head}
}
