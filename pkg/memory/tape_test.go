package memory_test

import (
	"slices"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/memory"
)

func TestTape_Init(t *testing.T) {
	tape := memory.NewTape([]string{"0", "1"})
	snap := tape.Snapshot()
	if !slices.Equal(snap.Cells, []string{"0", "1", domain.Blank}) {
		t.Errorf("unexpected cells %v", snap.Cells)
	}
	if snap.Head != 0 || tape.Read() != "0" {
		t.Errorf("expected head on first cell, got %d (%q)", snap.Head, tape.Read())
	}
}

func TestTape_ExtendsRight(t *testing.T) {
	tape := memory.NewTape([]string{"a"})
	tape.Move(domain.MoveRight) // onto the trailing blank
	before := tape.Len()

	tape.Move(domain.MoveRight)
	if tape.Len() != before+1 {
		t.Errorf("expected exactly one new cell, len %d -> %d", before, tape.Len())
	}
	if tape.Head() != before {
		t.Errorf("expected head %d, got %d", before, tape.Head())
	}
	if tape.Read() != domain.Blank {
		t.Errorf("expected blank, got %q", tape.Read())
	}
}

func TestTape_ExtendsLeft(t *testing.T) {
	tape := memory.NewTape([]string{"a", "b"})
	tape.Write("x")
	tape.Move(domain.MoveLeft)

	snap := tape.Snapshot()
	if !slices.Equal(snap.Cells, []string{domain.Blank, "x", "b", domain.Blank}) {
		t.Errorf("unexpected cells %v", snap.Cells)
	}
	if snap.Head != 0 {
		t.Errorf("expected head 0, got %d", snap.Head)
	}
	// The written cell is adjacent to the head.
	tape.Move(domain.MoveRight)
	if tape.Read() != "x" {
		t.Errorf("expected x after moving back, got %q", tape.Read())
	}
}

func TestTape_SnapshotIsCopy(t *testing.T) {
	tape := memory.NewTape(nil)
	snap := tape.Snapshot()
	tape.Write("1")
	if snap.Cells[0] != domain.Blank {
		t.Errorf("snapshot aliased tape: %v", snap.Cells)
	}
}
