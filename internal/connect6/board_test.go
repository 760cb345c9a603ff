package connect6

import (
	"errors"
	"testing"
)

func TestNewBoardSizeBounds(t *testing.T) {
	for _, size := range []int{MinBoardSize, 9, MaxBoardSize} {
		if _, err := NewBoard(size); err != nil {
			t.Fatalf("size %d should be valid: %v", size, err)
		}
	}
	for _, size := range []int{0, 5, 20, -3} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidBoardSize) {
			t.Fatalf("size %d should fail with ErrInvalidBoardSize, got %v", size, err)
		}
	}
}

func TestParseBoardRoundTrip(t *testing.T) {
	diagram := `
		.........
		.XXXXX...
		....O....
		....O....
		.........
		.........
		.........
		.........
		.........
	`
	b, err := ParseBoard(diagram)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if b.Size() != 9 {
		t.Fatalf("size = %d, want 9", b.Size())
	}
	if got := b.Owner(Cell{Row: 1, Col: 3}); got != Black {
		t.Fatalf("(1,3) = %v, want X", got)
	}
	if got := b.Owner(Cell{Row: 2, Col: 4}); got != White {
		t.Fatalf("(2,4) = %v, want O", got)
	}
	if b.StoneCount() != 7 {
		t.Fatalf("stones = %d, want 7", b.StoneCount())
	}

	// String 再 Parse 回来必须一致
	b2, err := ParseBoard(b.String())
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			cell := Cell{Row: r, Col: c}
			if b.Owner(cell) != b2.Owner(cell) {
				t.Fatalf("round trip mismatch at (%d,%d)", r, c)
			}
		}
	}
}

func TestParseBoardRejectsBadInput(t *testing.T) {
	if _, err := ParseBoard("...\n...\n..."); !errors.Is(err, ErrInvalidBoardSize) {
		t.Fatalf("3x3 should be rejected, got %v", err)
	}
	if _, err := ParseBoard("......\n..?...\n......\n......\n......\n......"); err == nil {
		t.Fatal("unknown char should be rejected")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b, _ := NewBoard(9)
	clone := b.Clone()
	clone.place(Cell{Row: 4, Col: 4}, Black)
	if !b.IsEmpty(Cell{Row: 4, Col: 4}) {
		t.Fatal("mutating the clone leaked into the original")
	}
}
