package connect6

import "testing"

func TestFingerprintTranspositionEquivalence(t *testing.T) {
	// 两条不同着法顺序到达同一占子 + 同一走子方，指纹必须一致
	a, _ := NewPosition(9)
	a, _ = a.ApplyPair(SingleMove(Cell{4, 4}))
	a, _ = a.ApplyPair(PairMove(Cell{0, 0}, Cell{1, 1}))
	a, _ = a.ApplyPair(PairMove(Cell{2, 2}, Cell{3, 3}))

	b, _ := NewPosition(9)
	b, _ = b.ApplyPair(SingleMove(Cell{4, 4}))
	b, _ = b.ApplyPair(PairMove(Cell{1, 1}, Cell{0, 0}))
	b, _ = b.ApplyPair(PairMove(Cell{3, 3}, Cell{2, 2}))

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("transposition fingerprints differ: %+v vs %+v", a.Fingerprint(), b.Fingerprint())
	}
}

func TestFingerprintDependsOnSideToMove(t *testing.T) {
	b, _ := ParseBoard(`
		.........
		.X.......
		.........
		.........
		.........
		.........
		.........
		.........
		.........
	`)
	black := PositionFromBoard(b, Black).Fingerprint()
	white := PositionFromBoard(b, White).Fingerprint()
	if black == white {
		t.Fatal("same occupancy with different side to move must not share a fingerprint")
	}
}

func TestFingerprintEncodesBoardSize(t *testing.T) {
	// 尺寸是指纹的独立字段，不同尺寸的空盘在结构上就不相等
	small, _ := NewPosition(9)
	big, _ := NewPosition(19)
	fpSmall := small.Fingerprint()
	fpBig := big.Fingerprint()
	if fpSmall.Size != 9 || fpBig.Size != 19 {
		t.Fatalf("fingerprint sizes = %d,%d, want 9,19", fpSmall.Size, fpBig.Size)
	}
	if fpSmall == fpBig {
		t.Fatal("fingerprints of different board sizes collided")
	}
}

func TestFingerprintChangesWithOccupancy(t *testing.T) {
	pos, _ := NewPosition(9)
	before := pos.Fingerprint()
	after, _ := pos.ApplyPair(SingleMove(Cell{4, 4}))
	if before == after.Fingerprint() {
		t.Fatal("placing a stone must change the fingerprint")
	}
}
