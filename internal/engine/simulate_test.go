package engine

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"connect6/internal/connect6"
)

func TestSimulateReferentialTransparency(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	pos := testPosition(t, `
		.........
		....X....
		.........
		.........
		.........
		.........
		.........
		.........
		.........
	`, connect6.White)
	mp := connect6.PairMove(connect6.Cell{Row: 2, Col: 2}, connect6.Cell{Row: 3, Col: 3})

	a, err := s.Simulate(pos, mp)
	is.NoErr(err)
	b, err := s.Simulate(pos, mp)
	is.NoErr(err)
	is.True(a == b) // 第二次必须命中缓存，拿回同一份快照

	stats := s.CacheStats()
	is.Equal(stats.SimMisses, int64(1))
	is.Equal(stats.SimHits, int64(1))
}

func TestSimulateDoesNotMutateParent(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	pos := testPosition(t, `
		.........
		....X....
		.........
		.........
		.........
		.........
		.........
		.........
		.........
	`, connect6.White)
	before := pos.Board.String()

	child, err := s.Simulate(pos, connect6.PairMove(connect6.Cell{Row: 0, Col: 0}, connect6.Cell{Row: 8, Col: 8}))
	is.NoErr(err)
	is.Equal(pos.Board.String(), before)
	is.Equal(child.Board.StoneCount(), 3)
}

func TestSimulateRejectsIllegalPair(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	pos := testPosition(t, `
		.........
		....X....
		.........
		.........
		.........
		.........
		.........
		.........
		.........
	`, connect6.White)
	_, err := s.Simulate(pos, connect6.PairMove(connect6.Cell{Row: 1, Col: 4}, connect6.Cell{Row: 0, Col: 0}))
	is.True(errors.Is(err, connect6.ErrIllegalMove))
}

func TestProbeScoreCaching(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	pos := testPosition(t, `
		.........
		.XXX.O...
		.........
		.........
		.........
		.........
		.........
		.........
		.........
	`, connect6.Black)
	cfg := SearchConfig{Heuristic: 1}

	first := s.ProbeScore(pos, connect6.Black, cfg)
	second := s.ProbeScore(pos, connect6.Black, cfg)
	is.Equal(first, second)

	stats := s.CacheStats()
	is.Equal(stats.ScoreMisses, int64(1))
	is.Equal(stats.ScoreHits, int64(1))

	// 视角换了就是另一个键，不允许串台
	flipped := s.ProbeScore(pos, connect6.White, cfg)
	is.Equal(flipped, -first)
	is.Equal(s.CacheStats().ScoreMisses, int64(2))
}

func TestSessionResetClearsCaches(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	pos, err := connect6.NewPosition(9)
	is.NoErr(err)
	_, err = s.Simulate(pos, connect6.SingleMove(connect6.Cell{Row: 4, Col: 4}))
	is.NoErr(err)

	s.Reset()
	is.Equal(s.CacheStats(), CacheStats{})

	// 清过之后同一键重新算一遍
	_, err = s.Simulate(pos, connect6.SingleMove(connect6.Cell{Row: 4, Col: 4}))
	is.NoErr(err)
	is.Equal(s.CacheStats().SimMisses, int64(1))
	is.Equal(s.CacheStats().SimHits, int64(0))
}

func TestSimulateKeysIncludeBoardSize(t *testing.T) {
	is := is.New(t)
	s := NewSession()
	small, err := connect6.NewPosition(9)
	is.NoErr(err)
	big, err := connect6.NewPosition(19)
	is.NoErr(err)

	a, err := s.Simulate(small, connect6.SingleMove(connect6.Cell{Row: 4, Col: 4}))
	is.NoErr(err)
	b, err := s.Simulate(big, connect6.SingleMove(connect6.Cell{Row: 4, Col: 4}))
	is.NoErr(err)

	// 同一着法、不同尺寸的空盘绝不能撞到一份快照
	is.Equal(s.CacheStats().SimMisses, int64(2))
	is.Equal(s.CacheStats().SimHits, int64(0))
	is.Equal(a.Board.Size(), 9)
	is.Equal(b.Board.Size(), 19)
}
