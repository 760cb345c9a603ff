package mcts

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"connect6/internal/connect6"
	"connect6/internal/engine"
)

func testPosition(t *testing.T, diagram string, side connect6.Player) *connect6.Position {
	t.Helper()
	b, err := connect6.ParseBoard(diagram)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return connect6.PositionFromBoard(b, side)
}

func TestSearchOpeningTakesCenter(t *testing.T) {
	is := is.New(t)
	pos, err := connect6.NewPosition(9)
	is.NoErr(err)

	res, err := NewSearcher(SearchParams{Playouts: 64, Workers: 2}).Search(pos)
	is.NoErr(err)
	// 开局唯一候选就是中心单子
	is.True(res.Pair.Single)
	is.Equal(res.Pair.First, connect6.Cell{Row: 4, Col: 4})
	is.True(res.Playouts > 0)
}

func TestSearchForcedLastPair(t *testing.T) {
	is := is.New(t)
	// 满盘只差两个空位，唯一可下的组合必须原样返回
	rows := []string{
		".XXOOO",
		"XOOOXX",
		"OOXXXO",
		"XXXOOO",
		"XOOOXX",
		"OOXXX.",
	}
	pos := testPosition(t, strings.Join(rows, "\n"), connect6.Black)

	res, err := NewSearcher(SearchParams{Playouts: 32, Workers: 2}).Search(pos)
	is.NoErr(err)
	is.Equal(res.Pair, connect6.PairMove(connect6.Cell{Row: 0, Col: 0}, connect6.Cell{Row: 5, Col: 5}))

	child, err := pos.ApplyPair(res.Pair)
	is.NoErr(err)
	is.True(child.Board.IsFull())
}

func TestSearchFullBoard(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"XXXOOO",
		"XOOOXX",
		"OOXXXO",
		"XXXOOO",
		"XOOOXX",
		"OOXXXO",
	}
	pos := testPosition(t, strings.Join(rows, "\n"), connect6.Black)

	_, err := NewSearcher(SearchParams{}).Search(pos)
	is.True(errors.Is(err, engine.ErrNoLegalMoves))
}

func TestSearchConvergesOnImmediateWin(t *testing.T) {
	is := is.New(t)
	// 活五：成六点被候选生成器提到最前，终局价值 1 的分支会吸走访问量
	pos := testPosition(t, `
		.........
		.XXXXX...
		.........
		.O.......
		.O.......
		.........
		.........
		.........
		.........
	`, connect6.Black)

	params := SearchParams{
		Playouts:        3000,
		Workers:         2,
		RolloutDepth:    6,
		CandidateRadius: 1,
		MaxCandidates:   8,
	}
	res, err := NewSearcher(params).Search(pos)
	is.NoErr(err)

	child, err := pos.ApplyPair(res.Pair)
	is.NoErr(err)
	is.True(child.HasSix(connect6.Black))
	is.True(res.WinProb > 0.5)
}

func TestDefaultParamsFillZeroFields(t *testing.T) {
	is := is.New(t)
	p := SearchParams{Playouts: 10}.resolve()
	is.Equal(p.Playouts, 10)
	is.Equal(p.Workers, DefaultParams().Workers)
	is.Equal(p.Exploration, DefaultParams().Exploration)
	is.Equal(p.HeuristicVariant, 2)
}
