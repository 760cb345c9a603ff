package connect6

import "errors"

const (
	MinBoardSize = 6
	MaxBoardSize = 19

	// 连成六子获胜
	WinRunLength = 6
)

// ErrInvalidBoardSize 棋盘尺寸超出 [MinBoardSize, MaxBoardSize]
var ErrInvalidBoardSize = errors.New("connect6: board size out of range")

// ErrIllegalMove 落子越界 / 占用 / 回合内重复
var ErrIllegalMove = errors.New("connect6: illegal move")

type Player int8

const (
	NoPlayer Player = -1
	Black    Player = 0 // 'X'，先手
	White    Player = 1 // 'O'
)

func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Black:
		return "X"
	case White:
		return "O"
	}
	return "."
}

// Cell 棋盘坐标（行、列），创建后不再修改
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MovePair 一回合的落子。
// 开局回合只落一子（Single=true，只看 First），其余回合落两子。
type MovePair struct {
	First  Cell `json:"first"`
	Second Cell `json:"second"`
	Single bool `json:"single,omitempty"`
}

func SingleMove(c Cell) MovePair {
	return MovePair{First: c, Second: c, Single: true}
}

func PairMove(a, b Cell) MovePair {
	return MovePair{First: a, Second: b}
}

// Cells 本回合实际落下的格子
func (mp MovePair) Cells() []Cell {
	if mp.Single {
		return []Cell{mp.First}
	}
	return []Cell{mp.First, mp.Second}
}
