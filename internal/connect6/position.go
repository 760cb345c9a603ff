package connect6

import "fmt"

// 四个扫描方向：横、竖、两条对角线
var runDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Position = 棋盘 + 轮到谁走 + 最近一次落子。
// ApplyPair 返回新 Position，原局面永远不被修改。
type Position struct {
	Board      Board
	SideToMove Player

	lastMove Cell
	hasLast  bool
}

// NewPosition 空棋盘开局，黑方（'X'）先行
func NewPosition(size int) (*Position, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Position{Board: b, SideToMove: Black}, nil
}

// PositionFromBoard 从既有盘面构造局面（测试 / 调试入口）
func PositionFromBoard(b Board, sideToMove Player) *Position {
	return &Position{Board: b, SideToMove: sideToMove}
}

// Opening 是否还是开局回合（只落一子）
func (p *Position) Opening() bool {
	return p.Board.StoneCount() == 0
}

// LastMove 最近落下的一子；开局前返回 false
func (p *Position) LastMove() (Cell, bool) {
	return p.lastMove, p.hasLast
}

func (p *Position) emptyCount() int {
	size := p.Board.Size()
	return size*size - p.Board.StoneCount()
}

// LegalEmptyCells 所有空位，按行优先顺序
func (p *Position) LegalEmptyCells() []Cell {
	size := p.Board.Size()
	cells := make([]Cell, 0, size*size-p.Board.StoneCount())
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := Cell{Row: r, Col: c}
			if p.Board.IsEmpty(cell) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// validatePair 原子校验：数量、越界、占用、回合内重复。
// 不通过则棋盘保持原样。
// 单子回合只有两种合法情形：开局第一手，或者棋盘只剩最后一个空位。
func (p *Position) validatePair(mp MovePair) error {
	if mp.Single {
		if !p.Opening() && p.emptyCount() != 1 {
			return fmt.Errorf("%w: turn needs exactly 2 stones", ErrIllegalMove)
		}
	} else if p.Opening() {
		return fmt.Errorf("%w: opening turn places exactly 1 stone", ErrIllegalMove)
	}
	seen := make(map[Cell]bool, 2)
	for _, c := range mp.Cells() {
		if !p.Board.InBounds(c) {
			return fmt.Errorf("%w: (%d,%d) out of bounds", ErrIllegalMove, c.Row, c.Col)
		}
		if !p.Board.IsEmpty(c) {
			return fmt.Errorf("%w: (%d,%d) occupied", ErrIllegalMove, c.Row, c.Col)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate cell (%d,%d) in one turn", ErrIllegalMove, c.Row, c.Col)
		}
		seen[c] = true
	}
	return nil
}

// ApplyPair 在副本上落完本回合的子并交换走子方
func (p *Position) ApplyPair(mp MovePair) (*Position, error) {
	if err := p.validatePair(mp); err != nil {
		return nil, err
	}
	next := &Position{
		Board:      p.Board.Clone(),
		SideToMove: p.SideToMove.Opponent(),
	}
	for _, c := range mp.Cells() {
		next.Board.place(c, p.SideToMove)
		next.lastMove = c
		next.hasLast = true
	}
	return next, nil
}

// WinAt 以 c 为起点沿四个方向数连子，是否达到六连
func (p *Position) WinAt(c Cell, player Player) bool {
	if p.Board.Owner(c) != player {
		return false
	}
	for _, d := range runDirections {
		count := 1
		for r, cc := c.Row+d[0], c.Col+d[1]; p.Board.Owner(Cell{Row: r, Col: cc}) == player; r, cc = r+d[0], cc+d[1] {
			count++
		}
		for r, cc := c.Row-d[0], c.Col-d[1]; p.Board.Owner(Cell{Row: r, Col: cc}) == player; r, cc = r-d[0], cc-d[1] {
			count++
		}
		if count >= WinRunLength {
			return true
		}
	}
	return false
}

// HasSix 全盘扫描 player 是否已有六连
func (p *Position) HasSix(player Player) bool {
	size := p.Board.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := Cell{Row: r, Col: c}
			if p.Board.Owner(cell) != player {
				continue
			}
			for _, d := range runDirections {
				// 只从每段连子的起点数一次
				prev := Cell{Row: r - d[0], Col: c - d[1]}
				if p.Board.Owner(prev) == player {
					continue
				}
				count := 1
				for rr, cc := r+d[0], c+d[1]; p.Board.Owner(Cell{Row: rr, Col: cc}) == player; rr, cc = rr+d[0], cc+d[1] {
					count++
				}
				if count >= WinRunLength {
					return true
				}
			}
		}
	}
	return false
}

// Winner 有六连的一方；没有则 NoPlayer
func (p *Position) Winner() Player {
	if p.HasSix(Black) {
		return Black
	}
	if p.HasSix(White) {
		return White
	}
	return NoPlayer
}

// IsDraw 棋盘满且无人获胜
func (p *Position) IsDraw() bool {
	return p.Board.IsFull() && p.Winner() == NoPlayer
}

// Center 棋盘中心格
func (p *Position) Center() Cell {
	mid := p.Board.Size() / 2
	return Cell{Row: mid, Col: mid}
}
