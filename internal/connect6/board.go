package connect6

import (
	"fmt"
	"strings"
)

// Board 可变尺寸棋盘。cells 用 NoPlayer 表示空位。
type Board struct {
	size  int
	cells []Player
}

func NewBoard(size int) (Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}
	b := Board{size: size, cells: make([]Player, size*size)}
	for i := range b.cells {
		b.cells[i] = NoPlayer
	}
	return b, nil
}

func (b Board) Size() int { return b.size }

func (b Board) index(c Cell) int { return c.Row*b.size + c.Col }

func (b Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// Owner 该格的归属；空位或越界返回 NoPlayer
func (b Board) Owner(c Cell) Player {
	if !b.InBounds(c) {
		return NoPlayer
	}
	return b.cells[b.index(c)]
}

func (b Board) IsEmpty(c Cell) bool {
	return b.InBounds(c) && b.cells[b.index(c)] == NoPlayer
}

func (b *Board) place(c Cell, p Player) {
	b.cells[b.index(c)] = p
}

func (b Board) Clone() Board {
	clone := Board{size: b.size, cells: make([]Player, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) StoneCount() int {
	n := 0
	for _, p := range b.cells {
		if p != NoPlayer {
			n++
		}
	}
	return n
}

func (b Board) IsFull() bool {
	for _, p := range b.cells {
		if p == NoPlayer {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			sb.WriteString(b.cells[r*b.size+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard 从字符图解析棋盘，'.' 空位、'X' 黑、'O' 白。
// 行按换行分割，空白行忽略。主要给测试和调试用。
func ParseBoard(diagram string) (Board, error) {
	lines := make([]string, 0, MaxBoardSize)
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	b, err := NewBoard(len(lines))
	if err != nil {
		return Board{}, err
	}
	for r, line := range lines {
		if len(line) != b.size {
			return Board{}, fmt.Errorf("connect6: row %d has %d cells, want %d", r, len(line), b.size)
		}
		for c, ch := range line {
			cell := Cell{Row: r, Col: c}
			switch ch {
			case '.':
			case 'X', 'x':
				b.place(cell, Black)
			case 'O', 'o':
				b.place(cell, White)
			default:
				return Board{}, fmt.Errorf("connect6: unknown cell char %q at (%d,%d)", ch, r, c)
			}
		}
	}
	return b, nil
}
