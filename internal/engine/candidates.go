package engine

import "connect6/internal/connect6"

// candidates 产生一组值得考虑的单点落子，行优先顺序保证确定性。
//
//   - focus 非空：只看 focus 切比雪夫距离 radius 以内的空位
//     （一般传对手最近一手，围着它下）
//   - focus 为空：任何棋子 radius 以内的空位
//   - 空棋盘：只给中心一格（开局下中心）
//
// 截断到 maxCount 之前，先把"单子就能成六"的点提到最前——
// 赢棋点 / 必堵点绝不能被数量上限剪掉。
func candidates(pos *connect6.Position, radius, maxCount int, focus *connect6.Cell) []connect6.Cell {
	if pos.Board.StoneCount() == 0 {
		return []connect6.Cell{pos.Center()}
	}
	size := pos.Board.Size()

	out := make([]connect6.Cell, 0, maxCount*2)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := connect6.Cell{Row: r, Col: c}
			if !pos.Board.IsEmpty(cell) {
				continue
			}
			if focus != nil {
				if chebyshev(cell, *focus) <= radius {
					out = append(out, cell)
				}
				continue
			}
			if nearAnyStone(pos, cell, radius) {
				out = append(out, cell)
			}
		}
	}

	out = promoteWinningCells(pos, out)
	if maxCount > 0 && len(out) > maxCount {
		out = out[:maxCount]
	}
	return out
}

func chebyshev(a, b connect6.Cell) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func nearAnyStone(pos *connect6.Position, cell connect6.Cell, radius int) bool {
	for r := cell.Row - radius; r <= cell.Row+radius; r++ {
		for c := cell.Col - radius; c <= cell.Col+radius; c++ {
			if pos.Board.Owner(connect6.Cell{Row: r, Col: c}) != connect6.NoPlayer {
				return true
			}
		}
	}
	return false
}

// promoteWinningCells 把任一方单子成六的点稳定地挪到最前
func promoteWinningCells(pos *connect6.Position, cells []connect6.Cell) []connect6.Cell {
	wins := make([]connect6.Cell, 0, 2)
	rest := make([]connect6.Cell, 0, len(cells))
	for _, cell := range cells {
		if completesSix(pos, cell, pos.SideToMove) || completesSix(pos, cell, pos.SideToMove.Opponent()) {
			wins = append(wins, cell)
		} else {
			rest = append(rest, cell)
		}
	}
	if len(wins) == 0 {
		return cells
	}
	return append(wins, rest...)
}

// completesSix 假设 p 在 cell 落一子，是否立刻成六（不真正落子）
func completesSix(pos *connect6.Position, cell connect6.Cell, p connect6.Player) bool {
	if !pos.Board.IsEmpty(cell) {
		return false
	}
	for _, d := range evalDirections {
		count := 1
		for r, c := cell.Row+d[0], cell.Col+d[1]; pos.Board.Owner(connect6.Cell{Row: r, Col: c}) == p; r, c = r+d[0], c+d[1] {
			count++
		}
		for r, c := cell.Row-d[0], cell.Col-d[1]; pos.Board.Owner(connect6.Cell{Row: r, Col: c}) == p; r, c = r-d[0], c-d[1] {
			count++
		}
		if count >= connect6.WinRunLength {
			return true
		}
	}
	return false
}
