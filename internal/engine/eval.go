package engine

import "connect6/internal/connect6"

const (
	// 足够大，当成正负无穷（alpha/beta 初始边界）
	scoreInf = 1_000_000_000
	// 终局哨兵：已经成六 / 必然成六
	winScore = 100_000_000
)

var evalDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Evaluate 静态评估，纯函数，不改动局面。
// 沿四个方向只在连段起点数一次，按段长和两端开闭加权：
//   - 两端都被堵死的段一分不给（死段）
//   - 长度 >= 6 直接给终局哨兵分
//
// perspective 方的段加分，对手的段等量减分。
// variant 2 额外算每子的中心加成和带开口的活五威胁。
func Evaluate(pos *connect6.Position, perspective connect6.Player, variant int, w Weights) int {
	if w == (Weights{}) {
		w = defaultWeights
	}
	size := pos.Board.Size()
	center := size / 2
	score := 0

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := connect6.Cell{Row: r, Col: c}
			owner := pos.Board.Owner(cell)
			if owner == connect6.NoPlayer {
				continue
			}

			sign := 1
			if owner != perspective {
				sign = -1
			}

			if variant == 2 {
				dist := abs(r-center) + abs(c-center)
				score += sign * (size - dist) * w.Centrality
			}

			for _, d := range evalDirections {
				// 不是段起点就跳过，免得同一段重复计分
				prev := connect6.Cell{Row: r - d[0], Col: c - d[1]}
				if pos.Board.Owner(prev) == owner {
					continue
				}

				length := 1
				rr, cc := r+d[0], c+d[1]
				for pos.Board.Owner(connect6.Cell{Row: rr, Col: cc}) == owner {
					length++
					rr += d[0]
					cc += d[1]
				}

				headOpen := pos.Board.IsEmpty(prev)
				tailOpen := pos.Board.IsEmpty(connect6.Cell{Row: rr, Col: cc})

				score += sign * runWeight(length, headOpen, tailOpen, variant, w)
			}
		}
	}
	return score
}

func runWeight(length int, headOpen, tailOpen bool, variant int, w Weights) int {
	if length >= connect6.WinRunLength {
		return winScore
	}
	if !headOpen && !tailOpen {
		// 死段：再长也无法成六
		return 0
	}
	weight := 0
	switch length {
	case 2:
		weight = w.Run2
	case 3:
		weight = w.Run3
	case 4:
		weight = w.Run4
	case 5:
		weight = w.Run5
	}
	if variant == 2 && length == 5 {
		// 差一子成六且有落点，单独的威胁加成
		weight += w.OpenFive
	}
	return weight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
