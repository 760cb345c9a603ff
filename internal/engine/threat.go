package engine

import (
	"sort"

	"github.com/samber/lo"

	"connect6/internal/connect6"
)

// 威胁检测的候选上限：比主搜索放得宽，宁可多算也别漏掉成六点
const threatMaxCandidates = 40

// immediateWins p 方本回合立刻成六的所有落法。
// p 不是当前走子方时在同一盘面上换边推演（"对手下一手能不能赢"）。
func (s *Session) immediateWins(pos *connect6.Position, p connect6.Player, cfg SearchConfig) ([]connect6.MovePair, error) {
	node := pos
	if pos.SideToMove != p {
		node = connect6.PositionFromBoard(pos.Board, p)
	}
	cands := candidates(node, cfg.CandidateRadius, threatMaxCandidates, nil)
	var wins []connect6.MovePair
	for _, mp := range enumerateTurns(node, cands) {
		child, err := s.Simulate(node, mp)
		if err != nil {
			return nil, err
		}
		if child.HasSix(p) {
			wins = append(wins, mp)
		}
	}
	return wins, nil
}

// blockingReply 对手存在立即胜时的强制应手。
// 先收集威胁落法里真正构成杀着的格子——单子就能成六的只算那一子，
// 两子缺一不可的两个都算——去重按行优先排序；再在这些点的两两组合里
// 找一对下完后对手不再有任何立即胜的（活四这种两翼威胁得两边各堵一点）。
// 确实堵不死就退回前两个点，至少消掉一部分威胁。
// 这手是被逼的，不做评估，分数按 0 算。
func (s *Session) blockingReply(pos *connect6.Position, opp connect6.Player, threats []connect6.MovePair, cfg SearchConfig) (connect6.MovePair, error) {
	cells := make([]connect6.Cell, 0, len(threats)*2)
	for _, t := range threats {
		if t.Single {
			cells = append(cells, t.First)
			continue
		}
		firstAlone := completesSix(pos, t.First, opp)
		secondAlone := completesSix(pos, t.Second, opp)
		if firstAlone {
			cells = append(cells, t.First)
		}
		if secondAlone {
			cells = append(cells, t.Second)
		}
		if !firstAlone && !secondAlone {
			// 双子配合的杀着，堵哪个都行，两个点都是候选
			cells = append(cells, t.First, t.Second)
		}
	}
	cells = lo.Uniq(cells)
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	if len(cells) == 1 {
		// 威胁只涉及一个点：另一子找任意合法空位补上
		for _, c := range pos.LegalEmptyCells() {
			if c != cells[0] {
				return connect6.PairMove(cells[0], c), nil
			}
		}
		// 只剩最后一个空位
		return connect6.SingleMove(cells[0]), nil
	}

	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			mp := connect6.PairMove(cells[i], cells[j])
			child, err := s.Simulate(pos, mp)
			if err != nil {
				return connect6.MovePair{}, err
			}
			remaining, err := s.immediateWins(child, opp, cfg)
			if err != nil {
				return connect6.MovePair{}, err
			}
			if len(remaining) == 0 {
				return mp, nil
			}
		}
	}
	return connect6.PairMove(cells[0], cells[1]), nil
}
