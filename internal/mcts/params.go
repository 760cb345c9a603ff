package mcts

import "time"

// SearchParams UCT 搜索参数
type SearchParams struct {
	Playouts int           // 总仿真次数，摊给各 worker
	MaxTime  time.Duration // 0 不限时
	Workers  int           // 根并行：每个 worker 一棵独立的树，最后按访问量合并

	Exploration float64 // UCT 探索常数（通常 1.0 - 2.0）

	RolloutDepth    int // 随机走子最多走这么多回合，到头用静态评估定胜负
	CandidateRadius int
	MaxCandidates   int

	HeuristicVariant int // rollout 截断时用的评估变体
}

func DefaultParams() SearchParams {
	return SearchParams{
		Playouts:         2000,
		MaxTime:          3 * time.Second,
		Workers:          4,
		Exploration:      1.2,
		RolloutDepth:     16,
		CandidateRadius:  2,
		MaxCandidates:    8,
		HeuristicVariant: 2,
	}
}

func (p SearchParams) resolve() SearchParams {
	d := DefaultParams()
	if p.Playouts <= 0 {
		p.Playouts = d.Playouts
	}
	if p.Workers <= 0 {
		p.Workers = d.Workers
	}
	if p.Exploration <= 0 {
		p.Exploration = d.Exploration
	}
	if p.RolloutDepth <= 0 {
		p.RolloutDepth = d.RolloutDepth
	}
	if p.CandidateRadius <= 0 {
		p.CandidateRadius = d.CandidateRadius
	}
	if p.MaxCandidates <= 0 {
		p.MaxCandidates = d.MaxCandidates
	}
	if p.HeuristicVariant != 1 && p.HeuristicVariant != 2 {
		p.HeuristicVariant = d.HeuristicVariant
	}
	return p
}
