package mcts

import (
	"time"

	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"connect6/internal/connect6"
	"connect6/internal/engine"
)

// Result 一次 Search 的结果
type Result struct {
	Pair     connect6.MovePair
	WinProb  float64 // 根方（当前走子方）视角
	Playouts int64
	Elapsed  time.Duration
}

// Searcher 根并行 UCT：每个 worker 建一棵独立的树跑随机 rollout，
// 树之间零共享，最后只在根上把访问量和价值合并。
type Searcher struct {
	params SearchParams
}

func NewSearcher(params SearchParams) *Searcher {
	return &Searcher{params: params.resolve()}
}

type tally struct {
	visits  int64
	utility float64
}

func (s *Searcher) Search(pos *connect6.Position) (Result, error) {
	start := time.Now()
	if pos.Board.IsFull() {
		return Result{}, engine.ErrNoLegalMoves
	}
	rootPairs := engine.TurnOptions(pos, s.params.CandidateRadius, s.params.MaxCandidates)
	if len(rootPairs) == 0 {
		return Result{}, engine.ErrNoLegalMoves
	}

	var deadline time.Time
	if s.params.MaxTime > 0 {
		deadline = start.Add(s.params.MaxTime)
	}
	perWorker := s.params.Playouts / s.params.Workers
	if perWorker < 1 {
		perWorker = 1
	}

	tallies := make([]map[connect6.MovePair]tally, s.params.Workers)
	var g errgroup.Group
	for w := 0; w < s.params.Workers; w++ {
		w := w
		g.Go(func() error {
			t, err := s.runTree(pos, rootPairs, perWorker, deadline)
			if err != nil {
				return err
			}
			tallies[w] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	merged := make(map[connect6.MovePair]tally, len(rootPairs))
	var total int64
	for _, t := range tallies {
		for mp, v := range t {
			m := merged[mp]
			m.visits += v.visits
			m.utility += v.utility
			merged[mp] = m
			total += v.visits
		}
	}

	// 按访问量选，平手保留枚举顺序靠前的
	best := rootPairs[0]
	bestVisits := int64(-1)
	for _, mp := range rootPairs {
		if m := merged[mp]; m.visits > bestVisits {
			bestVisits = m.visits
			best = mp
		}
	}

	winProb := 0.5
	if m := merged[best]; m.visits > 0 {
		winProb = (m.utility/float64(m.visits) + 1) / 2
	}
	return Result{
		Pair:     best,
		WinProb:  winProb,
		Playouts: total,
		Elapsed:  time.Since(start),
	}, nil
}

// runTree 单 worker 的完整 UCT 循环，返回根子节点的统计
func (s *Searcher) runTree(pos *connect6.Position, rootPairs []connect6.MovePair, playouts int, deadline time.Time) (map[connect6.MovePair]tally, error) {
	rootSide := pos.SideToMove
	root := newNode(connect6.MovePair{}, pos, nil, append([]connect6.MovePair(nil), rootPairs...))

	for i := 0; i < playouts; i++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		if err := s.playout(root, rootSide); err != nil {
			return nil, err
		}
	}

	out := make(map[connect6.MovePair]tally, len(root.children))
	for _, ch := range root.children {
		out[ch.pair] = tally{visits: ch.visits, utility: ch.utilitySum}
	}
	return out, nil
}

// playout 一次仿真：Selection -> Expansion -> Rollout -> Backpropagation
func (s *Searcher) playout(root *node, rootSide connect6.Player) error {
	n := root

	// Selection：沿 UCT 最大的分支下行，碰到叶子或终局停
	for n.expanded() && !n.terminal && len(n.children) > 0 {
		n = s.selectChild(n, rootSide)
	}

	var value float64
	switch {
	case n.terminal:
		value = n.utility
	case len(n.untried) > 0:
		// Expansion：按枚举顺序弹一个还没试过的落法
		mp := n.untried[0]
		n.untried = n.untried[1:]
		mover := n.pos.SideToMove
		childPos, err := n.pos.ApplyPair(mp)
		if err != nil {
			return err
		}
		child := newNode(mp, childPos, n, nil)
		switch {
		case childPos.HasSix(mover):
			child.terminal = true
			child.utility = 1
			if mover != rootSide {
				child.utility = -1
			}
		case childPos.Board.IsFull():
			child.terminal = true
		default:
			child.untried = engine.TurnOptions(childPos, s.params.CandidateRadius, s.params.MaxCandidates)
		}
		n.children = append(n.children, child)
		n = child
		if n.terminal {
			value = n.utility
		} else {
			value, err = s.rollout(n.pos, rootSide)
			if err != nil {
				return err
			}
		}
	default:
		// 展开完却没有子节点，当静态叶子处理
		value = s.staticVerdict(n.pos, rootSide)
	}

	// Backpropagation
	for ; n != nil; n = n.parent {
		n.visits++
		n.utilitySum += value
	}
	return nil
}

func (s *Searcher) selectChild(n *node, rootSide connect6.Player) *node {
	maximizing := n.pos.SideToMove == rootSide
	best := n.children[0]
	bestValue := best.uct(n.visits, s.params.Exploration, maximizing)
	for _, ch := range n.children[1:] {
		if v := ch.uct(n.visits, s.params.Exploration, maximizing); v > bestValue {
			bestValue = v
			best = ch
		}
	}
	return best
}

// rollout 随机走到分出胜负、盘满或步数用尽，用尽时静态评估定调。
// frand 的包级函数并发安全，worker 之间直接共用。
func (s *Searcher) rollout(pos *connect6.Position, rootSide connect6.Player) (float64, error) {
	cur := pos
	for step := 0; step < s.params.RolloutDepth; step++ {
		if cur.Board.IsFull() {
			return 0, nil
		}
		opts := engine.TurnOptions(cur, s.params.CandidateRadius, s.params.MaxCandidates)
		if len(opts) == 0 {
			break
		}
		mover := cur.SideToMove
		next, err := cur.ApplyPair(opts[frand.Intn(len(opts))])
		if err != nil {
			return 0, err
		}
		if next.HasSix(mover) {
			if mover == rootSide {
				return 1, nil
			}
			return -1, nil
		}
		cur = next
	}
	return s.staticVerdict(cur, rootSide), nil
}

// staticVerdict 评估分压成 ±0.5 的软判定，不跟真终局的 ±1 抢权重
func (s *Searcher) staticVerdict(pos *connect6.Position, rootSide connect6.Player) float64 {
	score := engine.Evaluate(pos, rootSide, s.params.HeuristicVariant, engine.Weights{})
	switch {
	case score > 0:
		return 0.5
	case score < 0:
		return -0.5
	default:
		return 0
	}
}
