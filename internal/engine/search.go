package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"connect6/internal/connect6"
)

// SearchResult 每次 ChooseMove 的结果
type SearchResult struct {
	Pair    connect6.MovePair
	Score   int // 根方视角
	Depth   int // 实际完整搜完的深度
	Nodes   int64
	Elapsed time.Duration
	Forced  bool // 被对手威胁逼出来的堵截手，没走主搜索
}

type searchCtx struct {
	cfg      SearchConfig
	whash    uint64
	root     connect6.Player
	deadline time.Time
}

// ChooseMove 根入口。顺序固定：
//  1. 自己能不能立刻赢（进攻优先于防守）
//  2. 对手能不能立刻赢，能则强制堵截
//  3. 迭代加深的 minimax / alpha-beta 主搜索
//
// 超时或超节点预算时返回最近一层完整搜完的结果——调用方永远拿得到一手合法棋。
func (s *Session) ChooseMove(pos *connect6.Position, cfg SearchConfig) (SearchResult, error) {
	start := time.Now()
	size := pos.Board.Size()
	if size < connect6.MinBoardSize || size > connect6.MaxBoardSize {
		return SearchResult{}, fmt.Errorf("%w: %d", connect6.ErrInvalidBoardSize, size)
	}
	if pos.Board.IsFull() {
		return SearchResult{}, ErrNoLegalMoves
	}
	cfg = resolveConfig(cfg)
	root := pos.SideToMove
	ctx := &searchCtx{
		cfg:   cfg,
		whash: hashWeights(cfg.Heuristic, cfg.Weights),
		root:  root,
	}
	if cfg.TimeLimit > 0 {
		ctx.deadline = start.Add(cfg.TimeLimit)
	}
	s.nodes = 0
	s.aborted = false

	wins, err := s.immediateWins(pos, root, cfg)
	if err != nil {
		return SearchResult{}, err
	}
	if len(wins) > 0 {
		res := SearchResult{Pair: wins[0], Score: winScore, Depth: 1, Nodes: s.nodes, Elapsed: time.Since(start)}
		s.logResult("immediate-win", res)
		return res, nil
	}

	threats, err := s.immediateWins(pos, root.Opponent(), cfg)
	if err != nil {
		return SearchResult{}, err
	}
	if len(threats) > 0 {
		block, err := s.blockingReply(pos, root.Opponent(), threats, cfg)
		if err != nil {
			return SearchResult{}, err
		}
		res := SearchResult{
			Pair:    block,
			Depth:   1,
			Forced:  true,
			Nodes:   s.nodes,
			Elapsed: time.Since(start),
		}
		s.logResult("forced-block", res)
		return res, nil
	}

	// 深度 0 的兜底：预算再紧也得交出一手合法棋
	rootPairs := enumerateTurns(pos, s.nodeCandidates(pos, ctx))
	if len(rootPairs) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}
	best := SearchResult{
		Pair:  rootPairs[0],
		Score: s.probeScoreKeyed(pos, root, cfg.Heuristic, cfg.Weights, ctx.whash),
	}
	for depth := 1; depth <= cfg.Depth; depth++ {
		score, pair, err := s.searchNode(pos, depth, -scoreInf, scoreInf, ctx)
		if err != nil {
			return SearchResult{}, err
		}
		if s.aborted {
			// 这一层被打断，不完整，丢掉
			break
		}
		if pair == (connect6.MovePair{}) {
			// 根已经是终局（比如盘面上早有六连），没有可选着法
			break
		}
		best = SearchResult{Pair: pair, Score: score, Depth: depth}
		if score >= winScore || score <= -winScore {
			break
		}
	}
	best.Nodes = s.nodes
	best.Elapsed = time.Since(start)
	s.logResult(string(cfg.Algorithm), best)
	return best, nil
}

// searchNode 递归主体。分数永远是根方视角，走子方等于根方时取极大，
// 否则取极小。alpha/beta 只在 Algorithm 为 alpha_beta 时参与剪枝，
// 剪枝只省时间，根上的分数和纯 minimax 必须一致。
func (s *Session) searchNode(pos *connect6.Position, depth, alpha, beta int, ctx *searchCtx) (int, connect6.MovePair, error) {
	s.nodes++
	var none connect6.MovePair

	if ctx.cfg.NodeBudget > 0 && s.nodes > ctx.cfg.NodeBudget {
		s.aborted = true
	}
	if !ctx.deadline.IsZero() && time.Now().After(ctx.deadline) {
		s.aborted = true
	}
	if s.aborted {
		// 预算用完：静态评估顶上，保证能退出且结果仍然可用
		return s.probeScoreKeyed(pos, ctx.root, ctx.cfg.Heuristic, ctx.cfg.Weights, ctx.whash), none, nil
	}

	if pos.HasSix(ctx.root) {
		return winScore, none, nil
	}
	if pos.HasSix(ctx.root.Opponent()) {
		return -winScore, none, nil
	}
	if pos.Board.IsFull() {
		return 0, none, nil
	}
	if depth <= 0 {
		return s.probeScoreKeyed(pos, ctx.root, ctx.cfg.Heuristic, ctx.cfg.Weights, ctx.whash), none, nil
	}

	pairs := enumerateTurns(pos, s.nodeCandidates(pos, ctx))
	if len(pairs) == 0 {
		return s.probeScoreKeyed(pos, ctx.root, ctx.cfg.Heuristic, ctx.cfg.Weights, ctx.whash), none, nil
	}

	mover := pos.SideToMove
	maximizing := mover == ctx.root

	type childNode struct {
		pair  connect6.MovePair
		pos   *connect6.Position
		score int
	}
	children := make([]childNode, 0, len(pairs))
	for _, mp := range pairs {
		next, err := s.Simulate(pos, mp)
		if err != nil {
			return 0, none, err
		}
		if next.HasSix(mover) {
			// 有稳赢的落法就到此为止，绝不为"看起来更好"的分支放过它
			if maximizing {
				return winScore, mp, nil
			}
			return -winScore, mp, nil
		}
		children = append(children, childNode{
			pair:  mp,
			pos:   next,
			score: s.probeScoreKeyed(next, ctx.root, ctx.cfg.Heuristic, ctx.cfg.Weights, ctx.whash),
		})
	}

	// 预排序构 beam：极大层从高到低，极小层从低到高。
	// 稳定排序 + 确定的枚举顺序，平分时保留先枚举到的组合。
	sort.SliceStable(children, func(i, j int) bool {
		if maximizing {
			return children[i].score > children[j].score
		}
		return children[i].score < children[j].score
	})
	if len(children) > ctx.cfg.MaxBranch {
		// beam 外的分支永远不再看。浅层评分看走眼就会漏掉后手好棋，
		// 刻意用精度换时间，不是 bug。
		children = children[:ctx.cfg.MaxBranch]
	}

	best := -scoreInf - 1
	if !maximizing {
		best = scoreInf + 1
	}
	bestPair := children[0].pair
	for _, ch := range children {
		score, _, err := s.searchNode(ch.pos, depth-1, alpha, beta, ctx)
		if err != nil {
			return 0, none, err
		}
		if maximizing {
			if score > best {
				best = score
				bestPair = ch.pair
			}
			if ctx.cfg.Algorithm == AlgorithmAlphaBeta {
				if score > alpha {
					alpha = score
				}
				if beta <= alpha {
					break
				}
			}
		} else {
			if score < best {
				best = score
				bestPair = ch.pair
			}
			if ctx.cfg.Algorithm == AlgorithmAlphaBeta {
				if score < beta {
					beta = score
				}
				if beta <= alpha {
					break
				}
			}
		}
		if s.aborted {
			break
		}
	}
	return best, bestPair, nil
}

// nodeCandidates 有最近一手就围着它找，否则全盘找；
// 孤点不够凑一对时用其它空位补齐
func (s *Session) nodeCandidates(pos *connect6.Position, ctx *searchCtx) []connect6.Cell {
	var focus *connect6.Cell
	if last, ok := pos.LastMove(); ok {
		focus = &last
	}
	cands := candidates(pos, ctx.cfg.CandidateRadius, ctx.cfg.MaxCandidates, focus)
	if len(cands) == 0 && focus != nil {
		cands = candidates(pos, ctx.cfg.CandidateRadius, ctx.cfg.MaxCandidates, nil)
	}
	if len(cands) < 2 && !pos.Opening() {
		for _, c := range pos.LegalEmptyCells() {
			if len(cands) >= 2 {
				break
			}
			if !containsCell(cands, c) {
				cands = append(cands, c)
			}
		}
	}
	return cands
}

// enumerateTurns 把候选点展开成本回合的落法：开局单子，
// 其余取无序二组合（同格不重复用）；整盘只剩一个空位时也允许单子收官
func enumerateTurns(pos *connect6.Position, cands []connect6.Cell) []connect6.MovePair {
	if len(cands) == 0 {
		return nil
	}
	if pos.Opening() {
		out := make([]connect6.MovePair, len(cands))
		for i, c := range cands {
			out[i] = connect6.SingleMove(c)
		}
		return out
	}
	if len(cands) == 1 {
		lone := cands[0]
		for _, c := range pos.LegalEmptyCells() {
			if c != lone {
				return []connect6.MovePair{connect6.PairMove(lone, c)}
			}
		}
		return []connect6.MovePair{connect6.SingleMove(lone)}
	}
	out := make([]connect6.MovePair, 0, len(cands)*(len(cands)-1)/2)
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			out = append(out, connect6.PairMove(cands[i], cands[j]))
		}
	}
	return out
}

// TurnOptions 当前回合的候选落法，给引擎之外的搜索器（蒙特卡洛树那类）用。
// 生成逻辑和主搜索一致：有最近一手围着它找，否则全盘找。
func TurnOptions(pos *connect6.Position, radius, maxCandidates int) []connect6.MovePair {
	var focus *connect6.Cell
	if last, ok := pos.LastMove(); ok {
		focus = &last
	}
	cands := candidates(pos, radius, maxCandidates, focus)
	if len(cands) == 0 && focus != nil {
		cands = candidates(pos, radius, maxCandidates, nil)
	}
	return enumerateTurns(pos, cands)
}

func containsCell(cells []connect6.Cell, c connect6.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

func (s *Session) logResult(mode string, res SearchResult) {
	log.Debug().
		Str("session", s.id).
		Str("mode", mode).
		Int("score", res.Score).
		Int("depth", res.Depth).
		Int64("nodes", res.Nodes).
		Dur("elapsed", res.Elapsed).
		Msg("search-done")
}
