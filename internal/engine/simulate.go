package engine

import (
	"fmt"

	"connect6/internal/connect6"
)

// Simulate 从 pos 推演出本回合落法之后的局面。
// 命中缓存直接复用快照（快照归缓存所有，调用方只读）；
// 未命中时在副本上落子，原局面永远不被改动。
func (s *Session) Simulate(pos *connect6.Position, mp connect6.MovePair) (*connect6.Position, error) {
	key := simKey{fp: pos.Fingerprint(), pair: mp}
	if child, ok := s.sim[key]; ok {
		// 一致性兜底：尺寸或子数对不上说明指纹撞了，属于致命 bug
		if child.Board.Size() != pos.Board.Size() ||
			child.Board.StoneCount() != pos.Board.StoneCount()+len(mp.Cells()) {
			return nil, fmt.Errorf("%w: size=%d stones=%d cached size=%d stones=%d",
				ErrInconsistentFingerprint,
				pos.Board.Size(), pos.Board.StoneCount(),
				child.Board.Size(), child.Board.StoneCount())
		}
		s.stats.SimHits++
		return child, nil
	}

	child, err := pos.ApplyPair(mp)
	if err != nil {
		return nil, err
	}
	s.stats.SimMisses++
	if len(s.sim) > simCacheCap {
		s.sim = make(map[simKey]*connect6.Position, 1<<12)
	}
	s.sim[key] = child
	return child, nil
}

// ProbeScore 评分缓存探测：未命中才真正调 Evaluate。
// 相同输入永远得到相同输出，这是缓存成立的前提。
func (s *Session) ProbeScore(pos *connect6.Position, perspective connect6.Player, cfg SearchConfig) int {
	cfg = resolveConfig(cfg)
	return s.probeScoreKeyed(pos, perspective, cfg.Heuristic, cfg.Weights, hashWeights(cfg.Heuristic, cfg.Weights))
}

func (s *Session) probeScoreKeyed(pos *connect6.Position, perspective connect6.Player, variant int, w Weights, whash uint64) int {
	key := scoreKey{fp: pos.Fingerprint(), perspective: perspective, weights: whash}
	if score, ok := s.scores[key]; ok {
		s.stats.ScoreHits++
		return score
	}
	score := Evaluate(pos, perspective, variant, w)
	s.stats.ScoreMisses++
	if len(s.scores) > scoreCacheCap {
		s.scores = make(map[scoreKey]int, 1<<12)
	}
	s.scores[key] = score
	return score
}
