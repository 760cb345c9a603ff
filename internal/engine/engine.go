package engine

import (
	"errors"

	"github.com/google/uuid"

	"connect6/internal/connect6"
)

// ErrNoLegalMoves 棋盘已满，没有可下的点。必须显式报告，不能悄悄兜底。
var ErrNoLegalMoves = errors.New("engine: no legal moves")

// ErrInconsistentFingerprint 缓存命中但局面对不上：指纹实现出了 bug，致命
var ErrInconsistentFingerprint = errors.New("engine: inconsistent fingerprint")

// Session 一局游戏的搜索会话：模拟缓存和评分缓存都归它管。
// 换局时要么 Reset，要么直接建新 Session，避免跨局复用陈旧指纹。
// 搜索是单线程深度优先，Session 不做并发保护。
type Session struct {
	id string

	sim    map[simKey]*connect6.Position
	scores map[scoreKey]int
	stats  CacheStats

	nodes   int64
	aborted bool
}

func NewSession() *Session {
	return &Session{
		id:     uuid.NewString(),
		sim:    make(map[simKey]*connect6.Position, 1<<12),
		scores: make(map[scoreKey]int, 1<<12),
	}
}

func (s *Session) ID() string { return s.id }

// Reset 清空两张缓存，开新局前调用
func (s *Session) Reset() {
	s.sim = make(map[simKey]*connect6.Position, 1<<12)
	s.scores = make(map[scoreKey]int, 1<<12)
	s.stats = CacheStats{}
	s.nodes = 0
	s.aborted = false
}

// CacheStats 命中统计，引用透明性的测试依赖它
func (s *Session) CacheStats() CacheStats {
	return s.stats
}
