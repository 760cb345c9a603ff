package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"connect6/internal/connect6"
)

// 缓存条目上限，超过直接整张换新，不搞淘汰策略
const (
	simCacheCap   = 1 << 20
	scoreCacheCap = 1 << 20
)

// simKey 模拟缓存键：局面指纹 + 本回合落法。
// Fingerprint 自带棋盘尺寸字段，不同尺寸结构上就撞不到一起。
type simKey struct {
	fp   connect6.Fingerprint
	pair connect6.MovePair
}

// scoreKey 评分缓存键。分数永远是"根方视角"，根方换人不能复用，
// 所以视角进键；权重被调过也不能复用，所以权重哈希也进键。
type scoreKey struct {
	fp          connect6.Fingerprint
	perspective connect6.Player
	weights     uint64
}

type CacheStats struct {
	SimHits     int64
	SimMisses   int64
	ScoreHits   int64
	ScoreMisses int64
}

// hashWeights 启发式变体 + 权重的 xxhash，区分不同调参下的评分
func hashWeights(variant int, w Weights) uint64 {
	var buf [7 * 8]byte
	vals := [7]int{variant, w.Run2, w.Run3, w.Run4, w.Run5, w.OpenFive, w.Centrality}
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(int64(v)))
	}
	return xxhash.Sum64(buf[:])
}
