package engine

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Algorithm string

const (
	AlgorithmMinimax   Algorithm = "minimax"
	AlgorithmAlphaBeta Algorithm = "alpha_beta"
)

// SearchConfig 一次 ChooseMove 的全部可调参数。
// 玩家每回合可以重选算法和启发式，所以这里是调用参数而不是会话状态。
// 零值字段用 LoadConfig 的默认值补齐。
type SearchConfig struct {
	Algorithm Algorithm
	Depth     int
	MaxBranch int // beam 宽度：预排序后只保留前这么多个组合
	Heuristic int // 1 = 连子计数；2 = 连子 + 中心控制 + 活五威胁

	CandidateRadius int // 候选点到已有棋子的切比雪夫距离上限
	MaxCandidates   int

	Weights Weights

	TimeLimit  time.Duration // 0 不限时
	NodeBudget int64         // 0 不限节点数
}

// Weights 启发式权重。连段按长度非线性加权，
// 全部取整数，中心加成按 (size - 曼哈顿距离) * Centrality 算
type Weights struct {
	Run2       int
	Run3       int
	Run4       int
	Run5       int
	OpenFive   int // 变体 2：一端开口的五连
	Centrality int // 变体 2：每子 (size - 曼哈顿距中心) * Centrality
}

var defaultWeights = Weights{
	Run2:       10,
	Run3:       100,
	Run4:       1000,
	Run5:       10000,
	OpenFive:   50000,
	Centrality: 1,
}

var (
	loadOnce   sync.Once
	loadedBase SearchConfig
)

// LoadConfig 默认配置，可被 CONNECT6_* 环境变量或当前目录的
// connect6.yaml 覆盖（找不到配置文件不算错）。
func LoadConfig() SearchConfig {
	loadOnce.Do(func() {
		v := viper.New()
		v.SetEnvPrefix("connect6")
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		v.SetDefault("algorithm", string(AlgorithmAlphaBeta))
		v.SetDefault("depth", 2)
		v.SetDefault("max-branch", 8)
		v.SetDefault("heuristic", 2)
		v.SetDefault("candidate-radius", 2)
		v.SetDefault("max-candidates", 20)
		v.SetDefault("time-limit-ms", 0)
		v.SetDefault("node-budget", 0)

		v.SetConfigName("connect6")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		_ = v.ReadInConfig()

		loadedBase = SearchConfig{
			Algorithm:       Algorithm(v.GetString("algorithm")),
			Depth:           v.GetInt("depth"),
			MaxBranch:       v.GetInt("max-branch"),
			Heuristic:       v.GetInt("heuristic"),
			CandidateRadius: v.GetInt("candidate-radius"),
			MaxCandidates:   v.GetInt("max-candidates"),
			Weights:         defaultWeights,
			TimeLimit:       time.Duration(v.GetInt64("time-limit-ms")) * time.Millisecond,
			NodeBudget:      v.GetInt64("node-budget"),
		}
	})
	return loadedBase
}

// resolveConfig 补齐零值字段
func resolveConfig(cfg SearchConfig) SearchConfig {
	base := LoadConfig()
	if cfg.Algorithm == "" {
		cfg.Algorithm = base.Algorithm
	}
	if cfg.Depth <= 0 {
		cfg.Depth = base.Depth
	}
	if cfg.MaxBranch <= 0 {
		cfg.MaxBranch = base.MaxBranch
	}
	if cfg.Heuristic != 1 && cfg.Heuristic != 2 {
		cfg.Heuristic = base.Heuristic
	}
	if cfg.CandidateRadius <= 0 {
		cfg.CandidateRadius = base.CandidateRadius
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = base.MaxCandidates
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = defaultWeights
	}
	return cfg
}
