package mcts

import (
	"math"

	"connect6/internal/connect6"
)

// node 单棵树内的搜索节点。树归一个 worker 独占，不做并发保护；
// worker 之间只在根上按访问量合并。
type node struct {
	pair   connect6.MovePair
	pos    *connect6.Position
	parent *node

	children []*node
	untried  []connect6.MovePair // 还没展开的候选落法，按枚举顺序弹出

	visits     int64
	utilitySum float64 // 根方视角累计：+1 赢 / -1 输 / 0 和

	terminal bool
	utility  float64 // terminal 时固定的终局价值
}

func newNode(pair connect6.MovePair, pos *connect6.Position, parent *node, untried []connect6.MovePair) *node {
	return &node{
		pair:    pair,
		pos:     pos,
		parent:  parent,
		untried: untried,
	}
}

func (n *node) meanUtility() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.utilitySum / float64(n.visits)
}

// uct 选择值。分数存的是根方视角，极小方选子时要取反；
// 没访问过的子节点给正无穷，保证每个分支至少看一眼。
func (n *node) uct(parentVisits int64, exploration float64, maximizing bool) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	q := n.meanUtility()
	if !maximizing {
		q = -q
	}
	return q + exploration*math.Sqrt(math.Log(float64(parentVisits))/float64(n.visits))
}

func (n *node) expanded() bool {
	return len(n.untried) == 0
}
