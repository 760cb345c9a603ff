package game

import (
	"time"

	"connect6/internal/connect6"
	"connect6/internal/engine"
)

// State 一局进行中的游戏：局面 + 这局专属的搜索会话。
// 每局新建 Session，缓存指纹天然不会跨局、跨尺寸串台。
type State struct {
	ID        string
	Pos       *connect6.Position
	Session   *engine.Session
	CreatedAt time.Time
	UpdatedAt time.Time
}
