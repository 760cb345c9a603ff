package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"connect6/internal/connect6"
	"connect6/internal/engine"
	"connect6/internal/mcts"
)

var ErrGameNotFound = errors.New("game not found")

// Manager 管所有进行中的对局，GUI / 控制台驱动层往这里挂
type Manager struct {
	mu    sync.RWMutex
	games map[string]*State
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*State)}
}

func (m *Manager) NewGame(size int) (*State, error) {
	pos, err := connect6.NewPosition(size)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &State{
		ID:        id,
		Pos:       pos,
		Session:   engine.NewSession(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[id] = g
	return g, nil
}

func (m *Manager) Get(id string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// PlayTurn 外部玩家落子：原子校验并推进局面
func (m *Manager) PlayTurn(id string, mp connect6.MovePair) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	next, err := g.Pos.ApplyPair(mp)
	if err != nil {
		return nil, err
	}
	g.Pos = next
	g.UpdatedAt = time.Now()
	return g, nil
}

// AIMove 让引擎选一手并直接落下
func (m *Manager) AIMove(id string, cfg engine.SearchConfig) (engine.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return engine.SearchResult{}, ErrGameNotFound
	}
	res, err := g.Session.ChooseMove(g.Pos, cfg)
	if err != nil {
		return engine.SearchResult{}, err
	}
	next, err := g.Pos.ApplyPair(res.Pair)
	if err != nil {
		return engine.SearchResult{}, err
	}
	g.Pos = next
	g.UpdatedAt = time.Now()
	return res, nil
}

// MCTSMove 用蒙特卡洛树搜索选一手并落下。
// 和 AIMove 互为替换，一局里可以混着用。
func (m *Manager) MCTSMove(id string, params mcts.SearchParams) (mcts.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return mcts.Result{}, ErrGameNotFound
	}
	res, err := mcts.NewSearcher(params).Search(g.Pos)
	if err != nil {
		return mcts.Result{}, err
	}
	next, err := g.Pos.ApplyPair(res.Pair)
	if err != nil {
		return mcts.Result{}, err
	}
	g.Pos = next
	g.UpdatedAt = time.Now()
	return res, nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}
