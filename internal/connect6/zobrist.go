package connect6

import (
	"sync"

	"lukechampine.com/frand"
)

// Fingerprint 局面指纹：棋盘尺寸是独立字段而不是混进哈希，
// 不同尺寸的局面在结构上就不可能相撞。
type Fingerprint struct {
	Size int
	Hash uint64
}

const zobristBig = 1<<63 - 2

type zobristTable struct {
	cells []uint64 // size*size*2，黑白各一套
	side  uint64
}

// 每个尺寸一张表，懒生成
var zobristStore = struct {
	mu     sync.Mutex
	tables map[int]*zobristTable
}{tables: make(map[int]*zobristTable)}

func zobristFor(size int) *zobristTable {
	zobristStore.mu.Lock()
	defer zobristStore.mu.Unlock()
	if t, ok := zobristStore.tables[size]; ok {
		return t
	}
	t := &zobristTable{cells: make([]uint64, size*size*2)}
	for i := range t.cells {
		// +1 避免 0 键，XOR 不起作用
		t.cells[i] = frand.Uint64n(zobristBig) + 1
	}
	t.side = frand.Uint64n(zobristBig) + 1
	zobristStore.tables[size] = t
	return t
}

func (t *zobristTable) stoneKey(size int, c Cell, p Player) uint64 {
	idx := (c.Row*size + c.Col) * 2
	if p == White {
		idx++
	}
	return t.cells[idx]
}

// Fingerprint 全量计算当前局面指纹（占子 XOR 走子方）
func (p *Position) Fingerprint() Fingerprint {
	size := p.Board.Size()
	t := zobristFor(size)
	var h uint64
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := Cell{Row: r, Col: c}
			owner := p.Board.Owner(cell)
			if owner == NoPlayer {
				continue
			}
			h ^= t.stoneKey(size, cell, owner)
		}
	}
	if p.SideToMove == White {
		h ^= t.side
	}
	return Fingerprint{Size: size, Hash: h}
}
