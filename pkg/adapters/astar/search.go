package astar

import (
	"container/heap"
	"fmt"

	"github.com/aretw0/waymark/pkg/domain"
)

type offset struct{ dx, dy int }

var (
	offsets4 = []offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []offset{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// search holds the per-computation scratch space, reused across pairs.
type search struct {
	e    *Engine
	step int // cheapest possible move, scales the heuristic

	g      []int
	prev   []domain.Key
	closed []bool
	pq     nodePQ
}

func newSearch(e *Engine) *search {
	step := e.riskFloor
	for _, c := range e.board {
		if c.role == roleRisky && c.weight < step {
			step = c.weight
		}
	}
	n := len(e.board)
	return &search{
		e:      e,
		step:   step,
		g:      make([]int, n),
		prev:   make([]domain.Key, n),
		closed: make([]bool, n),
	}
}

// stepCost is the cost of entering k.
func (e *Engine) stepCost(k domain.Key) int {
	if c := e.board[k]; c.role == roleRisky {
		return c.weight
	}
	return e.riskFloor
}

// neighbours calls fn for every passable cell reachable from u in one move.
// A diagonal move needs both orthogonal cells it passes to be passable.
func (e *Engine) neighbours(u domain.Key, fn func(v domain.Key)) {
	offsets := offsets4
	if e.conn == Conn8 {
		offsets = offsets8
	}
	x, y := e.coordOf(u)
	for _, o := range offsets {
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || nx >= e.width || ny < 0 || ny >= e.height {
			continue
		}
		v := e.KeyOf(nx, ny)
		if !e.board[v].passable() {
			continue
		}
		if o.dx != 0 && o.dy != 0 {
			if !e.board[e.KeyOf(nx, y)].passable() || !e.board[e.KeyOf(x, ny)].passable() {
				continue
			}
		}
		fn(v)
	}
}

func (s *search) heuristic(k, goal domain.Key) int {
	x1, y1 := s.e.coordOf(k)
	x2, y2 := s.e.coordOf(goal)
	dx, dy := abs(x1-x2), abs(y1-y2)
	if s.e.conn == Conn8 {
		return max(dx, dy) * s.step
	}
	return (dx + dy) * s.step
}

func (s *search) reset() {
	for i := range s.g {
		s.g[i] = -1
		s.prev[i] = -1
		s.closed[i] = false
	}
	s.pq = s.pq[:0]
}

// route runs A* from one waypoint to the next.
func (s *search) route(from, to domain.Key) (domain.Path, error) {
	s.reset()
	s.g[from] = 0
	heap.Push(&s.pq, &nodeItem{key: from, g: 0, f: s.heuristic(from, to)})

	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*nodeItem)
		u := item.key
		if s.closed[u] {
			continue
		}
		s.closed[u] = true
		if u == to {
			return domain.Path{From: from, To: to, Keys: s.trace(to), Cost: s.g[to], Found: true}, nil
		}
		s.expand(u, to)
	}
	return domain.Path{From: from, To: to}, fmt.Errorf("%d -> %d: %w", from, to, domain.ErrUnreachable)
}

func (s *search) expand(u, goal domain.Key) {
	s.e.neighbours(u, func(v domain.Key) {
		if s.closed[v] {
			return
		}
		ng := s.g[u] + s.e.stepCost(v)
		if s.g[v] >= 0 && ng >= s.g[v] {
			return
		}
		s.g[v] = ng
		s.prev[v] = u
		heap.Push(&s.pq, &nodeItem{key: v, g: ng, f: ng + s.heuristic(v, goal)})
	})
}

func (s *search) trace(to domain.Key) []domain.Key {
	var keys []domain.Key
	for k := to; k >= 0; k = s.prev[k] {
		keys = append(keys, k)
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// nodeItem is a heap entry. Entries are never updated in place:
// a better route pushes a new entry and stale ones are skipped on pop.
type nodeItem struct {
	key domain.Key
	g   int
	f   int
}

// nodePQ orders by f, then g, then key, so equal-cost searches are reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.key < b.key
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) {
	*pq = append(*pq, x.(*nodeItem))
}

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
