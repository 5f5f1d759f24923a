package astar

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/lvlath/go/core"
	"github.com/lvlath/go/dijkstra"
)

// graphSearch routes over a lvlath graph built from the board.
// Every passable cell is a vertex; an edge u->v weighs the cost of entering v.
type graphSearch struct {
	e *Engine
	g *core.Graph
}

func vertexID(k domain.Key) string {
	return strconv.Itoa(int(k))
}

func newGraphSearch(e *Engine) (*graphSearch, error) {
	g, err := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	for i, c := range e.board {
		if !c.passable() {
			continue
		}
		u := domain.Key(i)
		if err := g.AddVertex(vertexID(u)); err != nil {
			return nil, fmt.Errorf("vertex %d: %w", u, err)
		}
		var edgeErr error
		e.neighbours(u, func(v domain.Key) {
			if edgeErr != nil {
				return
			}
			_, edgeErr = g.AddEdge(vertexID(u), vertexID(v), float64(e.stepCost(v)))
		})
		if edgeErr != nil {
			return nil, fmt.Errorf("edges from %d: %w", u, edgeErr)
		}
	}
	return &graphSearch{e: e, g: g}, nil
}

func (s *graphSearch) route(from, to domain.Key) (domain.Path, error) {
	ids, dist, err := dijkstra.ShortestPathTo(s.g, vertexID(from), vertexID(to))
	if errors.Is(err, dijkstra.ErrNoPath) {
		return domain.Path{From: from, To: to}, fmt.Errorf("%d -> %d: %w", from, to, domain.ErrUnreachable)
	}
	if err != nil {
		return domain.Path{}, fmt.Errorf("%d -> %d: %w", from, to, err)
	}

	keys := make([]domain.Key, len(ids))
	for i, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return domain.Path{}, fmt.Errorf("vertex %q: %w", id, err)
		}
		keys[i] = domain.Key(n)
	}
	return domain.Path{From: from, To: to, Keys: keys, Cost: int(dist), Found: true}, nil
}
