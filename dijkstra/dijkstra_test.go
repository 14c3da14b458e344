// Package dijkstra_test validates the binary-heap baseline: input checks,
// small directed graphs, the MaxDistance cap, and edge cases.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, 0)
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g, _ := core.NewDigraph(2)
	_, _, err := dijkstra.Dijkstra(g, 2)
	if !errors.Is(err, dijkstra.ErrSourceRange) {
		t.Fatalf("expected ErrSourceRange, got %v", err)
	}
}

func TestDijkstra_SimpleTriangle(t *testing.T) {
	// 0→1(1), 1→2(2), 0→2(5): the two-hop route wins.
	g, _ := core.NewDigraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	dist, prev, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[2] != 3 {
		t.Errorf("dist[2] = %g; want 3", dist[2])
	}
	if prev != nil {
		t.Errorf("expected nil predecessor slice, got %v", prev)
	}
}

func TestDijkstra_WithPath(t *testing.T) {
	g, _ := core.NewDigraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 || dist[1] != 1 || dist[2] != 3 {
		t.Errorf("unexpected distances: %v", dist)
	}
	// Chain 2←1←0.
	if prev[1] != 0 || prev[2] != 1 {
		t.Errorf("unexpected predecessors: %v", prev)
	}
	if prev[0] != -1 {
		t.Errorf("prev[source] = %d; want -1", prev[0])
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, _ := core.NewDigraph(2)

	dist, _, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 {
		t.Errorf("dist[0] = %g; want 0", dist[0])
	}
	if !math.IsInf(dist[1], 1) {
		t.Errorf("dist[1] = %g; want +Inf", dist[1])
	}
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Chain 0→1→2→3, unit weights; cap at 1 leaves 2 and 3 unexplored.
	g, _ := core.NewDigraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)

	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 || dist[1] != 1 {
		t.Errorf("unexpected near distances: %v", dist)
	}
	if !math.IsInf(dist[2], 1) || !math.IsInf(dist[3], 1) {
		t.Errorf("expected 2 and 3 beyond the cap, got %v", dist)
	}
}

func TestDijkstra_ParallelEdges(t *testing.T) {
	// Three parallel arcs 0→1; the cheapest must win.
	g, _ := core.NewDigraph(2)
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 1, 7)

	dist, _, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[1] != 2 {
		t.Errorf("dist[1] = %g; want 2", dist[1])
	}
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g, _ := core.NewDigraph(1)
	_ = g.AddEdge(0, 0, 0)

	dist, _, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 {
		t.Errorf("dist[0] = %g; want 0", dist[0])
	}
}
