package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlpath/core"
)

func TestNewDigraph_NegativeCount(t *testing.T) {
	// A negative vertex count is a construction error, not a panic.
	if _, err := core.NewDigraph(-1); !errors.Is(err, core.ErrBadVertexCount) {
		t.Fatalf("expected ErrBadVertexCount, got %v", err)
	}
}

func TestNewDigraph_EmptyIsLegal(t *testing.T) {
	g, err := core.NewDigraph(0)
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Fatalf("empty graph reports V=%d E=%d", g.VertexCount(), g.EdgeCount())
	}
}

func TestAddEdge_RangeChecks(t *testing.T) {
	g, _ := core.NewDigraph(3)

	// Tail out of range.
	if err := g.AddEdge(3, 0, 1); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("u out of range: expected ErrVertexRange, got %v", err)
	}
	// Head out of range.
	if err := g.AddEdge(0, -1, 1); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("v out of range: expected ErrVertexRange, got %v", err)
	}
	// A failed AddEdge must not grow the graph.
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d after rejected edges; want 0", g.EdgeCount())
	}
}

func TestAddEdge_WeightChecks(t *testing.T) {
	g, _ := core.NewDigraph(2)

	if err := g.AddEdge(0, 1, -0.5); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("negative weight: expected ErrBadWeight, got %v", err)
	}
	if err := g.AddEdge(0, 1, math.NaN()); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("NaN weight: expected ErrBadWeight, got %v", err)
	}
	// Zero-weight edges are explicitly permitted.
	if err := g.AddEdge(0, 1, 0); err != nil {
		t.Errorf("zero weight rejected: %v", err)
	}
}

func TestOutArcs_PreservesInsertionOrder(t *testing.T) {
	// Parallel edges and self-loops must survive in exactly AddEdge order;
	// solvers rely on this for deterministic relaxation.
	g, _ := core.NewDigraph(2)
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 0, 1) // self-loop
	_ = g.AddEdge(0, 1, 7)

	arcs := g.OutArcs(0)
	want := []core.Arc{{To: 1, Weight: 5}, {To: 1, Weight: 2}, {To: 0, Weight: 1}, {To: 1, Weight: 7}}
	if len(arcs) != len(want) {
		t.Fatalf("len(OutArcs) = %d; want %d", len(arcs), len(want))
	}
	for i := range want {
		if arcs[i] != want[i] {
			t.Errorf("arc[%d] = %+v; want %+v", i, arcs[i], want[i])
		}
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount = %d; want 4", g.EdgeCount())
	}
}

func TestOutArcs_EmptyVertex(t *testing.T) {
	g, _ := core.NewDigraph(1)
	if arcs := g.OutArcs(0); len(arcs) != 0 {
		t.Errorf("expected no arcs, got %v", arcs)
	}
}
