package bmssp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/bmssp"
	"github.com/katalvlaran/lvlpath/core"
)

// ExampleSolver_Solve computes all distances from vertex 0 in a small
// directed diamond with a detour.
func ExampleSolver_Solve() {
	//      1
	//    ↗   ↘
	//  0       3
	//    ↘   ↗
	//      2
	g, _ := core.NewDigraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 4)
	_ = g.AddEdge(1, 3, 2)
	_ = g.AddEdge(2, 3, 2)

	s, _ := bmssp.New(g, 0)
	dist := s.Solve()

	fmt.Println(dist)
	// Output: [0 1 4 3]
}

// ExampleSolver_PathTo reconstructs the chosen shortest path after a solve.
func ExampleSolver_PathTo() {
	g, _ := core.NewDigraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)

	s, _ := bmssp.New(g, 0)
	s.Solve()

	path, _ := s.PathTo(3)
	fmt.Println(path)
	// Output: [0 1 2 3]
}
