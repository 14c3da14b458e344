package bmssp_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/bmssp"
	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// benchGraph builds one deterministic random digraph per configuration so
// both solvers race on identical inputs.
func benchGraph(b *testing.B, n, m int) *core.Digraph {
	b.Helper()
	g, err := builder.RandomDigraph(n, m, builder.WithSeed(123456))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkSolve(b *testing.B, n, m int) {
	g := benchGraph(b, n, m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := bmssp.New(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		_ = s.Solve()
	}
}

func benchmarkDijkstra(b *testing.B, n, m int) {
	g := benchGraph(b, n, m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_500x2000(b *testing.B)   { benchmarkSolve(b, 500, 2000) }
func BenchmarkSolve_2000x10000(b *testing.B) { benchmarkSolve(b, 2000, 10000) }
func BenchmarkSolve_5000x30000(b *testing.B) { benchmarkSolve(b, 5000, 30000) }

func BenchmarkDijkstra_500x2000(b *testing.B)   { benchmarkDijkstra(b, 500, 2000) }
func BenchmarkDijkstra_2000x10000(b *testing.B) { benchmarkDijkstra(b, 2000, 10000) }
func BenchmarkDijkstra_5000x30000(b *testing.B) { benchmarkDijkstra(b, 5000, 30000) }
