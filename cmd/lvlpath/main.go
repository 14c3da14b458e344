// Command lvlpath exposes the block-batched SSSP solver on the command
// line.
//
// `lvlpath solve` reads a graph from stdin in the plain format
//
//	n m
//	u1 v1 w1
//	...
//	um vm wm
//	s
//
// and prints one distance per line in vertex-id order (INF for
// unreachable vertices).
//
// `lvlpath bench` reproduces the benchmark harness: deterministic random
// digraphs, several trials per configuration, CSV rows
// n,m,trial,algo,time_ms on stdout, and a cross-check of every bmssp run
// against the dijkstra baseline at 1e-6.
package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/bmssp"
	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// matchTol is the bench cross-check tolerance against the baseline.
const matchTol = 1e-6

func main() {
	root := &cobra.Command{
		Use:           "lvlpath",
		Short:         "block-batched single-source shortest paths",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSolveCmd wires the stdin solve driver.
func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "read a graph from stdin, print distances from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, source, err := readGraph(cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, err := bmssp.New(g, source)
			if err != nil {
				return err
			}
			dist := s.Solve()

			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()
			for _, d := range dist {
				if math.IsInf(d, 1) {
					fmt.Fprintln(w, "INF")

					continue
				}
				fmt.Fprintln(w, strconv.FormatFloat(d, 'g', -1, 64))
			}

			return nil
		},
	}
}

// readGraph parses the `n m / edges / s` format. Malformed input is fatal
// at this boundary, before any solve work starts.
func readGraph(r io.Reader) (*core.Digraph, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<16), 1<<20)
	sc.Split(bufio.ScanWords)

	nextInt := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("solve: missing %s token", what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("solve: bad %s token %q: %w", what, sc.Text(), err)
		}

		return v, nil
	}
	nextFloat := func(what string) (float64, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("solve: missing %s token", what)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, fmt.Errorf("solve: bad %s token %q: %w", what, sc.Text(), err)
		}

		return v, nil
	}

	n, err := nextInt("vertex count")
	if err != nil {
		return nil, 0, err
	}
	m, err := nextInt("edge count")
	if err != nil {
		return nil, 0, err
	}

	g, err := core.NewDigraph(n)
	if err != nil {
		return nil, 0, fmt.Errorf("solve: %w", err)
	}
	for i := 0; i < m; i++ {
		u, err := nextInt("edge tail")
		if err != nil {
			return nil, 0, err
		}
		v, err := nextInt("edge head")
		if err != nil {
			return nil, 0, err
		}
		w, err := nextFloat("edge weight")
		if err != nil {
			return nil, 0, err
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, 0, fmt.Errorf("solve: edge %d: %w", i, err)
		}
	}

	source, err := nextInt("source")
	if err != nil {
		return nil, 0, err
	}

	return g, source, nil
}

// newBenchCmd wires the CSV benchmark harness.
func newBenchCmd() *cobra.Command {
	var (
		sizes     string
		trials    int
		seed      int64
		maxWeight float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "race bmssp against dijkstra on random graphs, emit CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configs, err := parseSizes(sizes)
			if err != nil {
				return err
			}

			out := csv.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			if err := out.Write([]string{"n", "m", "trial", "algo", "time_ms"}); err != nil {
				return err
			}

			for _, c := range configs {
				for trial := 1; trial <= trials; trial++ {
					// One graph per trial, reproducible across runs.
					g, err := builder.RandomDigraph(c.n, c.m,
						builder.WithSeed(seed+int64(trial)),
						builder.WithMaxWeight(maxWeight))
					if err != nil {
						return err
					}

					bmDist, bmMs, err := timeBMSSP(g)
					if err != nil {
						return err
					}
					djDist, djMs, err := timeDijkstra(g)
					if err != nil {
						return err
					}

					if err := crossCheck(bmDist, djDist); err != nil {
						return fmt.Errorf("bench: n=%d m=%d trial=%d: %w", c.n, c.m, trial, err)
					}

					rows := [][]string{
						{itoa(c.n), itoa(c.m), itoa(trial), "bmssp", ftoa(bmMs)},
						{itoa(c.n), itoa(c.m), itoa(trial), "dijkstra", ftoa(djMs)},
					}
					for _, row := range rows {
						if err := out.Write(row); err != nil {
							return err
						}
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sizes, "sizes", "500x2000,1000x4000,2000x10000",
		"comma-separated NxM graph configurations")
	cmd.Flags().IntVar(&trials, "trials", 3, "trials per configuration")
	cmd.Flags().Int64Var(&seed, "seed", 123456, "base RNG seed")
	cmd.Flags().Float64Var(&maxWeight, "max-weight", 100, "maximum edge weight")

	return cmd
}

type benchConfig struct {
	n, m int
}

// parseSizes turns "500x2000,1000x4000" into configurations.
func parseSizes(s string) ([]benchConfig, error) {
	var out []benchConfig
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		nm := strings.SplitN(part, "x", 2)
		if len(nm) != 2 {
			return nil, fmt.Errorf("bench: bad size %q, want NxM", part)
		}
		n, err := strconv.Atoi(nm[0])
		if err != nil {
			return nil, fmt.Errorf("bench: bad vertex count in %q: %w", part, err)
		}
		m, err := strconv.Atoi(nm[1])
		if err != nil {
			return nil, fmt.Errorf("bench: bad edge count in %q: %w", part, err)
		}
		out = append(out, benchConfig{n: n, m: m})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("bench: no sizes given")
	}

	return out, nil
}

func timeBMSSP(g *core.Digraph) ([]float64, float64, error) {
	s, err := bmssp.New(g, 0)
	if err != nil {
		return nil, 0, err
	}
	start := time.Now()
	dist := s.Solve()

	return dist, float64(time.Since(start).Microseconds()) / 1000, nil
}

func timeDijkstra(g *core.Digraph) ([]float64, float64, error) {
	start := time.Now()
	dist, _, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		return nil, 0, err
	}

	return dist, float64(time.Since(start).Microseconds()) / 1000, nil
}

// crossCheck enforces the benchmark contract: identical infinity positions
// and finite agreement within matchTol.
func crossCheck(got, want []float64) error {
	for v := range want {
		gi, wi := math.IsInf(got[v], 1), math.IsInf(want[v], 1)
		if gi != wi {
			return fmt.Errorf("reachability mismatch at vertex %d", v)
		}
		if !wi && math.Abs(got[v]-want[v]) > matchTol {
			return fmt.Errorf("distance mismatch at vertex %d: bmssp=%g dijkstra=%g", v, got[v], want[v])
		}
	}

	return nil
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(ms float64) string { return strconv.FormatFloat(ms, 'f', 3, 64) }
