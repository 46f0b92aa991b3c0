package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/grid"
	"github.com/katalvlaran/pathbench/mapgen"
	"github.com/katalvlaran/pathbench/search"
)

// mapFlags are shared by replay and gen.
type mapFlags struct {
	size    int
	density float64
	mapType string
	seed    int64
}

func (m *mapFlags) register(cmd *cobra.Command, defType string) {
	fl := cmd.Flags()
	fl.IntVarP(&m.size, "size", "n", 21, "map side length")
	fl.Float64VarP(&m.density, "density", "d", 0.3, "obstacle density in [0,1] (ignored by maze)")
	fl.StringVarP(&m.mapType, "type", "t", defType, "map type: random, clustered, maze, mixed")
	fl.Int64Var(&m.seed, "seed", 1, "generation seed")
}

func (m *mapFlags) build() (*grid.Grid, error) {
	s, err := mapgen.ParseStrategy(m.mapType)
	if err != nil {
		return nil, err
	}
	return mapgen.Generate(s, m.size, m.density, m.seed)
}

// generate builds the map and marks its endpoints.
func (m *mapFlags) generate() (*grid.Grid, grid.Position, grid.Position, error) {
	g, err := m.build()
	if err != nil {
		return nil, grid.Position{}, grid.Position{}, err
	}
	start, end, ok := mapgen.Endpoints(g)
	if !ok {
		return nil, grid.Position{}, grid.Position{}, fmt.Errorf("%s map size=%d seed=%d has fewer than two free cells", m.mapType, m.size, m.seed)
	}
	if err = g.MarkEndpoints(start, end); err != nil {
		return nil, grid.Position{}, grid.Position{}, err
	}
	return g, start, end, nil
}

func newReplayCmd(g *globals) *cobra.Command {
	var (
		mf       mapFlags
		alg      string
		every    int
		maxSteps int
		plain    bool
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Step one search on a generated map and draw how it grows",
		Long: `Generate one map, run a single algorithm step by step and print the map
with finalized cells (o) and the final path (*).

--every N also prints the visited region after every N-th step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			a, err := search.ParseAlgorithm(alg)
			if err != nil {
				return err
			}
			gr, start, end, err := mf.generate()
			if err != nil {
				return err
			}
			eng, err := search.New(a, gr, start, end)
			if err != nil {
				return err
			}

			rp, err := search.Record(eng, maxSteps)
			if err != nil && !errors.Is(err, search.ErrStepLimit) {
				return err
			}
			if err != nil {
				logger.Warn("replay truncated", "algorithm", a, "max_steps", maxSteps)
			}

			out := cmd.OutOrStdout()
			styled := !plain && isTerminal(out)
			if every > 0 {
				for i := every - 1; i < rp.Len(); i += every {
					fmt.Fprintf(out, "step %d (%s)\n", i+1, rp.Frames[i].State)
					fmt.Fprintln(out, renderGrid(gr, rp.VisitedAt(i), nil, styled))
				}
			}
			fmt.Fprintln(out, renderGrid(gr, rp.VisitedAt(rp.Len()-1), rp.Path, styled))

			st := rp.Stats
			fmt.Fprintf(out, "%s %s: found=%v path_length=%d nodes_explored=%d steps=%d time=%s\n",
				a, eng.State(), st.Found, st.PathLength, st.NodesExplored, rp.Len(), st.Elapsed)
			if !st.Found && eng.State() == search.Exhausted && !gr.Connected(start, end) {
				fmt.Fprintf(out, "start and end lie in different regions (%d connected regions)\n", len(gr.ConnectedComponents()))
			}
			if opt, ok := gr.ShortestPathLength(start, end); ok && st.Found && st.PathLength != opt {
				fmt.Fprintf(out, "shortest possible path_length=%d (+%d)\n", opt, st.PathLength-opt)
			}
			if mp, ok := eng.(search.MeetingPointer); ok {
				if p, met := mp.MeetingPoint(); met {
					fmt.Fprintf(out, "trees met at row=%d col=%d\n", p.Row, p.Col)
				}
			}
			return nil
		},
	}
	mf.register(cmd, mapgen.Maze.String())
	fl := cmd.Flags()
	fl.StringVarP(&alg, "algorithm", "a", search.AStar.String(), "dijkstra, a*, greedy or bidirectional")
	fl.IntVar(&every, "every", 0, "also print the map every N steps (0: final map only)")
	fl.IntVar(&maxSteps, "max-steps", 0, "stop recording after this many steps (0: no limit)")
	fl.BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}

func newGenCmd() *cobra.Command {
	var (
		mf        mapFlags
		endpoints bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a generated map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				gr  *grid.Grid
				err error
			)
			if endpoints {
				gr, _, _, err = mf.generate()
			} else {
				gr, err = mf.build()
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), gr.String())
			return err
		},
	}
	mf.register(cmd, mapgen.Random.String())
	cmd.Flags().BoolVar(&endpoints, "endpoints", true, "mark start (S) and end (E)")
	return cmd
}
