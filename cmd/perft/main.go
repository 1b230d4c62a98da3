package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"checkers-engine/draughts"
	"checkers-engine/internal/config"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogging(os.Stderr)

	pos := flag.String("pos", draughts.StartPosition, "Position string: 32 squares, side (r|w), optional chain square")
	depth := flag.Int("depth", cfg.PerftDepth, "Perft depth")
	divide := flag.Bool("divide", false, "Print per-action node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	legacy := flag.Bool("legacy-kings", false, "End a king's turn after a single capture")
	parallel := flag.Bool("parallel", false, "Search root actions concurrently")
	useTT := flag.Bool("tt", false, "Cache subtree counts by position hash")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := draughts.ParsePosition(*pos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParsePosition error: %v\n", err)
		os.Exit(2)
	}
	board.SetRules(draughts.Rules{LegacyKingChains: *legacy})
	if err := board.Validate(); err != nil {
		log.Warn().Err(err).Str("pos", *pos).Msg("position is inconsistent")
	}
	log.Debug().Str("pos", board.String()).Int("depth", *depth).Bool("legacy_kings", *legacy).Msg("perft")

	if *divide {
		div := draughts.PerftDivide(board, *depth)
		keys := maps.Keys(div)
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].From() != keys[j].From() {
				return keys[i].From() < keys[j].From()
			}
			return keys[i].To() < keys[j].To()
		})
		var sum uint64
		for _, a := range keys {
			fmt.Printf("%s: %d\n", a.Describe(), div[a])
			sum += div[a]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	count := draughts.Perft
	switch {
	case *parallel:
		count = parallelPerft
	case *useTT:
		count = cachedPerft
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += count(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	log.Info().Int("depth", *depth).Uint64("nodes", totalNodes).Dur("elapsed", elapsed).Float64("nps", nps).Msg("perft done")

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating memprofile")
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("write heap profile")
		}
		_ = f.Close()
	}
}

// parallelPerft runs each root subtree in its own goroutine on a copy of b.
func parallelPerft(b *draughts.Board, depth int) uint64 {
	if depth <= 1 {
		return draughts.Perft(b, depth)
	}
	actions := b.LegalActions()
	counts := make([]uint64, len(actions))
	var g errgroup.Group
	for i, a := range actions {
		i, child := i, b.Copy()
		child.Apply(a)
		g.Go(func() error {
			counts[i] = draughts.Perft(child, depth-1)
			return nil
		})
	}
	_ = g.Wait()
	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	return nodes
}

type ttKey struct {
	hash  uint64
	depth int
}

// cachedPerft is Perft with subtree counts memoised by Zobrist key.
func cachedPerft(b *draughts.Board, depth int) uint64 {
	return perftTT(b, depth, make(map[ttKey]uint64))
}

func perftTT(b *draughts.Board, depth int, tt map[ttKey]uint64) uint64 {
	if depth <= 0 {
		return 1
	}
	key := ttKey{b.Hash(), depth}
	if n, ok := tt[key]; ok {
		return n
	}
	actions := b.LegalActions()
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(actions))
	} else {
		for _, a := range actions {
			child := *b
			child.Apply(a)
			nodes += perftTT(&child, depth-1, tt)
		}
	}
	tt[key] = nodes
	return nodes
}
