package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"

	"checkers-engine/internal/config"
)

// ladder is a perft run shown in the throughput table.
type ladder struct {
	label string
	pos   string
	depth int
	extra []string
}

var perftLadder = []ladder{
	{label: "Initial", depth: 6},
	{label: "Initial", depth: 8},
	{label: "Initial", depth: 8, extra: []string{"-parallel"}},
	{label: "Initial", depth: 10, extra: []string{"-tt"}},
	{label: "Captures", pos: "rr-rrrrr--rr-w--r-wwwww-----wwww r", depth: 7},
	{label: "Kings", pos: "--------r----r--------W---W-R--- w", depth: 6},
	{label: "LegacyKings", pos: "--------r----r--------W---W-R--- w", depth: 6, extra: []string{"-legacy-kings"}},
}

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	log.Error().Err(err).Str("cmd", name).Msg("running command")
	return 1
}

func (l ladder) args() []string {
	args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(l.depth), "-label", l.label}
	if l.pos != "" {
		args = append(args, "-pos", l.pos)
	}
	return append(args, l.extra...)
}

func main() {
	cfg := config.Load()
	cfg.SetupLogging(os.Stderr)

	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./draughts", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, l := range perftLadder {
		if code := run("go", l.args()...); code != 0 {
			log.Warn().Str("label", l.label).Int("depth", l.depth).Int("exit", code).Msg("perft run failed")
		}
	}
}
