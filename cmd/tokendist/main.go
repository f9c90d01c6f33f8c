package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/projectdiscovery/gologger"

	"github.com/trey314159/tokendist"
	"github.com/trey314159/tokendist/internal/batch"
	"github.com/trey314159/tokendist/internal/pairs"
	"github.com/trey314159/tokendist/internal/runner"
)

func main() {
	flagArgs, positional := runner.SplitArgs(os.Args[1:])
	cliOpts := runner.ParseFlags(flagArgs)

	cfg, err := runner.BuildConfig(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("invalid configuration: %v\n", err)
	}
	engine := tokendist.NewEngine(cfg)

	switch {
	case len(positional) == 2:
		compareOnce(engine, positional[0], positional[1])
	case len(positional) == 1:
		compareFile(engine, positional[0])
	case runner.HasStdin():
		compareReader(engine, os.Stdin)
	default:
		gologger.Fatal().Msgf("tokendist: expected two strings or a pair file, got %d argument(s)\n", len(positional))
	}
}

func compareOnce(engine *tokendist.Engine, a, b string) {
	fmt.Println(formatLine(engine.Distance(a, b), a, b))
}

func compareFile(engine *tokendist.Engine, path string) {
	f, err := os.Open(path)
	if err != nil {
		gologger.Fatal().Msgf("tokendist: %v\n", err)
	}
	defer f.Close()
	compareReader(engine, f)
}

func compareReader(engine *tokendist.Engine, r io.Reader) {
	input, err := pairs.ReadAll(r)
	if err != nil {
		gologger.Fatal().Msgf("tokendist: %v\n", err)
	}

	comparer := batch.NewComparer(engine, 0)
	results := comparer.Run(input)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, res := range results {
		fmt.Fprintln(w, formatLine(res.Dist, res.A, res.B))
	}
}

func formatLine(dist float64, a, b string) string {
	if math.IsInf(dist, 1) {
		return fmt.Sprintf("9999\t%s\t%s", a, b)
	}
	return fmt.Sprintf("%.2f\t%s\t%s", dist, a, b)
}
