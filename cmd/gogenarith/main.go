package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/they4kman/experimentation/machine-learning/genetic-algorithms/arithmetic-search/genarith"
)

const (
	exitFound     = 0
	exitExhausted = 1
	exitUsage     = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	params := genarith.DefaultSimulationParams()

	configPath := ""
	quiet := false
	noColor := false

	fs := flag.NewFlagSet("gogenarith", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&configPath, "config", "", "TOML file of simulation params. Explicitly passed flags take precedence over it")
	fs.BoolVar(&quiet, "quiet", false, "Don't print progress while searching")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")

	fs.Int64Var(&params.TargetValue, "target", params.TargetValue, "Value the expression must evaluate to")
	fs.IntVar(&params.ChromosomeSize, "chromosome-size", params.ChromosomeSize, "Number of genes in each chromosome")
	fs.IntVar(&params.MaxGenerations, "max-generations", params.MaxGenerations, "Give up once the generation counter reaches this")
	fs.IntVar(&params.PopulationSize, "population-size", params.PopulationSize, "Number of chromosomes in the population. Must be even")
	fs.Float64Var(&params.CrossoverRate, "crossover-rate", params.CrossoverRate, "Rate at which a pair of parents will cross over (swap genes past a random locus)")
	fs.Float64Var(&params.MutationRate, "mutation-rate", params.MutationRate, "Per-gene rate at which genes are redrawn")
	fs.Int64Var(&params.Seed, "seed", 0, "Seed of the random source. 0 picks one from the clock")
	fs.Var(&params.FitnessShaping, "fitness-shaping", "How distance to the target is scored: reciprocal or absolute")
	fs.IntVar(&params.DecodeCacheSize, "decode-cache-size", params.DecodeCacheSize, "Number of decoded gene sequences to memoize. 0 disables the cache")
	fs.IntVar(&params.ReportInterval, "report-interval", params.ReportInterval, "Print progress every this many generations. 0 disables progress")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if configPath != "" {
		// Remember what was passed explicitly, since loading the file overwrites the flag targets
		explicit := make(map[string]string)
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = f.Value.String()
		})

		if err := genarith.LoadParamsFile(configPath, params); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}

		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				fmt.Fprintln(stderr, err)
				return exitUsage
			}
		}
	}

	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}
	if noColor {
		color.NoColor = true
	}

	sim, err := genarith.NewSimulation(params)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if !quiet {
		sim.SetProgressOutput(stdout)
		fmt.Fprintf(stdout, "Solving for: %d\n  %s\n\n", params.TargetValue, params)
	}

	result := sim.Run()
	printResult(stdout, result)

	if result.Found() {
		return exitFound
	}
	return exitExhausted
}

func printResult(w io.Writer, result *genarith.Result) {
	if result.Found() {
		color.New(color.FgGreen, color.Bold).Fprintln(w, result.String())
	} else {
		color.New(color.FgRed, color.Bold).Fprintln(w, result.String())
	}

	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("RUN:", result.RunID)
	table.AddRow("TARGET:", result.Target)
	table.AddRow("STATE:", result.State)
	table.AddRow("GENERATIONS:", result.Generations)
	table.AddRow("ELAPSED:", result.Elapsed)
	table.AddRow("AVG GENERATION:", result.AvgGenerationTime())

	if result.Found() {
		table.AddRow("GENES:", result.Solution.String())
		table.AddRow("GROUPED:", result.Solution.InfixExpression())

		verified, err := genarith.VerifyExpression(result.Solution)
		switch {
		case err != nil:
			table.AddRow("VERIFIED:", color.RedString("ERROR: %s", err))
		case verified != result.Target:
			table.AddRow("VERIFIED:", color.RedString("MISMATCH: %d", verified))
		default:
			table.AddRow("VERIFIED:", verified)
		}
	}

	fmt.Fprintln(w, table)
}
