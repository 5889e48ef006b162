// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/utm/config"
	"github.com/ezrec/utm/machine"
	"github.com/ezrec/utm/sim"
	"github.com/ezrec/utm/translate"
)

var f = translate.From

// ruleWidth is the width of the report's separator rules.
const ruleWidth = 80

func main() {
	var steps int
	var jobs int
	var output string
	var verbose bool

	flag.IntVar(&steps, "steps", machine.STEP_LIMIT, "Maximum steps per simulation")
	flag.IntVar(&jobs, "jobs", 1, "Simultaneous simulations")
	flag.StringVar(&output, "o", "-", "Report output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("%v: Usage: %v [options] <machine.yaml|machine.star> [input ...]", os.Args[0], os.Args[0])
	}

	path := flag.Arg(0)

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	def, err := cfg.Definition()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	// Inputs on the command line take the place of the definition's
	// simulation_strings.
	inputs := cfg.Inputs()
	if flag.NArg() > 1 {
		inputs = flag.Args()[1:]
	}

	out := io.Writer(os.Stdout)
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	m := machine.New(def)
	m.MaxSteps = steps
	m.Verbose = verbose

	runner := sim.NewRunner(m)
	runner.Jobs = jobs
	runner.Verbose = verbose

	report(out, path, def, inputs, runner.Run(inputs))
}

// report prints the definition summary, then every simulation's trace and
// verdict.
func report(out io.Writer, path string, def *machine.Definition, inputs []string, results []sim.Result) {
	fmt.Fprintln(out, f("Machine definition: %v", path))
	fmt.Fprintln(out, f("States: %v", def.States))
	fmt.Fprintln(out, f("Initial state: %v", def.Initial))
	fmt.Fprintln(out, f("Final state: %v", def.Final))
	fmt.Fprintln(out, f("Alphabet: %v", def.Alphabet))
	fmt.Fprintln(out, f("Tape alphabet: %v", def.TapeAlphabet))
	fmt.Fprintln(out, f("Transitions: %v", len(def.Rules)))
	fmt.Fprintln(out, f("Input strings: %v", len(inputs)))

	rule := strings.Repeat("=", ruleWidth)
	subrule := strings.Repeat("-", ruleWidth)

	fmt.Fprintf(out, "\n%v\n\n", rule)

	for n, result := range results {
		fmt.Fprintln(out, f("Simulation %v: input '%v'", n+1, result.Input))
		fmt.Fprintln(out, subrule)

		for step, id := range result.Trace {
			fmt.Fprintln(out, f("Step %v: %v", step, id))
		}
		fmt.Fprintln(out, subrule)

		verdict := f("REJECTED")
		if result.Accepted {
			verdict = f("ACCEPTED")
		}
		fmt.Fprintln(out, f("RESULT: input '%v' was %v", result.Input, verdict))

		fmt.Fprintf(out, "\n%v\n\n", rule)
	}
}
