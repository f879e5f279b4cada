// Command flockrun steps a flock without a window and prints the first agents
// after every tick.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML config file; without it a 100 agent flock with two sample attractors runs")
	ticks := flag.Int("ticks", 10, "number of simulation steps")
	printN := flag.Int("print", 3, "agents printed per tick")
	flag.Parse()

	opts := sampleOptions()
	if *configFile != "" {
		cfg, err := simulation.LoadConfig(*configFile, "")
		if err != nil {
			log.Fatal(err)
		}
		opts = cfg.FlockOptions()
	}

	out := os.Stdout
	sim := flock.New(opts, func(agents []flock.Agent) {
		fmt.Fprintf(out, "%d agents\n", len(agents))
		for i := 0; i < *printN && i < len(agents); i++ {
			a := agents[i]
			fmt.Fprintf(out, "agent %d: position (%.2f, %.2f) velocity (%.2f, %.2f)\n",
				i, a.Pos.X, a.Pos.Y, a.Vel.X, a.Vel.Y)
		}
	})

	fmt.Fprintln(out, "starting flock simulation...")
	for i := 0; i < *ticks; i++ {
		sim.Tick()
		fmt.Fprintf(out, "--- tick %d ---\n", i+1)
	}
	fmt.Fprintln(out, "done")
}

func sampleOptions() flock.Options {
	opts := flock.DefaultOptions()
	opts.Size = 100
	opts.SpeedLimit = 2
	opts.AccelerationLimit = 0.5
	opts.Attractors = []flock.Attractor{
		flock.NewAttractor(100, 100, 50, 0.3),
		flock.NewAttractor(200, 200, 30, -0.2),
	}
	return opts
}
