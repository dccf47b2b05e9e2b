// Command astrotrade demonstrates the pipeline package end to end. It
// is explicitly outside the CORE (spec.md §1 lists "CLI argument
// handling" as an external collaborator's concern): it builds a small
// synthetic world catalogue rather than parsing a real sector file
// (the fixed-column catalogue parser and courier-route XML parser are
// themselves out of scope), then runs the pipeline and prints a
// one-line summary per world.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/hexroute/astrotrade/apsp"
	"github.com/hexroute/astrotrade/hexgrid"
	"github.com/hexroute/astrotrade/pipeline"
	"github.com/hexroute/astrotrade/worldmodel"
)

func main() {
	worlds := flag.Int("worlds", 12, "number of synthetic worlds to generate")
	backend := flag.String("backend", "dial", "apsp backend: dijkstra, dial, or floyd")
	parallel := flag.Bool("parallel-aggregate", false, "use parallel-by-source trade aggregation")
	flag.Parse()

	if err := run(*worlds, *backend, *parallel); err != nil {
		log.Fatalf("astrotrade: %v", err)
	}
}

func run(n int, backendName string, parallel bool) error {
	backend, err := parseBackend(backendName)
	if err != nil {
		return err
	}

	set := syntheticCatalogue(n)

	opts := []pipeline.Option{pipeline.WithBackend(backend)}
	if parallel {
		opts = append(opts, pipeline.WithParallelAggregate(true))
	}

	res, err := pipeline.Run(context.Background(), set, opts...)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	fmt.Printf("run %s: %d worlds\n", res.RunID, set.Len())
	for i := 0; i < set.Len(); i++ {
		w := set.At(i)
		fmt.Printf("  %-8s endpoint=%.2f transient=%.2f major=%d main=%d intermediate=%d feeder=%d minor=%d\n",
			w.Name, w.EndpointTradeCredits, w.TransientTradeCredits,
			len(w.RouteTiers[worldmodel.TierMajor]), len(w.RouteTiers[worldmodel.TierMain]),
			len(w.RouteTiers[worldmodel.TierIntermediate]), len(w.RouteTiers[worldmodel.TierFeeder]),
			len(w.RouteTiers[worldmodel.TierMinor]))
	}

	return nil
}

func parseBackend(name string) (apsp.Backend, error) {
	switch name {
	case "dijkstra":
		return apsp.BackendDijkstra, nil
	case "dial":
		return apsp.BackendDial, nil
	case "floyd":
		return apsp.BackendFloyd, nil
	default:
		return 0, fmt.Errorf("astrotrade: unknown backend %q (want dijkstra, dial, or floyd)", name)
	}
}

// syntheticCatalogue lays out n worlds two hexes apart along a single
// row, alternating starport quality so the demo run exercises both
// refuellable and non-refuellable intermediates.
func syntheticCatalogue(n int) *worldmodel.Set {
	b := worldmodel.NewBuilder()
	starports := []worldmodel.Starport{worldmodel.StarportA, worldmodel.StarportB, worldmodel.StarportC, worldmodel.StarportX}

	for i := 0; i < n; i++ {
		coords := hexgrid.NewCoords(0, 0, 1+2*i, 10)
		w, err := b.AddWorld(fmt.Sprintf("World-%02d", i), coords)
		if err != nil {
			continue
		}
		w.Profile.Starport = starports[i%len(starports)]
		w.Profile.TechLevel = 8 + i%8
		w.Profile.Population = 4 + i%6
		w.Profile.GasGiants = i % 3
	}

	return b.Freeze()
}
