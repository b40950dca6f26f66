/*
Package wedgerun drives parameterized sweeps ("wedges") over node-graph
job templates: it expands a declarative description of which parameters
vary into the full cross-product of value assignments, derives a
deterministic artifact name per assignment, and submits the assignments
one at a time to an external execution service.

# Concept

A sweep configuration declares static parameter overrides and varying
axes on named template nodes. Each axis is either an explicit value list
or an inclusive [min, max, step] range. The engine enumerates every
combination in a fixed odometer order, clones the base template per
combination, applies the values, and names the output after the values
that produced it, so artifacts can later be located from the parameters
alone.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/wedgerun"
		"github.com/aretw0/wedgerun/pkg/adapters/comfy"
	)

	func main() {
		cfg, err := wedgerun.LoadConfig("wedge_config.json")
		if err != nil {
			log.Fatal(err)
		}

		workflow, err := comfy.LoadWorkflow("workflow.json")
		if err != nil {
			log.Fatal(err)
		}

		runner := wedgerun.New(cfg, comfy.NewClient(cfg.URL),
			wedgerun.WithLimit(5),
		)
		if err := runner.Run(context.Background(), workflow); err != nil {
			log.Fatal(err)
		}
	}

The cmd/wedgerun binary wraps the same flow with config resolution, a
dry-run preview, and an interactive confirmation gate.
*/
package wedgerun
