/*
Package lifeos is a personal operating system built around living documents, weighted go/no-go decisions, and a protocol engine with explicit dependency management.

It organizes life management the way an intelligence service organizes operations: an intel branch scans frontier domains for asymmetric opportunities, a directional branch turns briefings into strategy, and an executive branch converts strategy into gated operational tasks. Specialized wings (financial, social, political, psychological, physiological) monitor their own areas on a schedule.

# Concept

State lives in versioned living documents: protocols, heuristics, playbooks, and the worldview framework. Documents evolve by appending insights; every change bumps the version and records history. The protocol engine executes multi-step protocols whose gates and path dependencies decide whether work may proceed, and the go/no-go checker scores tasks on weighted criteria before anything is activated. This hexagonal architecture keeps the core decoupled from the storage adapters (file, memory, Redis) and the outer surfaces (CLI, REPL, HTTP).

# Key Features

  - Living documents: versioned, append-only evolution with full history.
  - Protocol engine: path/circular/scale dependencies, completion gates, cycle detection.
  - Go/no-go checker: weighted scoring with hard floors on feasibility and resources.
  - Frontier detection: five-domain scanning with significance thresholds and worldview feedback.
  - Keyword-dispatch agents with memory and document consultation.

# Usage

Initialize the system with a data directory. Configuration is read from lifeos.yaml in that directory; a missing file yields defaults.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/lifeos"
	)

	func main() {
		sys, err := lifeos.New(".lifeos")
		if err != nil {
			log.Fatal(err)
		}
		defer sys.Close()

		result := sys.DailyRoutine(context.Background())
		fmt.Println(result.Execution.TotalTasks)
	}

Inject a custom store or logger with the functional options:

	sys, err := lifeos.New("", lifeos.WithStore(memory.NewStore()), lifeos.WithLogger(logger))

For the command line interface, see cmd/lifeos.
*/
package lifeos
