/*
Package plantctl drives a dynamic process simulator through staged shutdown
sequences.

A sequence is a table of stages. Each stage writes its actuation set once, on
entry, and then waits for an exit predicate over live process readings. The
sequencer is polled once per tick: evaluate, maybe advance and actuate, record
a sample, advance model time. The last stage's predicate ends the run.

# Usage

Open a session on any ports.Simulator and run a compiled sequence:

	sim := memory.NewSimulator("DemoProject")
	sess, err := plantctl.Open(ctx, sim, plantctl.Project{
		Timeline:          "Tutorial",
		Model:             "KSpiceTutorial Model",
		Parameters:        "KSpiceTutorial Model",
		InitialConditions: "KSpiceTutorial Model",
		Speed:             20,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	def, _ := sequences.Resolve("separator-shutdown", nil)
	seq, _ := sequences.Compile(def)
	run, err := sess.Run(ctx, seq, plantctl.RunOptions{})

The run record carries every sample; recorder.ExportRun writes it as CSV.

# Engines

The in-memory engine (pkg/adapters/memory) simulates the tutorial separator
plant. The HTTP bridge (pkg/adapters/http) reaches an engine hosted in another
process through the same ports.
*/
package plantctl
