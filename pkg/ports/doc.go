/*
Package ports defines the driven ports (interfaces) of plantctl.

These interfaces decouple the sequencer, tuner and topology tooling from the
external simulation engine and from run persistence, so the logic can be tested
against deterministic fakes.

# Key Interfaces

  - Reader, Writer, Clock: the three capabilities the sequencer consumes.
  - Timeline: a loaded model inside the engine, addressed per application.
  - Simulator: the engine session that activates timelines.
  - RunStore: persistence of Run records (memory, file, Redis).
*/
package ports
