/*
Package domain contains the core domain models of plantctl.

It defines the entities of the shutdown sequencer and of the engine boundary,
such as Stages, Samples and Run records. The package is kept free of I/O and
persistence; engine access goes through the interfaces in package ports.

# Key Entities

  - Variable: a named process variable with an optional engineering unit.
  - Stage: one position in a sequence, with its actuation writes and its exit predicate.
  - Sequence: an immutable, ordered table of Stages plus the variables to record.
  - Run: the mutable execution record (cursor, samples, model time, status).
  - Block: a plant block as reported by the engine, used for topology extraction.
*/
package domain
