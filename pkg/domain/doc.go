/*
Package domain contains the core domain models for the Life OS engine.

It defines the fundamental entities of the system, such as living Documents,
Protocols, and go/no-go TaskSpecs. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Document: A named text artifact that evolves with version tracking and
    an append-only revision history.
  - Protocol: An ordered list of steps guarded by go/no-go criteria and
    dependencies on other protocols.
  - TaskSpec: The input to the weighted go/no-go evaluation.
  - Briefing / StrategicPlan / ExecutionPlan: The reports exchanged between
    the intel, directional, and executive branches.
*/
package domain
