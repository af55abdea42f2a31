package domain

import "errors"

// ErrDocumentNotFound is returned when a document name cannot be found in
// the store.
var ErrDocumentNotFound = errors.New("document not found")

// ErrProtocolNotFound is returned when a protocol is not registered with
// the engine.
var ErrProtocolNotFound = errors.New("protocol not found")

// ErrAgentNotFound is returned when an agent name is unknown to the factory.
var ErrAgentNotFound = errors.New("agent not found")

// ErrUnknownWorkflow is returned for workflow names the coordinator does
// not recognize.
var ErrUnknownWorkflow = errors.New("unknown workflow")

// ErrDependencyCycle is returned when registering a protocol would create a
// cycle among path-typed dependencies.
var ErrDependencyCycle = errors.New("dependency cycle")
