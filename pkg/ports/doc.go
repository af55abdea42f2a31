// Package ports defines the interfaces between the core system and its
// infrastructure adapters. Adapters under pkg/adapters implement these
// interfaces; the contract suite in this package verifies that every
// implementation behaves the same way.
package ports
