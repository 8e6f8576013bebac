// Package networth provides the types and functions for tracking a personal
// set of financial assets and deriving portfolio statistics from them.
//
// The core functionalities include:
//   - Asset Ledger: Each asset carries a running balance and an append-only
//     list of signed transactions classifying how the balance moved
//     (inflows, outflows, appreciation, ...).
//   - Statistics: A stateless engine that computes totals, period change,
//     change rate, category distributions and reconstructed historical
//     snapshots for any asset set and time window.
//   - Commands: A structured add/update/delete command shape, produced by the
//     assist package from free-text instructions, and an applier that resolves
//     references and mutates the store with typed errors.
//   - Store: The single owner of the mutable asset collection. It serializes
//     writers, persists through an injected Storage collaborator after every
//     mutation, and broadcasts the full collection to subscribers.
//   - Data Persistence: Encoding and decoding of assets to and from a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `nw` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package networth
