// Package state defines persistence-facing contracts for loading and saving
// per-project wizard snapshots, plus a small resolver that orchestrates
// load-mutate-save cycles and delegates resolution to the core go-intake
// primitives.
//
// Responsibilities:
//   - Store only loads/saves a single snapshot for a single Ref.
//   - Resolver wraps a loaded snapshot into an intake.Engine, and applies
//     answers through intake.Answer so override, placement, and inference
//     bookkeeping stay consistent with the resolution rules.
//   - The core intake package remains persistence-agnostic; all persistence
//     logic stays behind Store implementations supplied by consumers.
//
// Data flow:
//
//	Store -> Resolver -> intake.New(snapshot, ...) -> *intake.Engine
//
// Concurrency:
//
//	Meta.ETag implements optimistic concurrency: Mutate refuses to apply a
//	change when the caller-supplied ETag no longer matches the stored one.
//	Save stamps a fresh SnapshotID/ETag (UUIDs) when the caller leaves them
//	empty.
package state
