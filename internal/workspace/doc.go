// Package workspace hosts one scene behind a mutex so that concurrent
// callers, such as HTTP handlers, see the single-threaded update model the
// scene requires. It is structured into small files by concern:
//
//   - workspace.go: Workspace type and the operations it serialises.
//   - config.go: Config and package defaults; New applies defaults.
//   - convert.go: conversion between scene values and pkg/types DTOs.
//   - journal.go: bounded in-memory event journal fed by the scene.
//   - errors.go: error types and helpers (IsBadRequest).
//   - status.go: Status reporting.
//
// Every operation runs in an OpenTelemetry span named "workspace.<op>". The
// tracer comes from Config or from the global provider, which is a no-op
// unless the embedding process installs one.
package workspace
