// SPDX-License-Identifier: MIT

// Package fporacle is a parallel brute-force multiplicative-closure
// enumerator, used only in tests for cross-validating the engine's own
// D-class decomposition against an independent computation. It is a
// Froidure-Pin stand-in built around golang.org/x/sync/errgroup the
// same way junjiewwang-perf-analysis partitions its own worklists: a
// bounded worker pool draining a task channel, a mutex-guarded result
// map.
//
// Reachable only from _test.go files in this module; it is not part of
// the core's public API and must never be imported by konieczny, dclass,
// orbit, or element.
package fporacle
