// Package vfmatch is a library for matching Attributed Relational Graphs
// (ARGs) — directed graphs whose nodes and edges carry caller-defined
// attributes — using the VF state-space search algorithm.
//
// 🚀 What is vfmatch?
//
//	A pure-Go library that brings together:
//		• argraph/   — immutable ARGs with O(log d) edge lookup and generic attributes
//		• vf/        — the VF matching state and a recursive enumeration driver
//		• argedit/   — an editable graph that feeds argraph construction
//		• argio/     — binary, text and YAML graph formats
//		• gene/      — random generation of isomorphic graph pairs
//		• vfmetrics/ — Prometheus collectors for search instrumentation
//
// ✨ Why choose vfmatch?
//
//   - Immutable graphs – build once, share freely across goroutines
//   - Attribute-aware – node and edge compatibility is entirely caller-supplied
//   - Deterministic – candidate enumeration and results follow node-id order
//   - Extensible – hook callbacks (OnPair, OnMatch…) for custom logic
//
// Quick ASCII example:
//
//	    0──▶1          a──▶b
//	    ▲   │          ▲   │
//	    └───2          └───c
//
//	two directed triangles admit exactly three isomorphisms (the rotations).
//
// Each package's documentation and example_test.go carry runnable examples.
//
//	go get github.com/katalvlaran/vfmatch
package vfmatch
