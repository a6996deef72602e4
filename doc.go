// Package geodesy is a geodetic coordinate transformation engine: given a
// textual pipeline description, it builds an executable operator that
// maps batches of four-dimensional coordinate tuples between reference
// frames, projections, and unit conventions, runnable in both the
// forward and inverse direction.
//
// What is geodesy?
//
//	A small, dependency-light engine that brings together:
//
//	  - A compact pipe-delimited grammar (GYS) and its YAML-ish longhand,
//	    normalized to one canonical step tree (package gys)
//	  - A registry of builtin, user, and macro operators resolved by name
//	    (package registry)
//	  - Compiled, invertible Operator pipelines with per-step inversion
//	    and strict ordering (package op)
//	  - A handful of numerically delicate kernels — adapt, molodensky,
//	    cart, helmert, tmerc, utm — reproduced bit-for-bit against the
//	    reference formulas (package kernel)
//	  - A Context façade that compiles definitions once, stores them
//	    behind stable integer handles, and executes chunked operand
//	    batches across a small fixed pool of scratch-carrying minions
//
// Everything is organized under focused subpackages:
//
//	coord/     — the four-component CoordinateTuple and its unit conversions
//	ellps/     — named Ellipsoid figures-of-earth and derived radii
//	gys/       — GYS/longhand parsing, normalization, and macro expansion
//	args/      — OperatorArgs: typed, consumption-tracked step arguments
//	op/        — the compiled Operator/Pipeline execution core
//	kernel/    — the concrete builtin kernels (cart, helmert, tmerc, utm, …)
//	registry/  — operator-name resolution and Step compilation
//	asset/     — the pluggable on-disk/zip asset Provider
//
// Quick example:
//
//	ctx := geodesy.New()
//	h, ok := ctx.Operation("cart ellps:intl | helmert x:-87 y:-96 z:-120 | cart inv ellps:GRS80")
//	if !ok {
//	    log.Fatal(ctx.Report())
//	}
//	operands := []coord.Tuple{coord.Geo(55, 12, 100, 0)}
//	ctx.Fwd(h, operands)
//
//	go get github.com/katalvlaran/geodesy
package geodesy
