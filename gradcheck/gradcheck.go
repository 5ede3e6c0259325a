// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares backpropagated derivatives with central
// differences.
//
// Example:
//
//	cfg := gradcheck.DefaultConfig()
//	results, err := gradcheck.CheckAll(cfg, gradcheck.Catalog())
//	if err != nil {
//	    log.Fatal(err)
//	}
package gradcheck

import "github.com/born-ml/minigrad/internal/gradcheck"

// Config controls a gradient check.
type Config = gradcheck.Config

// Case is a named expression with the points it should be checked at.
type Case = gradcheck.Case

// BuildFunc builds an expression on an arena.
type BuildFunc = gradcheck.BuildFunc

// Result is the outcome of checking one case at one point.
type Result = gradcheck.Result

// Arg is the outcome for one argument of a checked point.
type Arg = gradcheck.Arg

// ErrMismatch is wrapped by errors for derivatives that disagree.
var ErrMismatch = gradcheck.ErrMismatch

// DefaultConfig returns ε = 1e-6 and a tolerance of 1e-2.
func DefaultConfig() Config {
	return gradcheck.DefaultConfig()
}

// Check compares backpropagated and numerical derivatives of c at point.
func Check(cfg Config, c Case, point []float64) (Result, error) {
	return gradcheck.Check(cfg, c, point)
}

// CheckAll checks every case at each of its points.
func CheckAll(cfg Config, cases []Case) ([]Result, error) {
	return gradcheck.CheckAll(cfg, cases)
}

// Catalog returns the built-in expressions.
func Catalog() []Case {
	return gradcheck.Catalog()
}

// Lookup returns the catalogue case with the given name.
func Lookup(name string) (Case, bool) {
	return gradcheck.Lookup(name)
}

// Evaluate computes the value of c at point without recording a graph.
func Evaluate(c Case, point ...float64) float64 {
	return gradcheck.Evaluate(c, point...)
}
