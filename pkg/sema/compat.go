package sema

import "github.com/gaarutyunov/play/pkg/ast"

// compatible implements the asymmetric assignment-compatibility rule
// (spec §4.3): identical types are always compatible, and rate<-rank
// widening is additionally allowed. Every other cross-type pair, including
// label and flag in either direction, is incompatible.
func compatible(expected, actual ast.TypeTag) bool {
	if expected == actual {
		return true
	}
	return expected == ast.Rate && actual == ast.Rank
}
