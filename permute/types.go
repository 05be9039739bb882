// SPDX-License-Identifier: MIT
// Package: Vec/permute
//
// types.go — the Permutation type, the Consumed marker and sentinel errors.

package permute

import "errors"

// Permutation is an index mapping in gather form: p[i] = j means that,
// once applied, position i receives the element currently at position j.
// A valid Permutation of length n contains every index in [0, n) once.
type Permutation []int

// Consumed marks a permutation entry that ReorderDestructive has already
// placed. It is negative, so it never collides with a valid index.
const Consumed = -1

// Method names used as context prefixes in wrapped errors.
const (
	MethodReorder            = "Reorder"
	MethodReorderDestructive = "ReorderDestructive"
	MethodValidate           = "Validate"
	MethodInverse            = "Inverse"
	MethodCycles             = "Cycles"
	MethodSortByKeys         = "SortByKeys"
)

// ErrLengthMismatch indicates the permutation and the target sequence have
// different lengths.
var ErrLengthMismatch = errors.New("permute: length mismatch")

// ErrIndexOutOfRange indicates a permutation entry outside [0, n).
var ErrIndexOutOfRange = errors.New("permute: index out of range")

// ErrNotPermutation indicates a permutation entry that repeats, i.e. the
// mapping is not a bijection.
var ErrNotPermutation = errors.New("permute: not a permutation")

// ErrConsumed indicates a buffer that ReorderDestructive already consumed.
var ErrConsumed = errors.New("permute: permutation already consumed")
