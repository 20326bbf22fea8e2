// Package percolation defines the site type, options and sentinel errors
// for the grid percolation engine.
package percolation

import (
	"errors"
)

var (
	// ErrInvalidSize indicates a grid was requested with a non-positive side length.
	ErrInvalidSize = errors.New("percolation: side length must be positive")
	// ErrTooLarge indicates a side length whose n²+2 slot arena does not fit in an int.
	ErrTooLarge = errors.New("percolation: side length too large")
)

// root marks a slot with no parent; such a slot is the representative of its tree.
const root = -1

// Site is a 1-based (Row, Col) grid coordinate.
type Site struct {
	Row, Col int
}

// Option configures optional behaviour of a Grid.
// Use with New(n, opts...).
type Option func(*Options)

// Options holds the tunable parameters of a Grid.
type Options struct {
	// PathHalving makes find point every other visited node at its
	// grandparent. Default false: find only follows parent links.
	PathHalving bool
}

// DefaultOptions returns Options with path halving disabled.
func DefaultOptions() Options {
	return Options{
		PathHalving: false,
	}
}

// WithPathHalving returns an Option that enables path halving in find.
func WithPathHalving() Option {
	return func(o *Options) {
		o.PathHalving = true
	}
}

// Grid is an n×n percolation system.
//
// Slots [0, n²) are sites in row-major order; slot n² is the virtual top
// and slot n²+1 the virtual bottom. parent[i] == root marks a tree root,
// and size[i] is only meaningful while i is a root.
type Grid struct {
	n      int
	parent []int
	size   []int
	open   []bool

	top, bottom int

	openCount        int
	maxComponentSize int
	opts             Options
}
