// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bootstrap estimates the sampling distribution of column means by
// resampling observations with replacement.
//
// The result of a resample always carries the plug-in estimate (the mean over
// every observation, each used exactly once) in its first row, followed by one
// row per bootstrap replicate.
package bootstrap

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/azrael417/statsampler/utils/sampler"
)

// DefaultSeed is used when the caller doesn't care about the seed but wants
// reproducible results.
const DefaultSeed uint32 = 104729

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNegativeSamples   = fmt.Errorf("%w: negative number of samples", ErrInvalidArgument)
	ErrEmptyObservations = fmt.Errorf("%w: no observations", ErrInvalidArgument)
	ErrInvalidAxis       = fmt.Errorf("%w: unknown axis", ErrInvalidArgument)
	ErrRaggedRows        = fmt.Errorf("%w: rows have different lengths", ErrInvalidArgument)
)

// Axis selects the resampling unit of an observation matrix.
type Axis int

const (
	// Rows resamples rows; every row is one observation of all variables.
	Rows Axis = iota
	// Columns resamples columns; every column is one observation of all
	// variables.
	Columns
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

func (a Axis) Verify() error {
	switch a {
	case Rows, Columns:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
}

// Bootstrap draws [numSamples] bootstrap replicates of the mean of
// [observations].
//
// With [Rows], the result has numSamples+1 rows and one column per column of
// [observations]. With [Columns], the result has one row per row of
// [observations] and numSamples+1 columns.
//
// Invariant: Each replicate draws all of its indices with a single call to the
// seeded sampler, in replicate order. Any change to the draw order changes the
// output for every seed and is considered breaking.
func Bootstrap(observations mat.Matrix, numSamples int, axis Axis, seed uint32) (*mat.Dense, error) {
	if numSamples < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSamples, numSamples)
	}
	if err := axis.Verify(); err != nil {
		return nil, err
	}
	if observations == nil {
		return nil, ErrEmptyObservations
	}

	units := observations
	if axis == Columns {
		units = observations.T()
	}
	numUnits, numVariables := units.Dims()
	if numUnits == 0 || numVariables == 0 {
		return nil, fmt.Errorf("%w: %dx%d matrix", ErrEmptyObservations, numUnits, numVariables)
	}

	s := sampler.NewDeterministicUniformWithReplacement(sampler.NewSource(seed))
	if err := s.Initialize(uint64(numUnits)); err != nil {
		return nil, fmt.Errorf("%w: %d observations", err, numUnits)
	}

	var (
		result  = mat.NewDense(numSamples+1, numVariables, nil)
		mean    = make([]float64, numVariables)
		scratch = make([]float64, numVariables)
		all     = make([]uint64, numUnits)
	)
	for i := range all {
		all[i] = uint64(i)
	}
	meanOf(mean, scratch, units, all)
	result.SetRow(0, mean)

	for i := 1; i <= numSamples; i++ {
		indices, err := s.Sample(numUnits)
		if err != nil {
			return nil, err
		}
		meanOf(mean, scratch, units, indices)
		result.SetRow(i, mean)
	}

	if axis == Columns {
		return mat.DenseCopyOf(result.T()), nil
	}
	return result, nil
}

// FromRows copies [rows] into a matrix. Every row must have the same, non-zero
// length.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyObservations
	}

	numColumns := len(rows[0])
	data := make([]float64, 0, len(rows)*numColumns)
	for i, row := range rows {
		if len(row) != numColumns {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d",
				ErrRaggedRows,
				i,
				len(row),
				numColumns,
			)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), numColumns, data), nil
}

// meanOf writes the elementwise mean of the rows of [units] at [indices] into
// [dst]. Rows are accumulated in the order of [indices].
func meanOf(dst, scratch []float64, units mat.Matrix, indices []uint64) {
	mat.Row(dst, int(indices[0]), units)
	for _, index := range indices[1:] {
		mat.Row(scratch, int(index), units)
		floats.Add(dst, scratch)
	}

	n := float64(len(indices))
	for i := range dst {
		dst[i] /= n
	}
}
