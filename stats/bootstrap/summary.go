// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bootstrap

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrTooFewReplicates  = fmt.Errorf("%w: at least 2 replicates are required", ErrInvalidArgument)
	ErrInvalidConfidence = fmt.Errorf("%w: confidence must be in (0, 1)", ErrInvalidArgument)
)

// Estimate summarizes the bootstrap distribution of one variable.
type Estimate struct {
	// Mean is the plug-in estimate taken from the first replicate row.
	Mean float64 `json:"mean"`
	// StdErr is the sample standard deviation of the replicates.
	StdErr float64 `json:"stdErr"`
	// Lower and Upper bound the percentile interval at Confidence.
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Confidence float64 `json:"confidence"`
	Replicates int     `json:"replicates"`
}

// Summarize reduces the output of [Bootstrap] to one Estimate per variable.
// [axis] must be the axis the replicates were drawn with.
func Summarize(replicates mat.Matrix, axis Axis, confidence float64) ([]Estimate, error) {
	if err := axis.Verify(); err != nil {
		return nil, err
	}
	if !(confidence > 0 && confidence < 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfidence, confidence)
	}
	if replicates == nil {
		return nil, ErrEmptyObservations
	}

	// Lay the replicates out as one row per draw regardless of the axis.
	draws := replicates
	if axis == Columns {
		draws = replicates.T()
	}
	numRows, numVariables := draws.Dims()
	numReplicates := numRows - 1
	if numReplicates < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewReplicates, max(numReplicates, 0))
	}

	var (
		alpha     = 1 - confidence
		estimates = make([]Estimate, numVariables)
		column    = make([]float64, numRows)
	)
	for i := range estimates {
		mat.Col(column, i, draws)
		values := slices.Clone(column[1:])
		slices.Sort(values)

		estimates[i] = Estimate{
			Mean:       column[0],
			StdErr:     stat.StdDev(values, nil),
			Lower:      stat.Quantile(alpha/2, stat.Empirical, values, nil),
			Upper:      stat.Quantile(1-alpha/2, stat.Empirical, values, nil),
			Confidence: confidence,
			Replicates: numReplicates,
		}
	}
	return estimates, nil
}
