// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pmf

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	histogramWidth = 40
	histogramBar   = "#"
)

// PlotHistogram writes one bar per value, in the same ascending order used by
// Sample. Bars are scaled so the most frequent value spans the full width.
// With [normalized] the bars show probabilities, otherwise raw counts.
//
// Nothing is written for an empty distribution.
func (p *PMF[K]) PlotHistogram(w io.Writer, normalized bool) error {
	if p.total == 0 {
		return nil
	}

	var (
		keys       = p.Keys()
		labels     = make([]string, len(keys))
		heights    = make([]float64, len(keys))
		amounts    = make([]string, len(keys))
		labelWidth int
	)
	for i, key := range keys {
		labels[i] = fmt.Sprint(key)
		labelWidth = max(labelWidth, len(labels[i]))

		count := p.counts[key]
		if normalized {
			heights[i] = float64(count) / float64(p.total)
			amounts[i] = strconv.FormatFloat(heights[i], 'f', 4, 64)
		} else {
			heights[i] = float64(count)
			amounts[i] = strconv.FormatUint(count, 10)
		}
	}

	tallest := floats.Max(heights)
	for i, label := range labels {
		length := int(math.Round(heights[i] / tallest * histogramWidth))
		bar := strings.Repeat(histogramBar, length)
		if _, err := fmt.Fprintf(w, "%-*s | %-*s %s\n", labelWidth, label, histogramWidth, bar, amounts[i]); err != nil {
			return err
		}
	}
	return nil
}
