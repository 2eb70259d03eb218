// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/azrael417/statsampler/stats/bootstrap"
)

// readMatrix parses one observation per CSV record. Lines starting with '#'
// are skipped.
func readMatrix(r io.Reader) (*mat.Dense, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	// Row lengths are checked by FromRows so the error is the same however the
	// matrix was built.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			row[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
		}
		rows[i] = row
	}
	return bootstrap.FromRows(rows)
}

// writeMatrix writes every row of [m] as a CSV record.
func writeMatrix(w io.Writer, m mat.Matrix) error {
	writer := csv.NewWriter(w)
	rows, cols := m.Dims()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := range record {
			record[j] = formatFloat(m.At(i, j))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeEstimates(w io.Writer, estimates []bootstrap.Estimate) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"variable", "mean", "std_err", "lower", "upper"}); err != nil {
		return err
	}
	for i, estimate := range estimates {
		err := writer.Write([]string{
			strconv.Itoa(i),
			formatFloat(estimate.Mean),
			formatFloat(estimate.StdErr),
			formatFloat(estimate.Lower),
			formatFloat(estimate.Upper),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
