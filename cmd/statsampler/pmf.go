// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/azrael417/statsampler/stats/pmf"
	"github.com/azrael417/statsampler/utils/logging"
	"github.com/azrael417/statsampler/utils/metric"
	"github.com/azrael417/statsampler/utils/sampler"
)

func newPMFCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pmf",
		Short: "Build the empirical distribution of whitespace separated values",
		Long: `Reads whitespace separated values and prints, in ascending order, the count
and probability of every distinct value. With --samples the distribution is
sampled instead, one value per line. With --histogram a bar chart is printed
instead.`,
		Args: cobra.NoArgs,
		RunE: withEnvironment(runPMF),
	}

	fs := cmd.Flags()
	fs.String(inputKey, "-", "File to read values from, - for stdin")
	fs.Bool(numericKey, false, "If true, values are parsed, and ordered, as numbers")
	fs.Int(samplesKey, 0, "If positive, the number of values to sample from the distribution")
	fs.Uint32(seedKey, 0, "Seed of the random number generator used by --samples. If unset, the generator is seeded from the clock")
	fs.Bool(histogramKey, false, "If true, prints a histogram of the distribution")
	fs.Bool(normalizedKey, true, "If true, the histogram shows probabilities rather than counts")
	return cmd
}

func runPMF(cmd *cobra.Command, env *environment) error {
	path := env.v.GetString(inputKey)
	env.log.Debug("reading values",
		logging.UserString("input", path),
	)
	input, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	values, err := readWords(input)
	_ = input.Close()
	if err != nil {
		return err
	}

	if !env.v.GetBool(numericKey) {
		p, err := pmf.NewFromValues(values)
		if err != nil {
			return err
		}
		return reportPMF(cmd, env, p, func(s string) string { return s })
	}

	numbers := make([]float64, len(values))
	for i, value := range values {
		numbers[i], err = strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("value %d: %w", i+1, err)
		}
	}
	p, err := pmf.NewFromValues(numbers)
	if err != nil {
		return err
	}
	return reportPMF(cmd, env, p, formatFloat)
}

func reportPMF[K constraints.Ordered](
	cmd *cobra.Command,
	env *environment,
	p *pmf.PMF[K],
	format func(K) string,
) error {
	env.log.Info("built distribution",
		zap.Uint64("observations", p.Total()),
		zap.Int("values", p.Len()),
	)

	out := cmd.OutOrStdout()
	if numSamples := env.v.GetInt(samplesKey); numSamples > 0 {
		sampled := metric.NewCounterMetric(metricsNamespace+"_pmf", "sample")
		if err := env.registry.Register(sampled); err != nil {
			return err
		}

		source := sampler.NewRandomSource()
		if env.v.IsSet(seedKey) {
			source = sampler.NewSource(env.v.GetUint32(seedKey))
		}
		samples, err := p.SampleFrom(numSamples, source)
		if err != nil {
			return err
		}
		sampled.Add(float64(len(samples)))

		writer := bufio.NewWriter(out)
		for _, sample := range samples {
			if _, err := fmt.Fprintln(writer, format(sample)); err != nil {
				return err
			}
		}
		return writer.Flush()
	}

	if env.v.GetBool(histogramKey) {
		return p.PlotHistogram(out, env.v.GetBool(normalizedKey))
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"value", "count", "probability"}); err != nil {
		return err
	}
	for _, key := range p.Keys() {
		err := writer.Write([]string{
			format(key),
			strconv.FormatUint(p.Count(key), 10),
			formatFloat(p.Probability(key)),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func readWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}
