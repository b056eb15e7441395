package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
	"github.com/cyclopcam/stats"
)

// Read newline-separated numbers and describe their distribution

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	parser := argparse.NewParser("dist", "Describe the distribution of newline-separated numbers")
	input := parser.String("i", "input", &argparse.Options{Help: "Input file (stdin if omitted)", Required: false, Default: ""})
	fast := parser.Flag("f", "fast", &argparse.Options{Help: "Use the single-pass variance instead of the two-pass one", Required: false})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, _ := logs.NewLog()

	var src io.Reader = os.Stdin
	if *input != "" {
		file, err := os.Open(*input)
		check(err)
		defer file.Close()
		src = file
	}

	samples, skipped := readSamples(src)
	if skipped != 0 {
		logger.Warnf("Skipped %v lines that did not parse as numbers", skipped)
	}
	if len(samples) == 0 {
		logger.Errorf("No samples")
		os.Exit(1)
	}

	variance := stats.Variance(samples)
	unbiased := stats.VarianceUnbiased(samples)
	stddev := stats.StdDev(samples)
	if *fast {
		variance = stats.FastVariance(samples)
		unbiased = stats.FastVarianceUnbiased(samples)
		stddev = stats.FastStdDev(samples)
	}

	fmt.Printf("N %v  sum %.6g  min %.6g  max %.6g\n", len(samples), stats.Sum(samples), stats.Min(samples), stats.Max(samples))
	fmt.Printf("mean %.6g  gmean %.6g  hmean %.6g\n", stats.Mean(samples), stats.GeometricMean(samples), stats.HarmonicMean(samples))
	fmt.Printf("variance %.6g  unbiased %.6g  std dev %.6g\n", variance, unbiased, stddev)
}

func readSamples(r io.Reader) (samples []float64, skipped int) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			skipped++
			continue
		}
		samples = append(samples, v)
	}
	check(scanner.Err())
	return samples, skipped
}
