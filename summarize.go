package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cespare/argf"
	"github.com/cespare/statcmd/calc"
)

func summarize(args []string) {
	if err := runSummarize(args, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func runSummarize(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("summarize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quantStr := fs.String("quantiles", "0.5,0.9,0.99", "Quantiles to record")
	printHist := fs.Bool("hist", false, "Print a histogram")
	histBuckets := fs.Int("buckets", 10, "How many buckets for the histogram")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *histBuckets <= 1 {
		return fmt.Errorf("%d is an invalid number of buckets", *histBuckets)
	}
	quants, err := parseQuantiles(*quantStr)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "", 0)
	sr := newSummarizer(quants, *histBuckets)
	var nonNumeric int64
	argf.Init(fs.Args())
	for argf.Scan() {
		s := strings.TrimSpace(argf.String())
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			nonNumeric++
			continue
		}
		sr.add(v)
	}
	if err := argf.Error(); err != nil {
		return err
	}
	if nonNumeric > 0 {
		logger.Printf("warning: found %d non-numeric lines of input", nonNumeric)
	}
	if len(sr.vals) == 0 {
		logger.Println("no numbers given")
		return nil
	}
	s, err := sr.summarize()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, s)
	if *printHist {
		fmt.Fprintln(stdout, &s.hist)
	}
	return nil
}

func parseQuantiles(qs string) ([]float64, error) {
	var quants []float64
	for _, q := range strings.Split(qs, ",") {
		f, err := calc.ParseNumber(q)
		if err != nil {
			return nil, fmt.Errorf("bad quantile: %w", err)
		}
		if f <= 0 || f >= 1 {
			return nil, fmt.Errorf("quantile values must be in (0, 1); got %g", f)
		}
		quants = append(quants, f)
	}
	sort.Float64s(quants)
	return quants, nil
}

type summarizer struct {
	summary
	vals []float64
}

func newSummarizer(quants []float64, numBuckets int) *summarizer {
	sr := &summarizer{
		summary: summary{
			quants: make([]quantile, len(quants)),
			hist:   hist{buckets: make([]histBucket, numBuckets)},
		},
	}
	for i, q := range quants {
		sr.quants[i].q = q
	}
	return sr
}

func (sr *summarizer) add(v float64) {
	sr.vals = append(sr.vals, v)
}

func (sr *summarizer) summarize() (*summary, error) {
	sort.Float64s(sr.vals)
	n := len(sr.vals)
	sr.count = int64(n)
	sr.min = sr.vals[0]
	sr.max = sr.vals[n-1]
	mean, err := calc.Mean(sr.vals)
	if err != nil {
		return nil, err
	}
	sr.mean = mean
	// sr.vals is sorted, so the k-th order statistic is sr.vals[k-1].
	for i, q := range sr.quants {
		k := round(q.q*float64(n-1)) + 1
		if k < 1 || k > n {
			return nil, fmt.Errorf("%w: quantile %g maps to k=%d of %d", calc.ErrRange, q.q, k, n)
		}
		sr.quants[i].v = sr.vals[k-1]
	}

	var sumSquares float64
	for _, v := range sr.vals {
		sumSquares += (v - mean) * (v - mean)
	}
	sr.hist.fill(sr.vals)
	sr.stdev = math.Sqrt(sumSquares / float64(n))
	return &sr.summary, nil
}

type summary struct {
	count  int64
	min    float64
	max    float64
	mean   float64
	stdev  float64
	quants []quantile
	hist
}

type quantile struct {
	q float64 // e.g., 0.9 for 90th percentile
	v float64 // quantile value
}

func (s *summary) String() string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 4, ' ', 0)

	fmt.Fprintf(tw, "count\t%d\n", s.count)
	fmt.Fprintf(tw, "min\t%g\n", s.min)
	fmt.Fprintf(tw, "max\t%g\n", s.max)
	fmt.Fprintf(tw, "mean\t%g\n", s.mean)
	fmt.Fprintf(tw, "std. dev.\t%g\n", s.stdev)
	for _, q := range s.quants {
		fmt.Fprintf(tw, "quantile %g\t%g\n", q.q, q.v)
	}

	tw.Flush()
	b := buf.Bytes()
	return string(b[:len(b)-1]) // drop the \n
}

func round(f float64) int {
	return int(math.Floor(f + 0.5))
}
