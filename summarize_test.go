package main

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	path := writeData(t, "10\n9\n8\n7\n6\n5\n4\n3\n2\n1\nnot a number\n\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, runSummarize([]string{"-quantiles", "0.9,0.5", path}, &stdout, &stderr))
	out := stdout.String()
	assert.Equal(t, "warning: found 1 non-numeric lines of input\n", stderr.String())

	for _, want := range []string{
		`count\s+10`,
		`min\s+1\n`,
		`max\s+10\n`,
		`mean\s+5\.5\n`,
		`std\. dev\.\s+2\.87228`,
		`quantile 0\.5\s+6\n`,
		`quantile 0\.9\s+9\n`,
	} {
		assert.Regexp(t, regexp.MustCompile(want), out)
	}
	assert.Less(t, strings.Index(out, "quantile 0.5"), strings.Index(out, "quantile 0.9"))
}

func TestSummarizeHist(t *testing.T) {
	path := writeData(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n")

	var stdout bytes.Buffer
	require.NoError(t, runSummarize([]string{"-hist", "-buckets", "2", path}, &stdout, io.Discard))
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	hist := lines[len(lines)-2:]
	assert.Contains(t, hist[0], "1 ≤ x < 5.5")
	assert.Contains(t, hist[0], " 5 (50.000%)")
	assert.Contains(t, hist[1], "5.5 ≤ x ≤ 10")
	assert.Contains(t, hist[1], " 5 (50.000%)")
}

func TestSummarizeNoNumbers(t *testing.T) {
	path := writeData(t, "x\n\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, runSummarize([]string{path}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Equal(t, "warning: found 1 non-numeric lines of input\nno numbers given\n", stderr.String())
}

func TestSummarizeQuantileBounds(t *testing.T) {
	path := writeData(t, "3\n1\n2\n")

	var stdout bytes.Buffer
	require.NoError(t, runSummarize([]string{"-quantiles", "0.01,0.99", path}, &stdout, io.Discard))
	assert.Regexp(t, regexp.MustCompile(`quantile 0\.01\s+1\n`), stdout.String())
	assert.Regexp(t, regexp.MustCompile(`quantile 0\.99\s+3`), stdout.String())
}

func TestSummarizeFlags(t *testing.T) {
	err := runSummarize([]string{"-buckets", "1"}, io.Discard, io.Discard)
	assert.EqualError(t, err, "1 is an invalid number of buckets")

	err = runSummarize([]string{"-quantiles", "0.5,1"}, io.Discard, io.Discard)
	assert.EqualError(t, err, "quantile values must be in (0, 1); got 1")

	err = runSummarize([]string{"-quantiles", "half"}, io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestHistFill(t *testing.T) {
	t.Parallel()

	h := hist{buckets: make([]histBucket, 3)}
	h.fill([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, 3.0, h.bucketSize)
	assert.Equal(t, []histBucket{{0, 3}, {3, 3}, {6, 4}}, h.buckets)

	same := hist{buckets: make([]histBucket, 2)}
	same.fill([]float64{4, 4, 4})
	assert.Equal(t, int64(3), same.buckets[0].count+same.buckets[1].count)
}

func TestBar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ", bar(0))
	assert.Equal(t, "▌", bar(0.5))
	assert.Equal(t, "██ ", bar(2))
	assert.Equal(t, "█▎", bar(1.25))
}
