package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// histWidth is the length, in full blocks, of the longest bar.
const histWidth = 70

type histBucket struct {
	start float64
	count int64
}

type hist struct {
	bucketSize float64
	buckets    []histBucket
}

// fill distributes sorted into h's buckets, which must already be
// allocated. Values equal to the upper bound land in the last bucket.
func (h *hist) fill(sorted []float64) {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	// TODO: If the range is large, expand the bucketsize and start/end a
	// little bit to obtain integer boundaries.
	h.bucketSize = (hi - lo) / float64(len(h.buckets))
	h.buckets[0].start = lo
	limit := lo + h.bucketSize
	bi := 0
	for _, v := range sorted {
		for v >= limit && bi < len(h.buckets)-1 {
			bi++
			h.buckets[bi].start = limit
			limit = lo + float64(bi+1)*h.bucketSize
		}
		h.buckets[bi].count++
	}
}

// labels returns the "a ≤ x < b" label of each bucket and the widths
// needed on either side of the x to line them up.
func (h *hist) labels() (labels []string, before, after int) {
	labels = make([]string, len(h.buckets))
	for i, b := range h.buckets {
		op := "<"
		if i == len(h.buckets)-1 {
			op = "≤"
		}
		label := fmt.Sprintf("%.3g ≤ x %s %.3g", b.start, op, b.start+h.bucketSize)
		x := runeIndex(label, 'x')
		if x > before {
			before = x
		}
		if n := utf8.RuneCountInString(label) - x - 1; n > after {
			after = n
		}
		labels[i] = label
	}
	return labels, before, after
}

func (h *hist) render(w io.Writer, width int) {
	var maxCount, total float64
	for _, b := range h.buckets {
		total += float64(b.count)
		if f := float64(b.count); f > maxCount {
			maxCount = f
		}
	}
	labels, before, after := h.labels()
	for i, b := range h.buckets {
		x := runeIndex(labels[i], 'x')
		padLeft := before - x
		padRight := after - utf8.RuneCountInString(labels[i]) + x + 1
		fmt.Fprintf(w, " %*s%s%*s │", padLeft, "", labels[i], padRight, "")
		fmt.Fprint(w, bar(float64(b.count)/maxCount*float64(width)))
		fmt.Fprintf(w, " %d (%.3f%%)\n", b.count, 100*float64(b.count)/total)
	}
}

func (h *hist) String() string {
	var buf bytes.Buffer
	h.render(&buf, histWidth)
	return strings.TrimSuffix(buf.String(), "\n")
}

func runeIndex(s string, r rune) int {
	for i, r2 := range []rune(s) {
		if r2 == r {
			return i
		}
	}
	return -1
}

var barEighths = [9]rune{
	' ', // empty
	'▏',
	'▎',
	'▍',
	'▌',
	'▋',
	'▊',
	'▉',
	'█', // full
}

// bar draws a bar n blocks long, to the nearest eighth.
func bar(n float64) string {
	eighths := round(n * 8)
	return strings.Repeat(string(barEighths[8]), eighths/8) + string(barEighths[eighths%8])
}
