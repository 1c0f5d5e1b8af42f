package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/argf"
	"github.com/cespare/statcmd/calc"
)

// defaultDataFile is read when no numbers or files are given on the
// command line. If it does not exist, numbers are read from stdin.
const defaultDataFile = "inputdata.dat"

var errNoNumbers = errors.New("no numbers given")

// numList is a flag.Value holding numbers separated by commas or spaces.
// The flag may be repeated.
type numList struct {
	vals []float64
	set  bool
}

func (l *numList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(l.vals))
	for i, v := range l.vals {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, ",")
}

func (l *numList) Set(s string) error {
	l.set = true
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, f := range fields {
		v, err := calc.ParseNumber(f)
		if err != nil {
			return err
		}
		l.vals = append(l.vals, v)
	}
	return nil
}

// readNumbers gathers the input numbers. If the -nums flag was given, args
// are additional numbers; otherwise they name data files.
func readNumbers(nums *numList, args []string) ([]float64, error) {
	var xs []float64
	if nums.set {
		xs = append(xs, nums.vals...)
		for _, a := range args {
			v, err := calc.ParseNumber(a)
			if err != nil {
				var perr *calc.ParseError
				if errors.As(err, &perr) {
					perr.Source = "argument"
				}
				return nil, err
			}
			xs = append(xs, v)
		}
	} else {
		files := args
		if len(files) == 0 {
			if _, err := os.Stat(defaultDataFile); err == nil {
				files = []string{defaultDataFile}
			}
		}
		var err error
		xs, err = scanNumbers(files)
		if err != nil {
			return nil, err
		}
	}
	if len(xs) == 0 {
		return nil, errNoNumbers
	}
	return xs, nil
}

// scanNumbers reads one number per line from files, or from stdin if
// there are none. Blank lines are skipped.
func scanNumbers(files []string) ([]float64, error) {
	if len(files) == 0 {
		return scanFile("<stdin>", nil)
	}
	var xs []float64
	for _, name := range files {
		vals, err := scanFile(name, []string{name})
		if err != nil {
			return nil, err
		}
		xs = append(xs, vals...)
	}
	return xs, nil
}

// scanFile reads the argf input named by args (stdin if args is empty),
// reporting bad lines against source.
func scanFile(source string, args []string) ([]float64, error) {
	var (
		xs       []float64
		parseErr error
	)
	argf.Init(args)
	// Keep scanning after a bad line so that argf reaches the end of its
	// input and closes the file.
	for line := 1; argf.Scan(); line++ {
		s := strings.TrimSpace(argf.String())
		if s == "" || parseErr != nil {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			parseErr = &calc.ParseError{Source: source, Line: line, Text: s, Err: err}
			continue
		}
		xs = append(xs, v)
	}
	if err := argf.Error(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return xs, nil
}
