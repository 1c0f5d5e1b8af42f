package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/statcmd/calc"
)

// A usageError is a problem with the command line itself.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func compute(c *calc.Command, name string, args []string) {
	err := runCompute(c, name, args, os.Stdout, os.Stderr)
	var uerr usageError
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.As(err, &uerr):
		os.Exit(2) // flag already printed the problem and the usage
	default:
		log.Fatal(err)
	}
}

func runCompute(c *calc.Command, name string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: stats %s [flags] [file ...]\n\n", name)
		fmt.Fprintf(fs.Output(), "%s. Numbers are taken from -nums or read one per line\n", c.Description)
		fmt.Fprintf(fs.Output(), "from the given files (default %s, else stdin).\n\nFlags:\n", defaultDataFile)
		fs.PrintDefaults()
	}
	var nums numList
	fs.Var(&nums, "nums", "Numbers to use, separated by commas or spaces")
	fs.Var(&nums, "numbers", "Alias for -nums")
	var verbose bool
	fs.BoolVar(&verbose, "v", false, "Print the parsed arguments before the result")
	fs.BoolVar(&verbose, "verbose", false, "Alias for -v")

	arg := c.Default()
	var karg int
	if p := c.Param; p != nil {
		for i, pname := range append([]string{p.Name}, p.Aliases...) {
			usage := p.Usage
			if i > 0 {
				usage = "Alias for -" + p.Name
			}
			if p.Integer {
				fs.IntVar(&karg, pname, int(p.Default), usage)
			} else {
				fs.Float64Var(&arg, pname, p.Default, usage)
			}
		}
	}
	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}
	positional = append(positional, fs.Args()...)
	if c.Param != nil && c.Param.Integer {
		arg = float64(karg)
	}

	xs, err := readNumbers(&nums, positional)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintln(stdout, formatArgs(name, c.Param, arg, xs))
	}
	v, err := c.Call(xs, arg)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if verbose {
		fmt.Fprintf(stdout, "%s: %g\n", name, v)
	} else {
		fmt.Fprintf(stdout, "%g\n", v)
	}
	return nil
}

// splitArgs separates flags (with their values) from positional arguments
// so that flags may follow the numbers, as in "mean -nums 1 2 -v".
// A "-" followed by a number is a negative number, not a flag. Everything
// after "--" is positional.
func splitArgs(fs *flag.FlagSet, args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !isFlagArg(a) {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
		name := strings.TrimPrefix(strings.TrimPrefix(a, "-"), "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue // fs.Parse reports it
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			continue
		}
		if i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, positional
}

func isFlagArg(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(a, 64)
	return err != nil
}

func formatArgs(name string, p *calc.Param, arg float64, xs []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "args: command=%s nums=%v", name, xs)
	if p != nil {
		fmt.Fprintf(&b, " %s=%g", p.Name, arg)
	}
	b.WriteString(" verbose=true")
	return b.String()
}
