package calc

import (
	"fmt"
	"math"
)

// A Param describes the optional numeric argument of a command.
type Param struct {
	Name    string
	Aliases []string
	Usage   string
	Default float64
	Integer bool // the argument must be a whole number
}

// A Command is a named statistic.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Param       *Param // nil if the command takes no argument

	fn func(xs []float64, arg float64) (float64, error)
}

// Names returns the command's name followed by its aliases.
func (c *Command) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Call computes the statistic over xs. arg is ignored by commands that
// have no Param.
func (c *Command) Call(xs []float64, arg float64) (float64, error) {
	if c.Param != nil && c.Param.Integer && arg != math.Trunc(arg) {
		return 0, fmt.Errorf("%w: %s must be an integer; got %g", ErrRange, c.Param.Name, arg)
	}
	return c.fn(xs, arg)
}

// Default returns the default value of the command's argument, or 0.
func (c *Command) Default() float64 {
	if c.Param == nil {
		return 0
	}
	return c.Param.Default
}

func noArg(f func([]float64) (float64, error)) func([]float64, float64) (float64, error) {
	return func(xs []float64, _ float64) (float64, error) { return f(xs) }
}

var commands = []*Command{
	{
		Name:        "mean",
		Description: "Compute the arithmetic mean of a list of numbers",
		fn:          noArg(Mean),
	},
	{
		Name:        "geomean",
		Aliases:     []string{"geometricMean"},
		Description: "Compute the geometric mean of a list of numbers",
		fn:          noArg(GeometricMean),
	},
	{
		Name:        "lp",
		Description: "Compute the Lp norm of a list of numbers",
		Param: &Param{
			Name:    "p",
			Usage:   "The p value for the Lp norm",
			Default: DefaultP,
		},
		fn: LpNorm,
	},
	{
		Name:        "kth",
		Aliases:     []string{"nth"},
		Description: "Compute the kth order statistic of a list of numbers",
		Param: &Param{
			Name:    "k",
			Aliases: []string{"n"},
			Usage:   "Which order statistic (1 is the smallest)",
			Default: DefaultK,
			Integer: true,
		},
		fn: func(xs []float64, k float64) (float64, error) {
			return KthOrderStatistic(xs, int(k))
		},
	},
	{
		Name:        "min",
		Description: "Find the smallest of a list of numbers",
		fn:          noArg(Min),
	},
	{
		Name:        "max",
		Description: "Find the largest of a list of numbers",
		fn:          noArg(Max),
	},
}

var byName = make(map[string]*Command)

func init() {
	for _, c := range commands {
		for _, name := range c.Names() {
			if _, ok := byName[name]; ok {
				panic("calc: duplicate command name " + name)
			}
			byName[name] = c
		}
	}
}

// Commands returns every command in display order. The returned Commands
// must not be modified.
func Commands() []*Command {
	cs := make([]*Command, len(commands))
	copy(cs, commands)
	return cs
}

// Lookup finds the command with the given name or alias.
func Lookup(name string) (*Command, error) {
	c, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, name)
	}
	return c, nil
}

// Run looks up the named command and calls it.
func Run(name string, xs []float64, arg float64) (float64, error) {
	c, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return c.Call(xs, arg)
}
