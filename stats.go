package main

import (
	"log"

	"github.com/cespare/statcmd/calc"
	"github.com/cespare/subcmd"
)

func commands() []subcmd.Command {
	var cmds []subcmd.Command
	for _, c := range calc.Commands() {
		c := c
		for _, name := range c.Names() {
			name := name
			cmds = append(cmds, subcmd.Command{
				Name:        name,
				Description: c.Description,
				Do:          func(args []string) { compute(c, name, args) },
			})
		}
	}
	return append(cmds, subcmd.Command{
		Name:        "summarize",
		Description: "Display summary statistics for a sequence of numbers",
		Do:          summarize,
	})
}

func main() {
	log.SetFlags(0)
	subcmd.Run(commands())
}
