package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	t.Parallel()

	var names []string
	for _, c := range commands() {
		assert.NotEmpty(t, c.Description, c.Name)
		assert.NotNil(t, c.Do, c.Name)
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"mean",
		"geomean", "geometricMean",
		"lp",
		"kth", "nth",
		"min",
		"max",
		"summarize",
	}, names)
}
