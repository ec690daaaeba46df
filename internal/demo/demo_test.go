package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_AllBuild(t *testing.T) {
	for _, s := range Scenarios() {
		t.Run(s.Name, func(t *testing.T) {
			p := s.Build()
			assert.False(t, p.IsZero())
			assert.NotEmpty(t, s.Description)
		})
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("feed")
	require.NoError(t, err)
	assert.Equal(t, "feed", s.Name)

	_, err = Lookup("nope")
	assert.ErrorContains(t, err, "unknown scenario")
}

func TestNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"content", "exercises", "feed", "hello", "objective"}, Names())
}

func TestHello(t *testing.T) {
	assert.Equal(t, "Hello, world!\nSecond line\n", Hello().Value())
}

func TestObjective(t *testing.T) {
	assert.Equal(t, "# Objective\nBuild a typed DSL for prompting\n", Objective().Value())
}

func TestExercises_Structure(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(Exercises().Value(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "# Exercise 1 (10min)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], " - "))
	assert.Equal(t, "# Exercise 2 (10min)", lines[3])
}

func TestSampleFeed(t *testing.T) {
	out := Render(SampleFeed()).Value()
	assert.True(t, strings.HasPrefix(out, "Feed {\nContent {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n}"))
	assert.Equal(t, 2, strings.Count(out, "    createdAt: 2023-01-01T00:00:00Z\n"))
}
