package intake

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"ptplan/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(input string) (*Collector, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewCollector(strings.NewReader(input), out), out
}

func TestCollector_Ask(t *testing.T) {
	c, out := newTestCollector("hello\r\nworld")

	first, err := c.Ask("one? ")
	require.NoError(t, err)
	assert.Equal(t, "hello", first)

	// last line without a newline still counts
	second, err := c.Ask("two? ")
	require.NoError(t, err)
	assert.Equal(t, "world", second)

	_, err = c.Ask("three? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "one? two? three? ", out.String())
}

func TestCollector_Ask_KeepsInnerWhitespace(t *testing.T) {
	c, _ := newTestCollector(" N \n")

	got, err := c.Ask("? ")
	require.NoError(t, err)
	assert.Equal(t, " N ", got)
}

func TestCollector_Weeks_AcceptsValue(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  int
	}{
		{"1\n", 1},
		{"4\n", 4},
		{"8\n", 8},
		{"\n", plan.DefaultWeeks},
	} {
		c, out := newTestCollector(tt.input)

		got, err := c.Weeks()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.NotContains(t, out.String(), "Invalid input")
	}
}

func TestCollector_Weeks_RepromptsUntilValid(t *testing.T) {
	c, out := newTestCollector("0\n9\nabc\n-1\n3\n")

	got, err := c.Weeks()
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, 4, strings.Count(out.String(), weeksRetry))
}

func TestCollector_Weeks_NeverAcceptsOutOfRange(t *testing.T) {
	c, _ := newTestCollector("9\n12\n0\n")

	_, err := c.Weeks()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCollector_PainArea(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		retries int
	}{
		{"known", "knee\n", "knee", 0},
		{"case kept", "Knee\n", "Knee", 0},
		{"blank", "\n", "", 0},
		{"retry then known", "toe\nwrist\nNECK\n", "NECK", 2},
		{"retry then blank", "toe\n\n", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestCollector(tt.input)

			got, err := c.PainArea()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.retries, strings.Count(out.String(), "Invalid input"))
		})
	}
}

func TestCollector_PainArea_RetryListsAreas(t *testing.T) {
	c, out := newTestCollector("toe\nhip\n")

	_, err := c.PainArea()
	require.NoError(t, err)
	for _, area := range plan.PainAreas {
		assert.Contains(t, out.String(), area)
	}
}

func TestCollector_Request(t *testing.T) {
	c, out := newTestCollector("4\nknee\n\nflexibility\n")

	req, err := c.Request()
	require.NoError(t, err)
	assert.Equal(t, plan.Request{Weeks: 4, PainArea: "knee", Goals: "flexibility"}, req)

	asked := out.String()
	assert.Contains(t, asked, weeksQuestion)
	assert.Contains(t, asked, painQuestion)
	assert.Contains(t, asked, limitationsQuestion)
	assert.Contains(t, asked, goalsQuestion)
}

func TestCollector_Request_StopsAtEndOfInput(t *testing.T) {
	c, _ := newTestCollector("4\nknee\n")

	_, err := c.Request()
	assert.ErrorIs(t, err, io.EOF)
}
