package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestReadLine(t *testing.T) {
	p, out := newTestPrompter("Oslo\r\nlast line without newline")

	line, err := p.ReadLine("City: ")
	require.NoError(t, err)
	assert.Equal(t, "Oslo", line)
	assert.Equal(t, "City: ", out.String())

	line, err = p.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "last line without newline", line)

	_, err = p.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadChoice(t *testing.T) {
	p, out := newTestPrompter("banana\n6\n-1\n3\n")

	choice, err := p.ReadChoice(5)
	require.NoError(t, err)
	assert.Equal(t, 3, choice.Number())
	assert.Equal(t, 3, strings.Count(out.String(), "invalid choice"))
}

func TestReadChoice_Surprise(t *testing.T) {
	p, out := newTestPrompter("0\n")

	choice, err := p.ReadChoice(5)
	require.NoError(t, err)
	assert.True(t, choice.IsSurprise())
	assert.Contains(t, out.String(), "Surprising you with a choice!")
}

func TestReadChoice_EOF(t *testing.T) {
	p, _ := newTestPrompter("7\n")
	_, err := p.ReadChoice(5)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadMenu(t *testing.T) {
	p, out := newTestPrompter("0\n6\n4\n")

	n, err := p.ReadMenu(5)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number between 1 and 5"))
}

func TestReadTemperature(t *testing.T) {
	p, out := newTestPrompter("warm\n50.1\nNaN\n-50\n")

	temp, err := p.ReadTemperature()
	require.NoError(t, err)
	assert.Equal(t, -50.0, temp)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid temperature"))
}

func TestReadStars(t *testing.T) {
	p, out := newTestPrompter("0\n6\nfive\n5\n")

	stars, err := p.ReadStars()
	require.NoError(t, err)
	assert.Equal(t, 5, stars)
	assert.Equal(t, 3, strings.Count(out.String(), "between 1 and 5"))
}

func TestReadYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
	}

	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		got, err := p.ReadYesNo("? ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
