// Package console implements the interactive terminal front end: line-based
// prompts that re-ask until input is valid, and the main menu session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/outfit-recommender/internal/selection"
	"github.com/jonathan/outfit-recommender/internal/types"
)

// Prompter reads answers line by line. Every Read method returns io.EOF once
// input is exhausted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

//nolint:errcheck // writing prompts to stdout; errors are not recoverable
func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// ReadLine prints prompt and returns the next line without its trailing newline.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	p.printf("%s", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadChoice asks for a menu entry in [1, menuSize] or 0 for Surprise Me.
func (p *Prompter) ReadChoice(menuSize int) (selection.Choice, error) {
	for {
		line, err := p.ReadLine(fmt.Sprintf("Enter your choice (1-%d, or 0 for Surprise Me!): ", menuSize))
		if err != nil {
			return selection.Choice{}, err
		}
		choice, err := selection.ParseChoice(line, menuSize)
		if err != nil {
			p.printf("%v\n", err)
			continue
		}
		if choice.IsSurprise() {
			p.printf("Surprising you with a choice!\n")
		}
		return choice, nil
	}
}

// ReadMenu asks for an option in [1, options]. There is no surprise option.
func (p *Prompter) ReadMenu(options int) (int, error) {
	return p.readIntInRange(fmt.Sprintf("Enter your choice (1-%d): ", options), 1, options)
}

// ReadStars asks for a rating from 1 to 5 stars.
func (p *Prompter) ReadStars() (int, error) {
	return p.readIntInRange(fmt.Sprintf("Rate this outfit (%d-%d stars): ", types.MinStars, types.MaxStars), types.MinStars, types.MaxStars)
}

func (p *Prompter) readIntInRange(prompt string, lo, hi int) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < lo || n > hi {
			p.printf("Invalid input. Please enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}

// ReadTemperature asks for a Celsius temperature within the accepted range.
func (p *Prompter) ReadTemperature() (float64, error) {
	prompt := fmt.Sprintf("Enter current temperature in Celsius (between %.1f and %.1f): ", types.MinTemperature, types.MaxTemperature)
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		temp, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || !(temp >= types.MinTemperature && temp <= types.MaxTemperature) {
			p.printf("Invalid temperature. Please enter a value between %.1f and %.1f.\n", types.MinTemperature, types.MaxTemperature)
			continue
		}
		return temp, nil
	}
}

// ReadYesNo asks a yes/no question. Anything other than y or yes is a no.
func (p *Prompter) ReadYesNo(prompt string) (bool, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
