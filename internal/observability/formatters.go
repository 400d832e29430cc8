// Package observability provides formatted terminal output for the recommender.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/outfit-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// innerWidth is the printable width inside a box
	innerWidth = boxWidth - 4
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads line to the inner box width, counting runes.
func pad(line string) string {
	n := utf8.RuneCountInString(line)
	if n > innerWidth {
		return string([]rune(line)[:innerWidth-3]) + "..."
	}
	return line + strings.Repeat(" ", innerWidth-n)
}

// Notice writes a plain line outside any box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Notice(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// PrintSection outputs a titled box holding a block of text, word-wrapped to the box.
func (p *Printer) PrintSection(title, text string) {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrap(paragraph, innerWidth)...)
	}
	p.printBox(title, strings.Join(lines, "\n"))
}

// wrap splits text on spaces into lines of at most width runes. A single word
// longer than width stays on its own line and is truncated by printBox.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

// PrintOutfitMenu outputs numbered outfits with their garment pieces.
func (p *Printer) PrintOutfitMenu(outfits []types.OutfitDefinition) {
	var sb strings.Builder
	for i, outfit := range outfits {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, outfit.Title))
		for _, item := range outfit.Items {
			sb.WriteString(fmt.Sprintf("    - %s\n", item))
		}
	}
	sb.WriteString("0. Surprise Me!")
	p.printBox("CHOOSE AN OUTFIT", sb.String())
}

// PrintMenu outputs a numbered single-line menu.
func (p *Printer) PrintMenu(title string, entries []string) {
	var sb strings.Builder
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, entry))
	}
	sb.WriteString("0. Surprise Me!")
	p.printBox(title, sb.String())
}

// PrintBucket outputs all four menus of a category.
func (p *Printer) PrintBucket(category types.TemperatureCategory, bucket *types.CatalogBucket) {
	if bucket == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Outfits:\n")
	for i, outfit := range bucket.Outfits {
		sb.WriteString(fmt.Sprintf("  %d. %s (%s)\n", i+1, outfit.Title, strings.Join(outfit.Items[:], ", ")))
	}
	for _, menu := range []struct {
		name    string
		entries [types.MenuSize]string
	}{
		{"Accessories", bucket.Accessories},
		{"Shoes", bucket.Shoes},
		{"Jackets", bucket.Jackets},
	} {
		sb.WriteString(fmt.Sprintf("\n%s:\n", menu.name))
		for i, entry := range menu.entries {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, entry))
		}
	}

	p.printBox(strings.ToUpper(string(category))+" CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSelection(sb *strings.Builder, sel *types.RecommendationSelection, itemPrefix string) {
	sb.WriteString(fmt.Sprintf("Outfit:    %s\n", sel.Outfit.Title))
	for _, item := range sel.Outfit.Items {
		sb.WriteString(fmt.Sprintf("%s- %s\n", itemPrefix, item))
	}
	sb.WriteString(fmt.Sprintf("Accessory: %s\n", sel.Accessory))
	sb.WriteString(fmt.Sprintf("Shoes:     %s\n", sel.Shoe))
	sb.WriteString(fmt.Sprintf("Jacket:    %s\n", sel.Jacket))
}

// PrintSelection outputs the final recommendation.
func (p *Printer) PrintSelection(sel *types.RecommendationSelection) {
	if sel == nil {
		return
	}

	var sb strings.Builder
	writeSelection(&sb, sel, "           ")
	p.printBox("YOUR OUTFIT RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs past recommendations, oldest first. Empty notes and
// moods are omitted.
func (p *Printer) PrintHistory(entries []types.HistoryEntry) {
	if len(entries) == 0 {
		p.Notice("No past recommendations found.")
		return
	}

	var sb strings.Builder
	for i, h := range entries {
		sb.WriteString(fmt.Sprintf("Entry %d | %s | %.1f C | %s\n", i+1, h.Weather.City, h.Weather.TemperatureCelsius, h.Weather.Condition))
		writeSelection(&sb, &h.Selection, " ")
		if h.UserNote != "" {
			sb.WriteString(fmt.Sprintf("Note:      %s\n", h.UserNote))
		}
		if h.Mood != "" {
			sb.WriteString(fmt.Sprintf("Mood:      %s\n", h.Mood))
		}
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PAST RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRatings outputs ratings in the order they were given.
func (p *Printer) PrintRatings(ratings []types.RatingEntry) {
	if len(ratings) == 0 {
		p.Notice("No ratings yet.")
		return
	}

	var sb strings.Builder
	for i, r := range ratings {
		sb.WriteString(fmt.Sprintf("%d. %s  %s  (%s)\n", i+1, r.OutfitTitle, Stars(r.Stars), r.Date))
		if r.Feedback != "" {
			sb.WriteString(fmt.Sprintf("   \"%s\"\n", r.Feedback))
		}
	}

	p.printBox(fmt.Sprintf("OUTFIT RATINGS (%d)", len(ratings)), strings.TrimSuffix(sb.String(), "\n"))
}

// Stars renders a 1..5 score as filled and empty stars.
func Stars(n int) string {
	n = max(0, min(n, types.MaxStars))
	return strings.Repeat("★", n) + strings.Repeat("☆", types.MaxStars-n)
}
