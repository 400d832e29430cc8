package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/outfit-recommender/internal/advice"
	"github.com/jonathan/outfit-recommender/internal/config"
	"github.com/jonathan/outfit-recommender/internal/observability"
	"github.com/jonathan/outfit-recommender/internal/rating"
	"github.com/jonathan/outfit-recommender/internal/schemas"
	"github.com/jonathan/outfit-recommender/internal/selection"
	"github.com/jonathan/outfit-recommender/internal/types"
	"github.com/spf13/cobra"
)

// recommendationOutput is the structured result of the recommend command.
type recommendationOutput struct {
	Category  types.TemperatureCategory     `json:"category" yaml:"category"`
	Weather   types.WeatherObservation      `json:"weather" yaml:"weather"`
	Selection types.RecommendationSelection `json:"selection" yaml:"selection"`
	Note      string                        `json:"note,omitempty" yaml:"note,omitempty"`
	Mood      string                        `json:"mood,omitempty" yaml:"mood,omitempty"`
	Rating    *types.RatingEntry            `json:"rating,omitempty" yaml:"rating,omitempty"`
	Notice    string                        `json:"notice,omitempty" yaml:"notice,omitempty"`
}

type recommendFlags struct {
	city      string
	temp      float64
	condition string
	outfit    int
	accessory int
	shoe      int
	jacket    int
	note      string
	mood      string
	stars     int
	feedback  string
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	f := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Produce one outfit recommendation without prompts",
		Long:  "Classifies the temperature, resolves one pick per menu (0 = Surprise Me) and prints the recommendation. Optionally rates the chosen outfit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, opts, f)
		},
	}

	cmd.Flags().StringVar(&f.city, "city", "", "City name")
	cmd.Flags().Float64VarP(&f.temp, "temp", "t", 0, "Temperature in Celsius, -50 to 50 (required)")
	cmd.Flags().StringVar(&f.condition, "condition", "", "Weather condition, e.g. Sunny, Rainy, Cloudy, Snowy")
	cmd.Flags().IntVar(&f.outfit, "outfit", 0, "Outfit number 1-5 (0 = Surprise Me)")
	cmd.Flags().IntVar(&f.accessory, "accessory", 0, "Accessory number 1-5 (0 = Surprise Me)")
	cmd.Flags().IntVar(&f.shoe, "shoe", 0, "Shoe number 1-5 (0 = Surprise Me)")
	cmd.Flags().IntVar(&f.jacket, "jacket", 0, "Jacket number 1-5 (0 = Surprise Me)")
	cmd.Flags().StringVar(&f.note, "note", "", "Optional note stored with the recommendation")
	cmd.Flags().StringVar(&f.mood, "mood", "", "Optional mood stored with the recommendation")
	cmd.Flags().IntVar(&f.stars, "rate", 0, "Rate the outfit 1-5 stars (0 = do not rate)")
	cmd.Flags().StringVar(&f.feedback, "feedback", "", "Optional feedback stored with the rating")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "Output format: text, json or yaml")

	if err := cmd.MarkFlagRequired("temp"); err != nil {
		panic(fmt.Sprintf("failed to mark temp flag as required: %v", err))
	}

	return cmd
}

func (f *recommendFlags) choices() (selection.Choices, error) {
	var choices selection.Choices
	var err error

	if choices.Outfit, err = selection.FromNumber(f.outfit, types.MenuSize); err != nil {
		return choices, fmt.Errorf("invalid --outfit: %w", err)
	}
	if choices.Accessory, err = selection.FromNumber(f.accessory, types.MenuSize); err != nil {
		return choices, fmt.Errorf("invalid --accessory: %w", err)
	}
	if choices.Shoe, err = selection.FromNumber(f.shoe, types.MenuSize); err != nil {
		return choices, fmt.Errorf("invalid --shoe: %w", err)
	}
	if choices.Jacket, err = selection.FromNumber(f.jacket, types.MenuSize); err != nil {
		return choices, fmt.Errorf("invalid --jacket: %w", err)
	}
	return choices, nil
}

func runRecommend(cmd *cobra.Command, opts *rootOptions, f *recommendFlags) error {
	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}

	choices, err := f.choices()
	if err != nil {
		return err
	}
	if f.stars != 0 && (f.stars < types.MinStars || f.stars > types.MaxStars) {
		return fmt.Errorf("--rate must be between %d and %d, got %d", types.MinStars, types.MaxStars, f.stars)
	}

	logf := logfFor(cmd, cfg)
	svc, err := buildService(cfg, logf)
	if err != nil {
		return err
	}

	obs := types.WeatherObservation{City: f.city, TemperatureCelsius: f.temp, Condition: f.condition}
	sel, err := svc.Submit(obs, choices, f.note, f.mood)
	if err != nil {
		return err
	}

	// The stored entry carries the trimmed and truncated text.
	hist := svc.History()
	recorded := hist[len(hist)-1]

	out := recommendationOutput{
		Category:  svc.Category(recorded.Weather.TemperatureCelsius),
		Weather:   recorded.Weather,
		Selection: *sel,
		Note:      recorded.UserNote,
		Mood:      recorded.Mood,
	}
	logf("recommended %q (%s)", sel.Outfit.Title, out.Category)

	if f.stars != 0 {
		entry, err := svc.Rate(sel.Outfit.Title, f.stars, f.feedback)
		switch {
		case errors.Is(err, rating.ErrStoreFull):
			out.Notice = "rating log is full; rating not saved"
		case err != nil:
			return err
		default:
			out.Rating = entry
		}
	}

	if cfg.OutputFormat == config.FormatText {
		printRecommendation(observability.NewPrinter(cmd.OutOrStdout()), &out)
		return nil
	}

	// Output validation is a safety check, not a requirement
	if err := schemas.ValidateValue(schemas.RecommendationSchema, out); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Output validation failed: %v\n", err)
	}
	return writeStructured(cmd.OutOrStdout(), cfg.OutputFormat, out)
}

func printRecommendation(p *observability.Printer, out *recommendationOutput) {
	p.Notice("%s weather (%.1f C, %s): %s",
		out.Category.Title(), out.Weather.TemperatureCelsius, out.Weather.Condition, out.Weather.City)
	p.PrintSection("TEMPERATURE ADVICE", advice.TemperatureAdvice(out.Weather.TemperatureCelsius))
	p.PrintSelection(&out.Selection)
	p.PrintSection("WEATHER TIP", advice.WeatherTip(out.Weather.Condition))
	p.PrintSection("STYLE SUGGESTION", advice.ColorStyle(out.Weather.Condition))
	if out.Note != "" {
		p.Notice("Note: %s", out.Note)
	}
	if out.Mood != "" {
		p.Notice("Mood: %s", out.Mood)
	}
	if out.Rating != nil {
		p.Notice("Rated %s %s", out.Rating.OutfitTitle, observability.Stars(out.Rating.Stars))
	}
	if out.Notice != "" {
		p.Notice("Notice: %s", out.Notice)
	}
}
