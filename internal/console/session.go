package console

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/outfit-recommender/internal/advice"
	"github.com/jonathan/outfit-recommender/internal/observability"
	"github.com/jonathan/outfit-recommender/internal/rating"
	"github.com/jonathan/outfit-recommender/internal/recommend"
	"github.com/jonathan/outfit-recommender/internal/selection"
	"github.com/jonathan/outfit-recommender/internal/types"
)

// Main menu options.
const (
	menuRecommend = iota + 1
	menuHistory
	menuRatings
	menuHelp
	menuExit
)

// Session drives the interactive main menu against a recommend.Service.
type Session struct {
	svc          *recommend.Service
	prompt       *Prompter
	printer      *observability.Printer
	now          func() time.Time
	logf         func(format string, args ...any)
	skipGreeting bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionClock overrides the clock used for greetings and seasonal tips.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogf sets the diagnostic logger (for example log.Printf in verbose mode).
func WithLogf(logf func(format string, args ...any)) SessionOption {
	return func(s *Session) {
		s.logf = logf
	}
}

// WithoutGreeting skips the greeting and seasonal tip.
func WithoutGreeting() SessionOption {
	return func(s *Session) {
		s.skipGreeting = true
	}
}

// NewSession creates a Session reading answers from in and writing to out.
func NewSession(svc *recommend.Service, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		svc:     svc,
		prompt:  NewPrompter(in, out),
		printer: observability.NewPrinter(out),
		now:     time.Now,
		logf:    func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops over the main menu until the user exits or input ends.
func (s *Session) Run() error {
	s.printer.Notice("\n==== Weather-Based Outfit Recommender ====")
	if !s.skipGreeting {
		now := s.now()
		day, greeting := advice.Greeting(now)
		s.printer.Notice("%s\n%s", day, greeting)
		s.printer.PrintSection("SEASONAL STYLE TIP", advice.SeasonalTip(now.Month()))
	}

	for {
		err := s.step()
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			s.printer.Notice("\nThank you for using the Outfit Recommender!\nStay stylish and weather-ready!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errExit = errors.New("exit requested")

func (s *Session) step() error {
	s.printer.Notice("\nMain Menu:\n1. Get Outfit Recommendation\n2. View Past Recommendations\n3. View Outfit Ratings\n4. Help\n5. Exit")
	choice, err := s.prompt.ReadMenu(menuExit)
	if err != nil {
		return err
	}

	switch choice {
	case menuRecommend:
		if err := s.recommend(); err != nil {
			return err
		}
	case menuHistory:
		s.printer.PrintHistory(s.svc.History())
	case menuRatings:
		s.printer.PrintRatings(s.svc.Ratings())
	case menuHelp:
		s.printHelp()
	case menuExit:
		return errExit
	}

	s.printer.Notice("\n----------------------------------------\nWould you like to:\n1. Return to the main menu\n2. Exit")
	again, err := s.prompt.ReadMenu(2)
	if err != nil {
		return err
	}
	if again == 2 {
		return errExit
	}
	return nil
}

func (s *Session) recommend() error {
	city, err := s.prompt.ReadLine("\nEnter your city name: ")
	if err != nil {
		return err
	}
	temp, err := s.prompt.ReadTemperature()
	if err != nil {
		return err
	}
	condition, err := s.prompt.ReadLine("Enter weather condition (e.g., Sunny, Rainy, Cloudy, Snowy): ")
	if err != nil {
		return err
	}
	code, err := s.prompt.ReadLine("Enter a secret style code or just press Enter to skip: ")
	if err != nil {
		return err
	}
	if code == advice.SecretCode {
		s.printer.PrintSection("SECRET TIP UNLOCKED", advice.SecretTip)
	}

	category := s.svc.Category(temp)
	bucket, err := s.svc.Bucket(category)
	if err != nil {
		return err
	}
	s.logf("classified %.1f C as %s", temp, category)

	s.printer.PrintSection("TEMPERATURE ADVICE", advice.TemperatureAdvice(temp))

	choices, err := s.readChoices(&bucket)
	if err != nil {
		return err
	}

	note, err := s.prompt.ReadLine("Add a note for this outfit (optional, Enter to skip): ")
	if err != nil {
		return err
	}
	mood, err := s.prompt.ReadLine("How are you feeling today? (optional, Enter to skip): ")
	if err != nil {
		return err
	}

	obs := types.WeatherObservation{City: city, TemperatureCelsius: temp, Condition: condition}
	sel, err := s.svc.Submit(obs, choices, note, mood)
	if err != nil {
		return fmt.Errorf("failed to produce recommendation: %w", err)
	}
	s.logf("recorded recommendation %q for %s", sel.Outfit.Title, category)

	// Advice follows the trimmed and truncated condition that history keeps.
	hist := s.svc.History()
	recorded := hist[len(hist)-1].Weather.Condition

	s.printer.PrintSelection(sel)
	s.printer.PrintSection("WEATHER TIP", advice.WeatherTip(recorded))
	s.printer.PrintSection("STYLE SUGGESTION", advice.ColorStyle(recorded))

	return s.offerRating(sel.Outfit.Title)
}

func (s *Session) readChoices(bucket *types.CatalogBucket) (selection.Choices, error) {
	var choices selection.Choices
	var err error

	s.printer.PrintOutfitMenu(bucket.Outfits[:])
	if choices.Outfit, err = s.prompt.ReadChoice(types.MenuSize); err != nil {
		return choices, err
	}
	s.printer.PrintMenu("CHOOSE AN ACCESSORY", bucket.Accessories[:])
	if choices.Accessory, err = s.prompt.ReadChoice(types.MenuSize); err != nil {
		return choices, err
	}
	s.printer.PrintMenu("CHOOSE A SHOE OPTION", bucket.Shoes[:])
	if choices.Shoe, err = s.prompt.ReadChoice(types.MenuSize); err != nil {
		return choices, err
	}
	s.printer.PrintMenu("CHOOSE A JACKET", bucket.Jackets[:])
	if choices.Jacket, err = s.prompt.ReadChoice(types.MenuSize); err != nil {
		return choices, err
	}
	return choices, nil
}

func (s *Session) offerRating(title string) error {
	yes, err := s.prompt.ReadYesNo("\nWould you like to rate this outfit? (y/n): ")
	if err != nil || !yes {
		return err
	}

	stars, err := s.prompt.ReadStars()
	if err != nil {
		return err
	}
	feedback, err := s.prompt.ReadLine("Any feedback? (optional, Enter to skip): ")
	if err != nil {
		return err
	}

	entry, err := s.svc.Rate(title, stars, feedback)
	switch {
	case errors.Is(err, rating.ErrStoreFull):
		s.printer.Notice("Rating log is full; this rating was not saved.")
		return nil
	case err != nil:
		return err
	}

	avg, n := s.svc.AverageRating(title)
	s.printer.Notice("Thanks! You rated %s %s. Average %.1f over %d rating(s).", entry.OutfitTitle, observability.Stars(entry.Stars), avg, n)
	return nil
}

func (s *Session) printHelp() {
	s.printer.PrintSection("HELP & TIPS", fmt.Sprintf(
		"1. Temperature: Celsius between %.1f and %.1f.\n"+
			"2. Condition: e.g. Sunny, Rainy, Cloudy, Snowy, Windy.\n"+
			"3. Pick each item by number, or enter 0 for a surprise!\n"+
			"4. The last %d recommendations are kept in history.\n"+
			"5. Rate outfits to build your personal rating log.\n"+
			"6. Look out for hidden Easter eggs!",
		types.MinTemperature, types.MaxTemperature, s.svc.HistoryCapacity()))
}
