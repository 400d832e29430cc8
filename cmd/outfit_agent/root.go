package main

import (
	"fmt"
	"log"

	"github.com/jonathan/outfit-recommender/internal/catalog"
	"github.com/jonathan/outfit-recommender/internal/config"
	"github.com/jonathan/outfit-recommender/internal/console"
	"github.com/jonathan/outfit-recommender/internal/history"
	"github.com/jonathan/outfit-recommender/internal/rating"
	"github.com/jonathan/outfit-recommender/internal/recommend"
	"github.com/jonathan/outfit-recommender/internal/selection"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath    string
	seed          uint64
	verbose       bool
	maxTextLength int
	skipGreeting  bool
	format        string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "outfit_agent",
		Short:         "Weather-Based Outfit Recommender",
		Long:          "Suggests an outfit, accessory, shoes and jacket for the current weather. Without a subcommand it starts an interactive session.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to JSON config file")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed for Surprise Me picks (0 seeds from the clock)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print diagnostic log lines to stderr")
	flags.IntVar(&opts.maxTextLength, "max-text-length", 0, "Truncate free text to this many characters (0 = unbounded)")
	cmd.Flags().BoolVar(&opts.skipGreeting, "no-greeting", false, "Skip the greeting and seasonal tip")

	cmd.AddCommand(newRecommendCmd(opts))
	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newCatalogCmd(opts))

	return cmd
}

// resolveConfig layers defaults, the config file, the environment and explicit flags.
func (o *rootOptions) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Defaults()

	if o.configPath != "" {
		fileCfg, err := config.LoadConfig(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg, err := config.ApplyEnv(cfg)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("max-text-length") {
		cfg.MaxTextLength = o.maxTextLength
	}
	if flags.Changed("no-greeting") {
		cfg.SkipGreeting = o.skipGreeting
	}
	if flags.Changed("format") {
		cfg.OutputFormat = o.format
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// logfFor returns a logger that writes to stderr in verbose mode and discards otherwise.
func logfFor(cmd *cobra.Command, cfg config.Config) func(format string, args ...any) {
	if !cfg.Verbose {
		return func(string, ...any) {}
	}
	return log.New(cmd.ErrOrStderr(), "outfit_agent: ", log.LstdFlags).Printf
}

// buildService validates the built-in catalog and wires a fresh service with empty stores.
func buildService(cfg config.Config, logf func(format string, args ...any)) (*recommend.Service, error) {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("built-in catalog is unusable: %w", err)
	}

	picker := selection.NewPickerFromTime()
	if cfg.Seed != 0 {
		picker = selection.NewPicker(cfg.Seed)
		logf("surprise picks seeded with %d", cfg.Seed)
	}

	return recommend.NewService(
		cat,
		picker,
		history.NewStore(history.DefaultCapacity),
		rating.NewStore(rating.DefaultCapacity),
		recommend.WithMaxTextLength(cfg.MaxTextLength),
	), nil
}

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}

	logf := logfFor(cmd, cfg)
	svc, err := buildService(cfg, logf)
	if err != nil {
		return err
	}

	sessionOpts := []console.SessionOption{console.WithLogf(logf)}
	if cfg.SkipGreeting {
		sessionOpts = append(sessionOpts, console.WithoutGreeting())
	}

	return console.NewSession(svc, cmd.InOrStdin(), cmd.OutOrStdout(), sessionOpts...).Run()
}
