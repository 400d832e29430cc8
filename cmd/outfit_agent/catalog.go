package main

import (
	"fmt"

	"github.com/jonathan/outfit-recommender/internal/catalog"
	"github.com/jonathan/outfit-recommender/internal/config"
	"github.com/jonathan/outfit-recommender/internal/observability"
	"github.com/jonathan/outfit-recommender/internal/types"
	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "catalog [cold|moderate|hot]",
		Short:     "Print the outfit catalog",
		Long:      "Prints the outfits, accessories, shoes and jackets offered for one temperature category, or for all of them.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(types.CategoryCold), string(types.CategoryModerate), string(types.CategoryHot)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "Output format: text, json or yaml")

	return cmd
}

func runCatalog(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("built-in catalog is unusable: %w", err)
	}

	categories := types.AllCategories()
	if len(args) == 1 {
		category, err := types.ParseCategory(args[0])
		if err != nil {
			return err
		}
		categories = []types.TemperatureCategory{category}
	}

	if cfg.OutputFormat != config.FormatText {
		if len(categories) == 1 {
			bucket, err := cat.Bucket(categories[0])
			if err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), cfg.OutputFormat, bucket)
		}
		return writeStructured(cmd.OutOrStdout(), cfg.OutputFormat, cat.Buckets())
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, category := range categories {
		bucket, err := cat.Bucket(category)
		if err != nil {
			return err
		}
		printer.PrintBucket(category, &bucket)
	}
	return nil
}
