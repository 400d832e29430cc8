package main

import (
	"fmt"
	"strconv"

	"github.com/jonathan/outfit-recommender/internal/advice"
	"github.com/jonathan/outfit-recommender/internal/classifier"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify TEMP",
		Short: "Print the temperature category for a Celsius value",
		Long:  "Prints cold (below 15), moderate (15 to 30 inclusive) or hot (above 30) for a temperature. Use -- before negative values, e.g. classify -- -5.",
		Args:  cobra.ExactArgs(1),
		RunE:  runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	temp, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid temperature %q: %w", args[0], err)
	}

	category := classifier.Classify(temp)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", category, advice.TemperatureAdvice(temp))
	return nil
}
