package main

import (
	"fmt"
	"strconv"

	"github.com/fjod/mycogrow/storefront-service/internal/risk"
	"github.com/spf13/cobra"
)

func newRiskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "risk <metal-level>",
		Short: "Estimate harvest rejection risk for a soil metal level (0-100)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("metal level must be an integer: %w", err)
			}
			tier := risk.Estimate(level)
			fmt.Fprintf(cmd.OutOrStdout(), "level %d: %s (%s), rejection %d%%\n",
				tier.MetalLevel, tier.Label, tier.LocalLabel, tier.RejectionPct)
			return nil
		},
	}
}
