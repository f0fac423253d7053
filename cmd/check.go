package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"guardian/internal/config"
	"guardian/internal/exposure"
	"guardian/pkg/domain"
	"guardian/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand constructs the 'check' subcommand that runs a one-shot
// exposure check against the configured providers and prints the report as
// JSON without persisting it.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Runs a one-shot exposure check and prints the report",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			email, _ := cmd.Flags().GetString("email")
			identifier, _ := cmd.Flags().GetString("identifier")
			kind, _ := cmd.Flags().GetString("kind")

			query, err := domain.ExposureQuery{
				Email:          email,
				Identifier:     identifier,
				IdentifierKind: domain.IdentifierKind(kind),
			}.Validate()
			if err != nil {
				logger.Fatal(ctx, "invalid exposure query", zap.Error(err))
			}

			aggregator := exposure.New(buildSources(ctx, cfg),
				exposure.NewScorer(exposure.ScorerOptions{}),
				exposure.Options{SourceTimeout: cfg.Aggregator.SourceTimeout})

			report := aggregator.Aggregate(ctx, query)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				logger.Fatal(ctx, "could not encode report", zap.Error(err))
			}
			if report.RiskLevel == domain.RiskHigh {
				fmt.Fprintln(os.Stderr, "high risk exposure detected")
			}
		},
	}

	cmd.Flags().String("email", "", "Email address to check")
	cmd.Flags().String("identifier", "", "Username or full name to check")
	cmd.Flags().String("kind", "", "Identifier kind (USERNAME or FULL_NAME)")

	return cmd
}
