package check

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"voicemap/internal/app"
)

var timeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "Health check timeout")
}

// Cmd represents the check command
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the configured transcription engine is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := app.Bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		info, err := app.ProviderInfo(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Provider: %s (%s)\n", info.DisplayName, info.Type)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		results, err := app.CheckProviders(ctx, cfg)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)

		failed := 0
		for _, name := range names {
			if results[name] != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: unhealthy: %v\n", name, results[name])
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: healthy\n", name)
		}

		if failed > 0 {
			return fmt.Errorf("%d provider(s) failed health check", failed)
		}
		return nil
	},
}
