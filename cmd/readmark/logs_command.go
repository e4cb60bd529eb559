package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"readmark/internal/logging"
	"readmark/internal/logs"
	"readmark/internal/services"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var correlationID string
	var component string
	var level string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show lines from the configured log file",
		Long: `Print the last lines of logging.file. Use --correlation-id to pull out the
records of one resolution cascade (the id appears on every line it logged).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := strings.TrimSpace(cfg.Logging.File)
			if path == "" {
				return services.Wrap(services.ErrConfiguration, "cli", "logs", "logging.file is not set", nil)
			}

			filter := logs.Filter{
				CorrelationID: strings.TrimSpace(correlationID),
				Component:     strings.TrimSpace(component),
			}
			if strings.TrimSpace(level) != "" {
				parsed, err := logging.ParseLevel(level)
				if err != nil {
					return services.Wrap(services.ErrValidation, "cli", "logs", "", err)
				}
				filter.MinLevel = parsed
			}

			out := cmd.OutOrStdout()
			result, err := logs.Tail(cmd.Context(), path, logs.TailOptions{Offset: -1, Limit: lines, Filter: filter})
			if err != nil {
				return err
			}
			for _, line := range result.Lines {
				fmt.Fprintln(out, line)
			}
			if !follow {
				return nil
			}

			offset := result.Offset
			for {
				next, err := logs.Tail(cmd.Context(), path, logs.TailOptions{Offset: offset, Follow: true, Wait: 2 * time.Second, Filter: filter})
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}
				for _, line := range next.Lines {
					fmt.Fprintln(out, line)
				}
				offset = next.Offset
				if cmd.Context().Err() != nil {
					return nil
				}
			}
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until interrupted")
	cmd.Flags().StringVar(&correlationID, "correlation-id", "", "Only lines carrying this correlation id")
	cmd.Flags().StringVar(&component, "component", "", "Only lines from this component (resolver, identifier, ...)")
	cmd.Flags().StringVar(&level, "level", "", "Minimum level (debug, info, warn, error)")
	return cmd
}
