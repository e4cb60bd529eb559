package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"readmark/internal/content"
	"readmark/internal/services"
)

func parseCategoryFlag(value, operation string) (content.Category, error) {
	if strings.TrimSpace(value) == "" {
		return "", services.Wrap(services.ErrValidation, "cli", operation, "--category is required", nil)
	}
	category, err := content.ParseCategory(value)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "cli", operation, "", err)
	}
	return category, nil
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "resolve <title>",
		Short: "Resolve canonical metadata for a title",
		Long: `Search the category's catalogs in order (primary first, then fallbacks)
and print the first match whose similarity clears the acceptance threshold.
Exits with status 3 when no catalog matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategoryFlag(categoryFlag, "resolve")
			if err != nil {
				return err
			}
			r, err := ctx.newResolver(cmd)
			if err != nil {
				return err
			}
			candidate := r.Resolve(cmd.Context(), args[0], category)
			if candidate == nil {
				return services.Wrap(services.ErrNotFound, "cli", "resolve", fmt.Sprintf("no catalog match for %q", args[0]), nil)
			}
			return printCandidate(cmd, ctx, candidate)
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category (anime, manga, webcomic, novel)")
	return cmd
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "lookup <catalog> <id>",
		Short: "Fetch one catalog record by id",
		Long: `Fetch a known record directly without searching or scoring.
Catalogs: anilist, mangadex, jikan (alias mal), kitsu, openlibrary (alias ol).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := content.ParseCatalogName(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "cli", "lookup", "", err)
			}
			category, err := parseCategoryFlag(categoryFlag, "lookup")
			if err != nil {
				return err
			}
			r, err := ctx.newResolver(cmd)
			if err != nil {
				return err
			}
			candidate, err := r.ResolveByID(cmd.Context(), name, args[1], category)
			if err != nil {
				return err
			}
			return printCandidate(cmd, ctx, candidate)
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category (anime, manga, webcomic, novel)")
	return cmd
}

func newThumbnailCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnail <url>",
		Short: "Check that an image URL is reachable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.newResolver(cmd)
			if err != nil {
				return err
			}
			valid := r.ValidateThumbnail(cmd.Context(), args[0])
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"url": args[0], "valid": valid != ""})
			}
			if valid == "" {
				return services.Wrap(services.ErrNotFound, "cli", "thumbnail", "image unreachable or not an image", nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", valid)
			return nil
		},
	}
}

func printCandidate(cmd *cobra.Command, ctx *commandContext, candidate *content.Candidate) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, candidate)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderFields(metadataFields(candidate), shouldColorize(out)))
	return nil
}
