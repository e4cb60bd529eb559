package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"readmark/internal/content"
	"readmark/internal/identification"
	"readmark/internal/services"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var title string
	var categoryFlag string
	var fetch bool
	var resolve bool

	cmd := &cobra.Command{
		Use:   "identify <url>",
		Short: "Run the full identification pipeline for a page",
		Long: `Derive the title, category and progress of a page and optionally resolve
canonical metadata from the configured catalogs.

Examples:
  readmark identify https://mangadex.org/chapter/abc --title "Berserk Chapter 3"
  readmark identify https://example.com/watch/frieren-episode-5 --fetch --resolve
  readmark identify https://royalroad.com/fiction/123/chapter/9 --resolve --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			var opts identification.Options
			if strings.TrimSpace(categoryFlag) != "" {
				category, err := content.ParseCategory(categoryFlag)
				if err != nil {
					return services.Wrap(services.ErrValidation, "cli", "identify", "", err)
				}
				opts.Category = category
			}
			opts.Resolve = resolve

			signals := content.PageSignals{URL: args[0], Title: title}
			if fetch {
				fetcher, err := ctx.newFetcher()
				if err != nil {
					return err
				}
				fetched, err := fetcher.Fetch(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("fetch page: %w", err)
				}
				if strings.TrimSpace(title) != "" {
					fetched.Title = title
				}
				signals = fetched
			}

			var id *identification.Identifier
			if resolve {
				r, err := ctx.newResolver(cmd)
				if err != nil {
					return err
				}
				id = identification.NewIdentifier(r, logger)
			} else {
				id = identification.NewIdentifier(nil, logger)
			}

			result := id.Identify(cmd.Context(), signals, opts)
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fields := [][2]string{
				{"URL", result.URL},
				{"Title", result.Title},
				{"Category", result.Category.String()},
				{"Progress", result.Progress.String()},
			}
			if resolve {
				fields = append(fields, metadataFields(result.Metadata)...)
			}
			fmt.Fprintln(out, renderFields(fields, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Page title (overrides the fetched title)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Skip classification and use this category")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "Download the page to read its title and body text")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Resolve catalog metadata for the extracted title")
	return cmd
}

func metadataFields(candidate *content.Candidate) [][2]string {
	if candidate == nil {
		return [][2]string{{"Metadata", "no catalog match"}}
	}
	thumb := candidate.ThumbnailURL
	if thumb == "" {
		thumb = "-"
	}
	fields := [][2]string{
		{"Source", candidate.Source.String()},
		{"Catalog ID", candidate.ID},
		{"Catalog Title", candidate.Title},
		{"Thumbnail", thumb},
	}
	if candidate.Score > 0 {
		fields = append(fields, [2]string{"Score", fmt.Sprintf("%.2f", candidate.Score)})
	}
	return fields
}
