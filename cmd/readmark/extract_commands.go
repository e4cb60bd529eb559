package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"readmark/internal/classification"
	"readmark/internal/content"
	"readmark/internal/extract"
	"readmark/internal/services"
	"readmark/internal/textutil"
)

var offlineAnnotations = map[string]string{"skipConfigLoad": "true"}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var title string
	var bodyFile string

	cmd := &cobra.Command{
		Use:   "classify <url>",
		Short: "Classify a page as manga, anime, webcomic or novel",
		Long: `Score the page URL, title and optional body text against every category
lexicon and print the winning category with the per-category breakdown.

Examples:
  readmark classify https://mangadex.org/chapter/abc
  readmark classify https://example.com/read/42 --title "Solo Leveling Chapter 42"
  readmark classify https://example.com/post --body-file page.txt --json`,
		Args:        cobra.ExactArgs(1),
		Annotations: offlineAnnotations,
		RunE: func(cmd *cobra.Command, args []string) error {
			var body string
			if path := strings.TrimSpace(bodyFile); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return services.Wrap(services.ErrValidation, "cli", "classify", "read body file", err)
				}
				body = string(data)
			}

			result := classification.Default().Score(args[0], title, body)
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(result.Scores))
			for _, score := range result.Scores {
				rows = append(rows, []string{
					score.Category.String(),
					strconv.Itoa(score.Keyword),
					strconv.Itoa(score.Site),
					strconv.Itoa(score.Total()),
					strings.Join(score.Matched, ", "),
				})
			}
			fmt.Fprintf(out, "Category: %s\n", result.Category)
			if result.Host != "" {
				fmt.Fprintf(out, "Host: %s\n", result.Host)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Keywords", "Site", "Total", "Matched"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
				shouldColorize(out),
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Page title")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "File containing the page body text")
	return cmd
}

type progressView struct {
	URL      string           `json:"url"`
	Category content.Category `json:"category,omitempty"`
	Kind     string           `json:"kind"`
	Progress content.Progress `json:"progress"`
}

func newProgressCommand(ctx *commandContext) *cobra.Command {
	var title string
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "progress <url>",
		Short: "Extract the chapter or episode number of a page",
		Long: `Extract the reading position from a page URL and title. With --category the
category-specific patterns are used; without it a shorter category-agnostic
list decides between chapter and episode from the matched text.`,
		Args:        cobra.ExactArgs(1),
		Annotations: offlineAnnotations,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := progressView{URL: args[0]}
			if strings.TrimSpace(categoryFlag) != "" {
				category, err := content.ParseCategory(categoryFlag)
				if err != nil {
					return services.Wrap(services.ErrValidation, "cli", "progress", "", err)
				}
				view.Category = category
				view.Progress = extract.Progress(args[0], title, category)
			} else {
				view.Progress = extract.ProgressSimple(args[0], title)
			}
			view.Kind = view.Progress.Kind().String()

			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Progress.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Page title")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category (anime, manga, webcomic, novel)")
	return cmd
}

func newTitleCommand(ctx *commandContext) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:         "title <url>",
		Short:       "Derive a clean display title for a page",
		Args:        cobra.ExactArgs(1),
		Annotations: offlineAnnotations,
		RunE: func(cmd *cobra.Command, args []string) error {
			clean := extract.Title(title, args[0])
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]string{"url": args[0], "title": clean})
			}
			fmt.Fprintln(cmd.OutOrStdout(), clean)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Page title")
	return cmd
}

type compareView struct {
	Left       string  `json:"left"`
	Right      string  `json:"right"`
	Similarity float64 `json:"similarity"`
	Threshold  float64 `json:"threshold"`
	SameWork   bool    `json:"same_work"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <title> <title>",
		Short: "Score whether two titles name the same work",
		Long: `Print the similarity of two titles and whether it reaches the configured
matching.same_work_threshold.

Examples:
  readmark compare "The Great Adventure" "great adventure (Manga)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			threshold := cfg.Matching.SameWorkThreshold
			view := compareView{
				Left:       args[0],
				Right:      args[1],
				Similarity: textutil.Similarity(args[0], args[1]),
				Threshold:  threshold,
				SameWork:   textutil.IsSameWork(args[0], args[1], threshold),
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields([][2]string{
				{"Similarity", strconv.FormatFloat(view.Similarity, 'f', 3, 64)},
				{"Threshold", strconv.FormatFloat(view.Threshold, 'f', 2, 64)},
				{"Same work", strconv.FormatBool(view.SameWork)},
			}, shouldColorize(cmd.OutOrStdout())))
			return nil
		},
	}
	return cmd
}
