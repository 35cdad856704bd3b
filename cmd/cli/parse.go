package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/core"
	"github.com/chkwon/redpen-app/internal/trigger"
)

var (
	parsePhrases  []string
	parseLanguage string

	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

var parseCmd = &cobra.Command{
	Use:   "parse <comment text>",
	Short: "Shows how a comment body would be parsed by the webhook",
	Long:  `Runs the trigger scanner and option parser over the given text, exactly as the webhook handler would, and prints the result. Useful for checking phrase lists and option spellings without sending a webhook.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		body := strings.Join(args, " ")

		phrases := parsePhrases
		if len(phrases) == 0 {
			phrases = config.DefaultTriggerPhrases
		}
		defaultLang := parseLanguage
		if defaultLang == "" {
			defaultLang = core.DefaultLanguage
		}

		match, found := trigger.Find(body, phrases)
		if !found {
			warnColor.Println("no trigger phrase found")
			dimColor.Printf("phrases: %s\n", strings.Join(phrases, ", "))
			return nil
		}

		opts := trigger.ParseOptions(body, match, defaultLang)
		successColor.Printf("trigger matched: %q\n", body[match.Start:match.End()])
		lang, _ := core.LookupLanguage(opts.Language)
		dimColor.Printf("  mode:     %s\n", opts.Mode)
		dimColor.Printf("  language: %s (%s)\n", opts.Language, lang.Name)
		dimColor.Printf("  commits:  %d\n", opts.Commits)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	parseCmd.Flags().StringSliceVar(&parsePhrases, "phrase", nil, "trigger phrase (repeatable, ordered; defaults to the built-in list)")
	parseCmd.Flags().StringVar(&parseLanguage, "default-language", "", "default language code")
	rootCmd.AddCommand(parseCmd)
}
