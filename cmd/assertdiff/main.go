// Command assertdiff compares two files the way a failed test assertion would show them.
//
// Usage:
//
//	assertdiff [flags] ACTUAL EXPECTED
//	assertdiff serve [flags] ACTUAL EXPECTED
//
// The exit status is 0 if the files are equal, 1 if they differ and 2 if an error occurred.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"znkr.io/assertdiff/render"
)

// errDifferent signals that the inputs differ. It's not an error for the user, only for the exit
// status.
var errDifferent = errors.New("inputs differ")

var opts options

var rootCmd = &cobra.Command{
	Use:           "assertdiff [flags] ACTUAL EXPECTED",
	Short:         "Show the difference between an actual and an expected value",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInputs(cmd.InOrStdin(), args[0], args[1])
		if err != nil {
			return err
		}

		lines, err := opts.diff(in)
		if err != nil {
			return err
		}

		if opts.htmlFile != "" {
			if err := writeReport(opts.htmlFile, in, lines, opts); err != nil {
				return err
			}
		}

		if isEqual(lines) {
			return nil
		}
		err = render.Terminal(cmd.OutOrStdout(), lines, render.TerminalOptions{
			NoColor: opts.noColor || color.NoColor,
		})
		if err != nil {
			return err
		}
		return errDifferent
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&opts.verbatim, "verbatim", false, "don't escape invisible characters")
	pf.BoolVar(&opts.noWordDiff, "no-word-diff", false, "don't highlight changed words within changed lines")
	pf.BoolVar(&opts.indentHeuristic, "indent-heuristic", false, "align changed blocks with the indentation of the surrounding text")
	pf.IntVar(&opts.maxCost, "max-cost", -1, "give up if more than this many lines or words change (negative means unlimited)")
	pf.StringVar(&opts.lang, "lang", "", "language for syntax highlighting in HTML reports (default: derived from EXPECTED)")
	pf.StringVar(&opts.message, "message", "", "Markdown message shown above the diff in HTML reports")
	pf.BoolVar(&opts.minify, "minify", false, "minify HTML reports")

	f := rootCmd.Flags()
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.StringVar(&opts.htmlFile, "html", "", "also write an HTML report to `file`")

	rootCmd.AddCommand(serveCmd)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	switch err := rootCmd.Execute(); {
	case err == nil:
	case errors.Is(err, errDifferent):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
