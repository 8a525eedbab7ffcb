package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "split [text...]",
		Short: "Print each word on its own line",
		Long:  "Split text into words and print one word per line. Text is read from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.wordTokenizer()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			found := tk.Split(text)
			ctx.logger().Debug("split text", slog.Int("bytes", len(text)), slog.Int("words", len(found)))

			out := cmd.OutOrStdout()
			for _, w := range found {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
}

func newCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count [text...]",
		Short: "Print the number of words",
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.wordTokenizer()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tk.Count(text))
			return nil
		},
	}
}

func newCapitalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "capitalize [text...]",
		Aliases: []string{"cap"},
		Short:   "Uppercase the first letter of every word",
		Long:    "Uppercase the first letter of every word and leave everything else untouched. Text is read from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.wordTokenizer()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			result := tk.Capitalize(text)
			ctx.logger().Debug("capitalized text", slog.Int("bytes", len(text)))

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				// stdin keeps its own line endings
				fmt.Fprint(out, result)
				return nil
			}
			fmt.Fprintln(out, result)
			return nil
		},
	}
}

// readText joins the arguments with spaces, or reads all of stdin when there
// are no arguments.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
