package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "textgeo",
		Short:         "Word tokenizing and 2D geometry tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.setLogOutput(cmd.ErrOrStderr())
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path (TOML)")
	rootCmd.PersistentFlags().StringVar(&flags.language, "lang", "", "BCP 47 language tag used for uppercasing")
	rootCmd.PersistentFlags().StringVar(&flags.normalize, "normalize", "", "Unicode normalization form applied before scanning (nfc, nfd, nfkc, nfkd)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newSplitCommand(ctx))
	rootCmd.AddCommand(newCountCommand(ctx))
	rootCmd.AddCommand(newCapitalizeCommand(ctx))
	rootCmd.AddCommand(newRectCommand(ctx))
	rootCmd.AddCommand(newBBoxCommand(ctx))

	return rootCmd
}
