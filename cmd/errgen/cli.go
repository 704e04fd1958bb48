package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/tunnelcli/internal/gen"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "errgen",
		Short:         "Generate the AnyError umbrella from a leaf registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd(), catalogCmd())
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

func generateCmd() *cobra.Command {
	var registryPath, outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the umbrella source for a registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(registryPath, outPath)
		},
	}
	cmd.Flags().StringVar(&registryPath, "registry", "registry.yaml", "Path to the leaf registry")
	cmd.Flags().StringVar(&outPath, "out", "anyerror_gen.go", "Path of the generated file")

	return cmd
}

func runGenerate(registryPath, outPath string) error {
	log.Debug().Str("registry", registryPath).Msg("Loading registry")
	reg, err := gen.LoadRegistry(registryPath)
	if err != nil {
		return err
	}

	src, err := gen.Generate(reg, registryPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	log.Info().Int("leaves", len(reg.Leaves)).Str("out", outPath).Msg("Generated umbrella")
	return nil
}

func catalogCmd() *cobra.Command {
	var registryPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the registered leaves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := gen.LoadRegistry(registryPath)
			if err != nil {
				return err
			}
			writeCatalog(cmd.OutOrStdout(), reg)
			return nil
		},
	}
	cmd.Flags().StringVar(&registryPath, "registry", "registry.yaml", "Path to the leaf registry")

	return cmd
}

func writeCatalog(w io.Writer, reg *gen.Registry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Leaf", "Code"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)

	for i, leaf := range reg.Leaves {
		code := leaf.Code
		if code == "" {
			code = "(method)"
		}
		table.Append([]string{fmt.Sprint(i + 1), leaf.Name, code})
	}
	table.Render()
}
