package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"propmeta/internal/app"
)

type extractOptions struct {
	Domain  string
	Types   string
	Targets []string
	Output  string
}

func newExtractCommand() *cobra.Command {
	opts := extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract property metadata and diagnostics for task types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Domain, "domain", "", "Domain config path")
	cmd.Flags().StringVar(&opts.Types, "types", "", "Type set path")
	cmd.Flags().StringSliceVar(&opts.Targets, "type", nil, "Target type names (default: every type in the set)")
	cmd.Flags().StringVar(&opts.Output, "output", "out", "Output directory")
	_ = viper.BindPFlag("domain", cmd.Flags().Lookup("domain"))
	_ = viper.BindPFlag("types", cmd.Flags().Lookup("types"))
	_ = viper.BindPFlag("targets", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runExtract(ctx context.Context, cmd *cobra.Command, opts extractOptions) error {
	service := newAppService()
	result, err := service.Extract(ctx, app.ExtractRequest{
		DomainPath: resolveString(cmd, opts.Domain, "domain", "domain"),
		TypesPath:  resolveString(cmd, opts.Types, "types", "types"),
		Targets:    resolveStrings(cmd, opts.Targets, "targets", "type"),
		OutputDir:  resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("extracted %d types: %d properties, %d diagnostics -> %s\n",
		result.TypeCount, result.PropertyCount, result.DiagnosticCount, result.OutputDir)
	return nil
}
