package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"propmeta/internal/app"
)

type validateOptions struct {
	Domain  string
	Types   string
	Targets []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the domain config and type set without writing output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Domain, "domain", "", "Domain config path")
	cmd.Flags().StringVar(&opts.Types, "types", "", "Type set path")
	cmd.Flags().StringSliceVar(&opts.Targets, "type", nil, "Target type names (default: every type in the set)")
	_ = viper.BindPFlag("domain", cmd.Flags().Lookup("domain"))
	_ = viper.BindPFlag("types", cmd.Flags().Lookup("types"))
	_ = viper.BindPFlag("targets", cmd.Flags().Lookup("type"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		DomainPath: resolveString(cmd, opts.Domain, "domain", "domain"),
		TypesPath:  resolveString(cmd, opts.Types, "types", "types"),
		Targets:    resolveStrings(cmd, opts.Targets, "targets", "type"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated %d types against domain %q\n", result.TypeCount, result.DomainLabel)
	return nil
}
