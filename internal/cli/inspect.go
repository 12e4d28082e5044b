package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"propmeta/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a previously written extraction report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("types: %d\n", result.TypeCount)
	fmt.Printf("properties: %d\n", result.PropertyCount)
	for _, summary := range result.Categories {
		fmt.Printf("- %s: %d\n", summary.Category, summary.Count)
	}
	fmt.Printf("warnings: %d\n", result.WarningCount)
	return nil
}
