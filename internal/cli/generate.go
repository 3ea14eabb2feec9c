package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cran-recipes/internal/types"
)

type generateOptions struct {
	URL       string
	Version   string
	OutputDir string
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [url]",
		Short: "Resolve a forge-hosted R package into a conda recipe",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.URL = args[0]
			}
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.URL, "url", "", "Forge repository URL")
	cmd.Flags().StringVar(&opts.Version, "version", "", "Requested package version (default: latest tag)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "recipes", "Output directory")

	_ = viper.BindPFlag("url", cmd.Flags().Lookup("url"))
	_ = viper.BindPFlag("package_version", cmd.Flags().Lookup("version"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, types.Config{
		Kind:      types.SourceKindForge,
		URL:       resolveString(cmd, opts.URL, "url", "url"),
		Version:   resolveString(cmd, opts.Version, "package_version", "version"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("generated: %s %s -> %s\n", result.PackageName, result.Version, result.RecipePath)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) && viper.GetString(key) != "" {
		return viper.GetString(key)
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
