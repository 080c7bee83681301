package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-projector/internal/config"
	"github.com/rpgo/investment-projector/internal/domain"
)

func newAssetsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the asset classes and their return assumptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd, opts)
			if err != nil {
				return err
			}
			report := &domain.Report{}
			for _, name := range engine.Catalog.Names() {
				asset, _ := engine.Catalog.Lookup(name)
				report.Assets = append(report.Assets, domain.AssetReport{Asset: asset})
			}
			return emit(cmd, opts, report)
		},
	}
}

func newInitConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <file>",
		Short: "Write the built-in asset catalog to a YAML file for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewInputParser().SaveToFile(args[0], config.DefaultConfiguration()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Asset catalog written to %s\n", args[0])
			return nil
		},
	}
}
