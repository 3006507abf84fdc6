package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd is the parent command for admin shop catalog files.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Import or export the admin shop catalog as YAML",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the shops named in a YAML catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		result, err := rt.buildFeatures(nil).shop.Service().ImportCatalog(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("failed to import catalog: %w", err)
		}
		rt.logger.Info("Catalog import finished",
			zap.String("file", args[0]),
			zap.Int("shops", result.Shops),
			zap.Int("items", result.Items))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write every admin shop as YAML (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		data, err := rt.buildFeatures(nil).shop.Service().ExportCatalog(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to export catalog: %w", err)
		}

		if len(args) == 0 {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return fmt.Errorf("failed to write catalog: %w", err)
		}
		rt.logger.Info("Catalog exported", zap.String("file", args[0]))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd, catalogExportCmd)
	RootCmd.AddCommand(catalogCmd)
}
