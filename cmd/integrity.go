package cmd

import (
	"fmt"

	"economy-manager/feature/integrity"
	"economy-manager/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd runs every integrity check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the snapshot bucket and database schema",
	Long:  `Checks that the snapshot bucket has its folder layout and that every table and column exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// structureCmd checks and optionally fixes the bucket layout.
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the snapshot folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// schemaCmd checks the database schema.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check that every table and column exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
}

func runIntegrityChecks(cmd *cobra.Command, runStructure, runSchema bool) error {
	ctx := cmd.Context()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	prefix := snapshot.NewService(rt.db, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Snapshot, logg).Prefix()
	svc := integrity.NewService(rt.store, rt.cfg.Storage.Bucket, []string{prefix}, rt.db, allModels(), logg)

	if runStructure && rt.store == nil && runSchema {
		logg.Warn("Storage unavailable, skipping structure check")
		runStructure = false
	}

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Fixing missing folders...")
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run 'integrity structure --fix' to create missing folders.")
		}
	}

	if runSchema {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Schema matches every model.", zap.Int("tables", len(report.Tables)))
			return nil
		}

		logg.Warn("Schema mismatches found")
		for table, tbl := range report.Tables {
			if tbl.Status == "ok" {
				continue
			}
			if tbl.Status == "missing" {
				logg.Warn("Missing table", zap.String("table", table))
				continue
			}
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection error", zap.String("error", e))
		}
		logg.Info("Run 'migrate' to create missing tables and columns.")
	}
	return nil
}
