package cmd

import (
	"fmt"

	"economy-manager/feature/snapshot"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var keepSnapshots int

// snapshotCmd is the parent command for snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Create, list and prune economy snapshots",
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Export the economy to the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, rt, err := snapshotService()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		info, err := svc.Create(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}
		fmt.Printf("Created %s (%s)\n", info.Name, humanize.Bytes(uint64(info.Size)))
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, rt, err := snapshotService()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		infos, err := svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list snapshots: %w", err)
		}
		if len(infos) == 0 {
			fmt.Println("No snapshots stored.")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%s  %-10s  %s\n", info.Name, humanize.Bytes(uint64(info.Size)), humanize.Time(info.CreatedAt))
		}
		return nil
	},
}

var snapshotPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, rt, err := snapshotService()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		keep := keepSnapshots
		if keep == 0 {
			keep = rt.cfg.Snapshot.Keep
		}
		removed, err := svc.Prune(cmd.Context(), keep)
		if err != nil {
			return fmt.Errorf("failed to prune snapshots: %w", err)
		}
		rt.logger.Info("Snapshots pruned", zap.Int("removed", removed), zap.Int("kept", keep))
		return nil
	},
}

func init() {
	snapshotPruneCmd.Flags().IntVar(&keepSnapshots, "keep", 0, "Snapshots to keep (defaults to SNAPSHOT_KEEP)")

	snapshotCmd.AddCommand(snapshotCreateCmd, snapshotListCmd, snapshotPruneCmd)
	RootCmd.AddCommand(snapshotCmd)
}

func snapshotService() (*snapshot.Service, *deps, error) {
	rt, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	if rt.store == nil {
		return nil, nil, fmt.Errorf("storage is not configured")
	}
	return snapshot.NewService(rt.db, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Snapshot, rt.logger), rt, nil
}
