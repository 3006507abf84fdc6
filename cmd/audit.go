package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"economy-manager/core/reconcile"
	"economy-manager/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncAudit     bool
	backfillAudit bool
	dryRunAudit   bool
	yesConfirm    bool
)

// auditCmd compares balances with the ledger and the latest snapshot.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit balances against the ledger (report + optionally sync/backfill)",
	Long: `Compares every account balance with the sum of its ledger entries and
with the latest snapshot.

The ledger is authoritative. --sync rewrites balances that disagree with
their ledger, --backfill writes opening entries for balances the ledger
never saw. Drift against the snapshot is only reported.

Examples:
  # Report only
  audit

  # Rewrite balances from the ledger (with interactive confirmation)
  audit --sync

  # Backfill and sync without prompting
  audit --backfill --sync --yes`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&syncAudit, "sync", false, "Rewrite balances from their ledger sums")
	auditCmd.Flags().BoolVar(&backfillAudit, "backfill", false, "Write opening ledger entries for balances without any")
	auditCmd.Flags().BoolVar(&dryRunAudit, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	auditCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm mutations (non-interactive)")

	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	l := rt.logger
	defer l.Sync()

	f := rt.buildFeatures(nil)

	// Plans are built and applied in one run, so nothing is cached between them.
	spec := &reconcile.Spec{
		Adapter: audit.NewAdapter(rt.db, f.economy.Service().Ledger(), f.snapshots),
	}

	opts := reconcile.ReconcileOptions{
		DoSync:     syncAudit,
		DoBackfill: backfillAudit,
		DryRun:     dryRunAudit,
	}

	l.Info("Planning audit...")
	plan, err := reconcile.ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return fmt.Errorf("failed to plan audit: %w", err)
	}

	printAuditReport(l, plan)

	if !syncAudit && !backfillAudit {
		l.Info("No actions requested. Use --sync to rewrite balances or --backfill to seed the ledger.")
		return nil
	}
	if dryRunAudit {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("No actions required based on current flags.")
		return nil
	}

	if !confirmMutation() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := reconcile.ApplyPlan(ctx, spec, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan after %d actions: %w", executed, err)
	}
	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printAuditReport logs the plan summary and a sample of its actions.
func printAuditReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Audit report",
		zap.Int("accounts", s.TotalItems),
		zap.Int("missing_db", s.MissingDB),
		zap.Int("missing_ledger", s.MissingLedger),
		zap.Int("missing_snapshot", s.MissingSnapshot),
		zap.Int("mismatches", s.Mismatches),
		zap.Int("drifted", s.Drifted),
	)

	for _, r := range plan.Results {
		if len(r.Mismatch) > 0 {
			l.Warn("Ledger mismatch", zap.String("account", r.ID), zap.Strings("fields", r.Mismatch))
		}
	}

	if len(plan.Actions) == 0 {
		return
	}
	l.Info("Planned actions",
		zap.Int("sync_actions", s.SyncActions),
		zap.Int("backfill_actions", s.BackfillActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmMutation prompts the user for confirmation or uses the --yes flag.
func confirmMutation() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm changes: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
