package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visionpay/fieldops/internal/view"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Refresh and print the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := initSession()
		if err != nil {
			return err
		}

		if err := sess.Syncer.Refresh(cmd.Context()); err != nil {
			return err
		}

		model := view.Reconcile(sess.Store, sess.Panels, sess.Settings)
		printDashboard(cmd, model)
		return nil
	},
}

func printDashboard(cmd *cobra.Command, m view.Model) {
	if m.HaveStats {
		cmd.Printf("Members: %d  Paid today: %d  Overdue: %d  Collected: %s  Rate: %.0f%%\n",
			m.Stats.TotalMembers, m.Stats.PaidToday, m.Stats.OverdueMembers,
			view.FormatKES(m.Stats.TotalCollected), m.Stats.CollectionRate)
	}

	cmd.Printf("\nOfficers (%d):\n", len(m.Officers))
	for _, o := range m.Officers {
		cmd.Printf("  %3d  %-24s assigned %3d  collected %3d  (%d%% done)\n",
			o.ID, o.Name, o.MembersAssigned, o.CollectionsToday, o.CompletionPct)
	}

	cmd.Printf("\nMembers (%d):\n", len(m.Members))
	for _, mem := range m.Members {
		cmd.Printf("  %3d  %-24s %-12s %-8s officer: %s\n",
			mem.ID, mem.Name, mem.AmountDisplay, mem.PaymentStatus, mem.OfficerName)
	}

	if len(m.ZoneAnalysis) > 0 {
		cmd.Println("\nRisk zones:")
		for _, z := range m.ZoneAnalysis {
			cmd.Printf("  %-20s %-7s %5.1f%% overdue, %d members: %s\n",
				z.ZoneName, z.RiskLevel, z.OverdueRate, z.MembersCount, z.Advice)
		}
	}

	if m.Insights != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nInsights: %s\n", m.Insights)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
