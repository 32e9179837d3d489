package main

import (
	"github.com/spf13/cobra"

	"github.com/visionpay/fieldops/internal/forms"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage members",
}

var memberDraft forms.MemberDraft

var memberAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a member and re-run proximity assignment",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := initSession()
		if err != nil {
			return err
		}

		sess.Drafts.SetMember(memberDraft)
		return sess.Workflows.AddMember(cmd.Context())
	},
}

func init() {
	memberAddCmd.Flags().StringVar(&memberDraft.ID, "id", "", "member id")
	memberAddCmd.Flags().StringVar(&memberDraft.Name, "name", "", "member name")
	memberAddCmd.Flags().StringVar(&memberDraft.Latitude, "lat", "", "latitude")
	memberAddCmd.Flags().StringVar(&memberDraft.Longitude, "lng", "", "longitude")
	memberAddCmd.Flags().StringVar(&memberDraft.Amount, "amount", "", "amount owed (KES)")
	memberAddCmd.Flags().StringVar(&memberDraft.PaymentStatus, "status", "", "payment status (default pending)")
	memberAddCmd.Flags().StringVar(&memberDraft.OfficerID, "officer", "", "officer id (default unassigned)")
	memberAddCmd.Flags().StringVar(&memberDraft.PaymentDate, "date", "", "payment date")

	memberCmd.AddCommand(memberAddCmd)
	rootCmd.AddCommand(memberCmd)
}
