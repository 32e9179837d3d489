package main

import (
	"github.com/spf13/cobra"

	"github.com/visionpay/fieldops/internal/forms"
)

var officerCmd = &cobra.Command{
	Use:   "officer",
	Short: "Manage field officers",
}

var officerDraft forms.OfficerDraft

var officerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a field officer and re-run proximity assignment",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := initSession()
		if err != nil {
			return err
		}

		sess.Drafts.SetOfficer(officerDraft)
		return sess.Workflows.AddOfficer(cmd.Context())
	},
}

func init() {
	officerAddCmd.Flags().StringVar(&officerDraft.ID, "id", "", "officer id")
	officerAddCmd.Flags().StringVar(&officerDraft.Name, "name", "", "officer name")
	officerAddCmd.Flags().StringVar(&officerDraft.Latitude, "lat", "", "latitude")
	officerAddCmd.Flags().StringVar(&officerDraft.Longitude, "lng", "", "longitude")

	officerCmd.AddCommand(officerAddCmd)
	rootCmd.AddCommand(officerCmd)
}
