package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Record member payments",
}

var paymentRecordCmd = &cobra.Command{
	Use:   "record <member-id>",
	Short: "Record a payment for a pending member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		memberID, err := strconv.Atoi(args[0])
		if err != nil {
			return eris.Errorf("member id %q is not an integer", args[0])
		}

		sess, err := initSession()
		if err != nil {
			return err
		}

		// Payment eligibility is checked against the cached member list.
		if err := sess.Syncer.Refresh(cmd.Context()); err != nil {
			return err
		}
		return sess.Workflows.RecordPayment(cmd.Context(), memberID)
	},
}

func init() {
	paymentCmd.AddCommand(paymentRecordCmd)
	rootCmd.AddCommand(paymentCmd)
}
