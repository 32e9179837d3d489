package main

import (
	"github.com/spf13/cobra"
)

var assignRadius int

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Auto-assign members to their nearest officer",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := initSession()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("radius") {
			sess.Settings.SetRadiusKM(assignRadius)
		}
		return sess.Workflows.AutoAssign(cmd.Context())
	},
}

func init() {
	assignCmd.Flags().IntVar(&assignRadius, "radius", 0, "assignment radius in km (default from config)")
	rootCmd.AddCommand(assignCmd)
}
