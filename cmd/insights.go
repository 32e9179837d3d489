package main

import (
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate an AI collection summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := initSession()
		if err != nil {
			return err
		}

		// The fallback analysis is still stored and printed on failure.
		wErr := sess.Workflows.GenerateInsights(cmd.Context())
		if text := sess.Store.Insights(); text != "" {
			cmd.Println(text)
		}
		return wErr
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
