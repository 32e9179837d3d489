package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/visionpay/fieldops/internal/view"
)

var routeCmd = &cobra.Command{
	Use:   "route <officer-id>",
	Short: "Print the optimized visitation route for an officer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		officerID, err := strconv.Atoi(args[0])
		if err != nil {
			return eris.Errorf("officer id %q is not an integer", args[0])
		}

		sess, err := initSession()
		if err != nil {
			return err
		}

		if err := sess.Workflows.ViewRoute(cmd.Context(), officerID); err != nil {
			return err
		}

		model := view.Reconcile(sess.Store, sess.Panels, sess.Settings)
		if model.Route == nil {
			cmd.Println("no route")
			return nil
		}

		cmd.Printf("Route for officer %d: %d stops, %.2f km, ~%.1f h\n",
			model.Route.OfficerID, model.Route.TotalMembers,
			model.Route.TotalDistanceKM, model.Route.EstimatedTimeHours)
		for i, stop := range model.Route.Stops {
			cmd.Printf("  %2d. %-24s %+.4f, %+.4f  (%.2f km)\n",
				i+1, stop.Member.Name, stop.Member.Location.Lat, stop.Member.Location.Lng, stop.DistanceKM)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
}
