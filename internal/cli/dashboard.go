package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"campusAdmin/internal/modules/dashboard/domain"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard headline counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.dashboard.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
}

func newChartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chart <key>",
		Short: "Show one dashboard chart series",
		Long: fmt.Sprintf("Available keys: %s, %s, %s, %s",
			domain.ChartEnrollmentTrends, domain.ChartClassesByDept,
			domain.ChartUserDistribution, domain.ChartCapacityStatus),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch args[0] {
			case domain.ChartEnrollmentTrends:
				points, err := a.dashboard.EnrollmentTrends(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, points)
			case domain.ChartClassesByDept:
				counts, err := a.dashboard.ClassesByDepartment(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, counts)
			case domain.ChartUserDistribution:
				counts, err := a.dashboard.UserDistribution(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, counts)
			case domain.ChartCapacityStatus:
				points, err := a.dashboard.CapacityStatus(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, points)
			default:
				return fmt.Errorf("unknown chart %q", args[0])
			}
		},
	}
}
