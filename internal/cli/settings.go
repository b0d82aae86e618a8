package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func settingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change platform settings",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Client.ListSettings(cmd.Context())
			if err != nil {
				return err
			}
			table := newTable([]string{"Key", "Value", "Description"})
			for _, s := range settings {
				table.Append([]string{s.Key, s.Value, s.Description})
			}
			table.Render()
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a setting value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Client.UpdateSetting(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Printf("%s = %s\n", s.Key, s.Value)
			return nil
		},
	}

	cmd.AddCommand(list, set)
	return cmd
}

func analyticsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Platform analytics",
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show headline metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Client.GetAnalyticsSummary(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("users: %d (%d active)\n", s.TotalUsers, s.ActiveUsers)
			cmd.Printf("generations: %d total, %d today\n", s.TotalGenerations, s.GenerationsToday)
			cmd.Printf("revenue: %.2f %s\n", s.Revenue, s.Currency)
			return nil
		},
	}

	var days int
	usage := &cobra.Command{
		Use:   "usage",
		Short: "Show per-day usage for the last N days",
		RunE: func(cmd *cobra.Command, args []string) error {
			to := time.Now()
			from := to.AddDate(0, 0, -days)
			points, err := app.Client.GetUsageSeries(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			table := newTable([]string{"Date", "Generations", "New users"})
			for _, p := range points {
				table.Append([]string{p.Date, strconv.Itoa(p.Generations), strconv.Itoa(p.NewUsers)})
			}
			table.Render()
			return nil
		},
	}
	usage.Flags().IntVar(&days, "days", 30, "Number of days to include")

	cmd.AddCommand(summary, usage)
	return cmd
}
