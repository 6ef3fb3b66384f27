package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/utils/cadence"
	"github.com/spf13/cobra"
)

func newCadenceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cadence",
		Short: "Inspect allocation cadences without a database",
	}
	cmd.AddCommand(newCadenceDescribeCommand())
	return cmd
}

func newCadenceDescribeCommand() *cobra.Command {
	var (
		cadenceType string
		nextDate    string
		count       int
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Normalize a cadence and print its upcoming allocation dates",
		Example: `  pf_backend cadence describe --cadence twice_monthly --first-day 25 --second-day 10
  pf_backend cadence describe --cadence weekly --weekday 5 --next-date 2024-03-08 --count 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			input := domain.CadenceInput{
				Cadence:            domain.CadenceType(cadenceType),
				NextAllocationDate: nextDate,
			}
			if input.NextAllocationDate == "" {
				input.NextAllocationDate = time.Now().Format(domain.DateLayout)
			}
			var err error
			if input.WeeklyDayOfWeek, err = intFlag(cmd, "weekday"); err != nil {
				return err
			}
			if input.TwiceMonthlyFirstDay, err = intFlag(cmd, "first-day"); err != nil {
				return err
			}
			if input.TwiceMonthlySecondDay, err = intFlag(cmd, "second-day"); err != nil {
				return err
			}
			if input.MonthlyDay, err = intFlag(cmd, "monthly-day"); err != nil {
				return err
			}

			settings, err := cadence.Normalize(input)
			if err != nil {
				return err
			}
			runs, err := cadence.UpcomingRuns(settings, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cadence.Describe(settings))
			for _, run := range runs {
				fmt.Fprintf(out, "  %s  %s\n", run.Format(domain.DateLayout), run.Weekday())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cadenceType, "cadence", string(domain.CadenceMonthly), "weekly, twice_monthly or monthly")
	cmd.Flags().Int("weekday", 0, "weekly run day, 0 (Sunday) to 6 (Saturday)")
	cmd.Flags().Int("first-day", 0, "first twice monthly day")
	cmd.Flags().Int("second-day", 0, "second twice monthly day")
	cmd.Flags().Int("monthly-day", 0, "monthly run day")
	cmd.Flags().StringVar(&nextDate, "next-date", "", "next allocation date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVarP(&count, "count", "n", 4, "number of dates to list")
	return cmd
}

// intFlag returns nil for flags the caller did not set so defaults apply.
func intFlag(cmd *cobra.Command, name string) (*int, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
