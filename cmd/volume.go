package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/analytics"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Show total completed volume per training date",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadState()
		if err != nil {
			return err
		}

		points := analytics.VolumeByDate(state.History)
		if len(points) == 0 {
			fmt.Println("No completed workouts yet")
			return nil
		}

		printBoxedHeader("VOLUME")
		header := color.New(color.FgGreen, color.Bold).Sprintf("%-8s %10s", "Date", "Volume")
		fmt.Println(header)
		for _, p := range points {
			fmt.Printf("%-8s %8dkg\n", p.Date, p.Volume)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(volumeCmd)
}
