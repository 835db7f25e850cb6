package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var restSeconds int

// restCmd is a foreground rest-timer countdown. It rings the terminal
// bell when the timer reaches zero.
var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Run a rest-timer countdown (defaults to the settings value)",
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds := restSeconds
		if !cmd.Flags().Changed("seconds") {
			_, state, err := loadState()
			if err != nil {
				return err
			}
			seconds = state.Settings.RestTimerSeconds
		}
		if seconds <= 0 {
			return fmt.Errorf("Rest duration must be positive")
		}

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		for remaining := seconds; remaining > 0; remaining-- {
			fmt.Printf("\r  Resting: %s  ", green(fmt.Sprintf("%d:%02d", remaining/60, remaining%60)))
			time.Sleep(time.Second)
		}
		fmt.Printf("\r  Resting: %s  \n", green("0:00"))
		fmt.Print("\a") // terminal bell
		fmt.Println("⏰ Rest over, back to work")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restCmd)
	restCmd.Flags().IntVarP(&restSeconds, "seconds", "s", 0, "Override the rest duration in seconds")
}
