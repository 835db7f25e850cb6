package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hypertrophy",
	Short: "CLI hypertrophy training planner and workout logger",
}

func Execute() error {
	return rootCmd.Execute()
}
