package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "robohubctl",
	Short: "RoboHub platform control tool",
	Long:  `robohubctl manages the RoboHub robotics platform: run the API server, manage the database schema, and issue access tokens.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
