package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/esit-pro/service-desk/internal/interfaces/cli/seed"
	"github.com/esit-pro/service-desk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "servicedesk",
		Short: "Service desk API for client messages and service requests",
		Long:  `A service desk backend exposing client message triage, conversation threads, and service request management over HTTP.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
