// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/encounter-builder/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "encounter-builder",
	Short: "Encounter Builder gRPC Server",
	Long: `Encounter Builder keeps ally and opponent rosters for a tabletop encounter and rates
its difficulty against the party's XP budget.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
