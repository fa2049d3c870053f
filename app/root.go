// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront-admin",
	Short: "storefront-admin is the backend service for the storefront",
	Long: `storefront-admin is the backend service for the storefront.
It serves the admin login flow, order and product management routes and
the public payment-provider configuration endpoints.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
