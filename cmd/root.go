// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL      string
	accessToken string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Storefront Service",
	Long:  `Storefront Service CLI for provisioning stores, domains and their setup.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "Storefront API base URL")
	rootCmd.PersistentFlags().StringVar(&accessToken, "access-token", os.Getenv("STOREFRONT_ACCESS_TOKEN"), "Bearer token, when empty one is requested with the token flags")
}
