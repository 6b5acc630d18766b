// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token using Client Credentials flow",
	Run: func(cmd *cobra.Command, args []string) {
		if clientID == "" || clientSecret == "" {
			log.Fatal("--client-id and --client-secret are required")
		}

		token, err := fetchToken(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(token)
	},
}

// fetchToken runs the client credentials flow, the token endpoint is
// discovered from the issuer when not given.
func fetchToken(ctx context.Context) (string, error) {
	endpoint := tokenURL
	if endpoint == "" {
		if issuerURL == "" {
			return "", fmt.Errorf("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return "", fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
		}
		endpoint = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     endpoint,
		Scopes:       scopes,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token.AccessToken, nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "Client ID")
	rootCmd.PersistentFlags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	rootCmd.PersistentFlags().StringVar(&tokenURL, "token-url", "", "Token URL")
	rootCmd.PersistentFlags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	rootCmd.PersistentFlags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
}
