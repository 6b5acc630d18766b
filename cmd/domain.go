// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/pkg/domainpurchase"
	"github.com/canonical/storefront-service/pkg/provisioning"
	"github.com/canonical/storefront-service/pkg/setup"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Check, buy and set up domains",
}

var checkDomainCmd = &cobra.Command{
	Use:   "check [domain]",
	Short: "Check availability and price of a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		q := new(domainpurchase.Quote)
		msg, err := client.do(cmd.Context(), http.MethodGet, "/api/v0/domains/check?domain="+url.QueryEscape(args[0]), nil, q)
		if err != nil {
			return fmt.Errorf("failed to check domain: %w", err)
		}

		fmt.Println(msg)
		return nil
	},
}

var purchaseDomainCmd = &cobra.Command{
	Use:   "purchase [tenant-id] [domain]",
	Short: "Register a domain for a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return submitPurchase(cmd, "/api/v0/tenants/"+url.PathEscape(args[0])+"/domains",
			domainpurchase.PurchaseRequest{Domain: args[1]})
	},
}

var transferDomainCmd = &cobra.Command{
	Use:   "transfer [tenant-id] [domain]",
	Short: "Transfer a domain held elsewhere to a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		authCode, _ := cmd.Flags().GetString("auth-code")

		return submitPurchase(cmd, "/api/v0/tenants/"+url.PathEscape(args[0])+"/domains/transfer",
			domainpurchase.TransferRequest{Domain: args[1], AuthCode: authCode})
	},
}

var connectDomainCmd = &cobra.Command{
	Use:   "connect [tenant-id] [domain]",
	Short: "Attach a domain whose DNS the owner manages",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return submitPurchase(cmd, "/api/v0/tenants/"+url.PathEscape(args[0])+"/domains/connect",
			provisioning.ConnectDomainRequest{Domain: args[1]})
	},
}

func submitPurchase(cmd *cobra.Command, path string, body any) error {
	client, err := newAPIClient(cmd.Context())
	if err != nil {
		return err
	}

	p := new(types.DomainPurchase)
	msg, err := client.do(cmd.Context(), http.MethodPost, path, body, p)
	if err != nil {
		return fmt.Errorf("failed to submit domain: %w", err)
	}

	fmt.Printf("%s (ID: %s)\n", msg, p.ID)
	return nil
}

var listDomainsCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List the domain purchases of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var purchases []*types.DomainPurchase
		if _, err := client.do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+url.PathEscape(args[0])+"/domains", nil, &purchases); err != nil {
			return fmt.Errorf("failed to list domains: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tDOMAIN\tACTION\tSTATUS\tDNS\tCREATED AT")
		for _, p := range purchases {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n", p.ID, p.Domain, p.Action, p.Status, p.DNSVerified, p.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
		return nil
	},
}

var setupDomainCmd = &cobra.Command{
	Use:   "setup [purchase-id]",
	Short: "Run the setup of a purchased domain (operators only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		report := new(setup.Report)
		msg, err := client.do(cmd.Context(), http.MethodPost, "/api/v0/domains/"+url.PathEscape(args[0])+"/setup",
			setup.Options{ForceAll: force}, report)
		if err != nil {
			return fmt.Errorf("failed to run setup: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "STEP\tSTATUS\tMESSAGE")
		for _, s := range report.Steps {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Status, s.Message)
		}
		w.Flush()

		fmt.Printf("\n%s: %s\n", report.Domain, msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domainCmd)
	domainCmd.AddCommand(checkDomainCmd)
	domainCmd.AddCommand(purchaseDomainCmd)
	domainCmd.AddCommand(transferDomainCmd)
	domainCmd.AddCommand(connectDomainCmd)
	domainCmd.AddCommand(listDomainsCmd)
	domainCmd.AddCommand(setupDomainCmd)

	transferDomainCmd.Flags().String("auth-code", "", "Transfer authorization code from the current registrar")
	_ = transferDomainCmd.MarkFlagRequired("auth-code")

	setupDomainCmd.Flags().Bool("force", false, "Re-run every step, even the ones already satisfied")
}
