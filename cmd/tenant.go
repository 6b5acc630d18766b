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
	"github.com/canonical/storefront-service/pkg/checkout"
	"github.com/canonical/storefront-service/pkg/provisioning"
	"github.com/canonical/storefront-service/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Provision a new store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		plan, _ := cmd.Flags().GetString("plan")
		owner, _ := cmd.Flags().GetString("owner")
		seed, _ := cmd.Flags().GetBool("seed-content")

		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		t := new(types.Tenant)
		msg, err := client.do(cmd.Context(), http.MethodPost, "/api/v0/tenants", provisioning.Request{
			Name:        args[0],
			Domain:      domain,
			Plan:        types.Plan(plan),
			OwnerUserID: owner,
			SeedContent: seed,
		}, t)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("%s (ID: %s)\n", msg, t.ID)
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants, your own or every tenant with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		pageToken, _ := cmd.Flags().GetString("page-token")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var tenants []*types.Tenant
		next := ""

		if all {
			q := url.Values{}
			q.Set("page_token", pageToken)
			q.Set("page_size", fmt.Sprint(pageSize))

			page := new(tenant.Page)
			if _, err := client.do(cmd.Context(), http.MethodGet, "/api/v0/admin/tenants?"+q.Encode(), nil, page); err != nil {
				return fmt.Errorf("failed to list tenants: %w", err)
			}
			tenants, next = page.Tenants, page.NextPageToken
		} else if _, err := client.do(cmd.Context(), http.MethodGet, "/api/v0/tenants", nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tHOST\tPLAN\tSTATUS\tCREATED AT")
		for _, t := range tenants {
			host := ""
			if t.PrimaryHost != nil {
				host = *t.PrimaryHost
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, host, t.Plan, t.Status, t.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()

		if next != "" {
			fmt.Printf("\nNext page token: %s\n", next)
		}
		return nil
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [tenant-id]",
	Short: "Show a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		t := new(types.Tenant)
		if _, err := client.do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+url.PathEscape(args[0]), nil, t); err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "ID:\t%s\n", t.ID)
		fmt.Fprintf(w, "Name:\t%s\n", t.Name)
		if t.PrimaryHost != nil {
			fmt.Fprintf(w, "Primary host:\t%s\n", *t.PrimaryHost)
		}
		for _, h := range t.ExtraHosts {
			fmt.Fprintf(w, "Extra host:\t%s\n", h)
		}
		fmt.Fprintf(w, "Plan:\t%s\n", t.Plan)
		fmt.Fprintf(w, "Status:\t%s\n", t.Status)
		fmt.Fprintf(w, "Owner:\t%s\n", t.OwnerUserID)
		w.Flush()

		return nil
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "members [tenant-id]",
	Short: "List the members of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var users []*types.TenantUser
		if _, err := client.do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+url.PathEscape(args[0])+"/members", nil, &users); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER ID\tEMAIL\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.UserID, u.Email, u.Role)
		}
		w.Flush()
		return nil
	},
}

var setTenantStatusCmd = &cobra.Command{
	Use:       "status [tenant-id] [pending|active|suspended|cancelled]",
	Short:     "Change a tenant status (operators only)",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"pending", "active", "suspended", "cancelled"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		msg, err := client.do(cmd.Context(), http.MethodPatch, "/api/v0/admin/tenants/"+url.PathEscape(args[0])+"/status",
			tenant.StatusRequest{Status: types.TenantStatus(args[1])}, nil)
		if err != nil {
			return fmt.Errorf("failed to change tenant status: %w", err)
		}

		fmt.Println(msg)
		return nil
	},
}

var subscribeTenantCmd = &cobra.Command{
	Use:   "subscribe [tenant-id]",
	Short: "Start the paid plan checkout for a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period, _ := cmd.Flags().GetString("period")

		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		session := new(checkout.Session)
		_, err = client.do(cmd.Context(), http.MethodPost, "/api/v0/tenants/"+url.PathEscape(args[0])+"/subscription",
			checkout.Request{Period: types.BillingPeriod(period)}, session)
		if err != nil {
			return fmt.Errorf("failed to start checkout: %w", err)
		}

		fmt.Printf("Subscription %s (%s, %.2f)\n", session.SubscriptionID, session.Period, session.Amount)
		fmt.Printf("Approve at: %s\n", session.InitPoint)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(getTenantCmd)
	tenantCmd.AddCommand(listMembersCmd)
	tenantCmd.AddCommand(setTenantStatusCmd)
	tenantCmd.AddCommand(subscribeTenantCmd)

	createTenantCmd.Flags().String("domain", "", "Primary host of the store")
	createTenantCmd.Flags().String("plan", string(types.PlanFree), "Plan (free, basic or premium)")
	createTenantCmd.Flags().String("owner", "", "Owner user ID, operators only")
	createTenantCmd.Flags().Bool("seed-content", true, "Create the default storefront content")

	listTenantsCmd.Flags().Bool("all", false, "List every tenant (operators only)")
	listTenantsCmd.Flags().String("page-token", "", "Page token from a previous --all listing")
	listTenantsCmd.Flags().Int("page-size", 50, "Tenants per page with --all")

	subscribeTenantCmd.Flags().String("period", string(types.BillingMonthly), "Billing period (monthly or yearly)")
}
