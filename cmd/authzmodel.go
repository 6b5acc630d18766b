// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/storefront-service/internal/authorization"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/openfga"
	"github.com/canonical/storefront-service/internal/tracing"
)

const (
	storeName = "storefront-service"

	storeIDKey = "OPENFGA_STORE_ID"
	modelIDKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type authzModelIDs struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
}

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Write the tenant authorization model to openfga",
	Long: `Write the tenant authorization model to openfga, creating the store when no id is given.
The resulting ids can be recorded in a ConfigMap so the serve deployment picks them up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		resource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfig, _ := cmd.Flags().GetString("kubeconfig")

		cmd.SilenceUsage = true

		ids, err := writeAuthzModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if resource != "" {
			client, err := kubeClient(kubeconfig)
			if err != nil {
				return err
			}
			if err := recordAuthzModel(cmd.Context(), client, resource, ids); err != nil {
				return fmt.Errorf("failed to update configmap: %w", err)
			}
			cmd.PrintErrf("ConfigMap %s updated\n", resource)
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(ids)
		}

		if storeID == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Created store: %s\n", ids.StoreID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created model: %s\n", ids.ModelID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to write the model to, created when empty")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Log openfga requests")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "ConfigMap receiving the store and model ids, as namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to a kubeconfig, in-cluster config is tried first when empty")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func writeAuthzModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (*authzModelIDs, error) {
	client, err := openfga.NewClient(
		openfga.NewConfig(apiURL, storeID, apiToken, "", verbose, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(storeName), logging.NewNoopLogger()),
	)
	if err != nil {
		return nil, err
	}

	if storeID == "" {
		if storeID, err = client.CreateStore(ctx, storeName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		if err := client.SetStoreID(storeID); err != nil {
			return nil, fmt.Errorf("failed to select store %s: %w", storeID, err)
		}
	}

	modelID, err := client.WriteModel(ctx, authorization.NewAuthorizationModelProvider("v0").GetModel())
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return &authzModelIDs{StoreID: storeID, ModelID: modelID}, nil
}

func kubeClient(kubeconfig string) (kubernetes.Interface, error) {
	var (
		config *rest.Config
		err    error
	)

	if kubeconfig != "" {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	} else if config, err = rest.InClusterConfig(); err != nil {
		config, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			clientcmd.NewDefaultClientConfigLoadingRules(),
			&clientcmd.ConfigOverrides{},
		).ClientConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return clientset, nil
}

// recordAuthzModel upserts the ids into the namespace/name ConfigMap, other
// keys of an existing ConfigMap are kept.
func recordAuthzModel(ctx context.Context, client kubernetes.Interface, resource string, ids *authzModelIDs) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource %q, expected namespace/name", resource)
	}

	configMaps := client.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		_, err = configMaps.Create(ctx, &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data:       map[string]string{storeIDKey: ids.StoreID, modelIDKey: ids.ModelID},
		}, metav1.CreateOptions{})
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", resource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string, 2)
	}
	cm.Data[storeIDKey] = ids.StoreID
	cm.Data[modelIDKey] = ids.ModelID

	_, err = configMaps.Update(ctx, cm, metav1.UpdateOptions{})
	return err
}
