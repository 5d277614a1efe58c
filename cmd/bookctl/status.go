package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordclinic/bookctl/pkg/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		health, err := client.Health(cmd.Context())
		if err != nil {
			var netErr *api.NetworkError
			if errors.As(err, &netErr) {
				return fmt.Errorf("backend unreachable at %s: %v", cfg.APIURL, netErr.Err)
			}
			return err
		}

		fmt.Printf("✓ Backend %s: %s\n", health.Status, health.Message)
		fmt.Printf("  URL: %s\n", cfg.APIURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
