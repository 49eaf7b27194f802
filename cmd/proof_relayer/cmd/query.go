package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timewave-computer/proof-relayer/internal/webserver"
)

var serverURL string

const (
	UrlFlagName = "url"
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use: "query",
}

func init() {
	QueryCmd.PersistentFlags().StringVarP(&serverURL, UrlFlagName, "u", "http://localhost:9999", "server url")
	QueryCmd.AddCommand(healthCmd)
	RootCmd.AddCommand(QueryCmd)
}

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query the latest recorded health check",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := cmd.Flags().GetString(UrlFlagName)
		if err != nil {
			return err
		}

		client, err := webserver.NewStatusClient(url)
		if err != nil {
			return fmt.Errorf("failed to get new status client: %w", err)
		}

		health, err := client.GetHealth()
		if err != nil {
			return fmt.Errorf("failed to get health check: %w", err)
		}

		var response bytes.Buffer
		encoder := json.NewEncoder(&response)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(health); err != nil {
			return fmt.Errorf("failed to encode health check: %w", err)
		}

		fmt.Printf("Health check:\n%s\n", response.String())

		return nil
	},
}
