package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/pkg/auth"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Inspect sandbox API clients",
	Long:  `Inspect the JWT clients configured for the sandbox API and issue test tokens`,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured clients",
	RunE:  runClientList,
}

var clientTokenCmd = &cobra.Command{
	Use:   "token [client_id]",
	Short: "Issue a bearer token",
	Long: `Issue a bearer token for a configured client. Without a client id the
api.client_id and api.secret_key settings are used.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runClientToken,
	SilenceErrors: true,
}

var tokenTTL string

func init() {
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientTokenCmd)

	clientTokenCmd.Flags().StringVar(&tokenTTL, "ttl", "", "token lifetime (default api.token_ttl)")
}

// runClientList lists all configured clients
func runClientList(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	if len(cfg.Auth.Clients) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No API clients configured.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "API Clients (%d total, auth %s):\n", len(cfg.Auth.Clients), enabledText(cfg.Auth.Enabled))

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header([]string{"Client ID", "Name", "Status", "Permissions"})
	for _, client := range cfg.Auth.Clients {
		status := "active"
		if !client.Active {
			status = "revoked"
		}
		table.Append([]string{
			client.ClientID,
			client.ClientName,
			status,
			strings.Join(client.Permissions, ","),
		})
	}
	table.Render()
	return nil
}

// runClientToken signs a token with the client's shared secret
func runClientToken(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	ttl := config.Duration(tokenTTL, config.Duration(cfg.API.TokenTTL, 15*time.Minute))

	clientID, secret := cfg.API.ClientID, cfg.API.SecretKey
	if len(args) == 1 {
		client, ok := findClient(cfg.Auth.Clients, args[0])
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Client not found: %s\n\nUse 'client list' to see all available clients.\n", args[0])
			return fmt.Errorf("client not found")
		}
		if !client.Active {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: client %s (%s) is revoked, the server will reject this token.\n", client.ClientID, client.ClientName)
		}
		clientID, secret = client.ClientID, client.SecretKey
	}

	token, err := auth.IssueToken(clientID, secret, ttl, time.Now())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func findClient(clients []config.ClientConfig, id string) (config.ClientConfig, bool) {
	for _, c := range clients {
		if c.ClientID == id {
			return c, true
		}
	}
	return config.ClientConfig{}, false
}

func enabledText(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
