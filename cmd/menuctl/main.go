// menuctl is the admin console for the menu system. It drives the same HTTP
// API the web clients use: a public listing plus authenticated create, edit,
// stock and delete actions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweetcrumb/menu-system/pkg/client"
)

var (
	serverURL string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "menuctl",
	Short: "menuctl — admin console for the menu system API",
	Long:  "menuctl manages restaurant menu items and users through the menu system REST API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("MENU_SERVER", "http://localhost:8080"), "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("MENU_TOKEN"), "bearer token for authenticated commands")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(profileCmd)
}

func newClient() *client.Client {
	return client.New(serverURL, client.WithToken(token))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
