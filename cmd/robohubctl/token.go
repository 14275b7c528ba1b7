package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robohub/robohub/pkg/config"
	"github.com/robohub/robohub/pkg/token"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage access tokens",
	Long:  `Issue and inspect bearer access tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (issue)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a signed bearer token",
	Long: `Issue a signed bearer token for a user.

The token is signed with JWT_SECRET and printed to stdout. Useful for
smoke-testing protected endpoints with curl.

Example:
  robohubctl token issue --subject 4f2d7b1e-1111-2222-3333-444455556666 --role admin`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
			os.Exit(1)
		}
		if cfg.JWTSecret == "" {
			fmt.Fprintln(os.Stderr, "JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		subject, _ := cmd.Flags().GetString("subject")
		if subject == "" {
			fmt.Fprintln(os.Stderr, "--subject is required")
			os.Exit(1)
		}
		role, _ := cmd.Flags().GetString("role")

		ttl := cfg.TokenTTL()
		if seconds, _ := cmd.Flags().GetInt64("ttl"); seconds != 0 {
			ttl = time.Duration(seconds) * time.Second
		}

		signed, err := token.Issue(subject, role, ttl, []byte(cfg.JWTSecret))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to issue token:", err)
			os.Exit(1)
		}

		fmt.Println(signed)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)

	tokenIssueCmd.Flags().StringP("subject", "s", "", "user ID the token is issued for")
	tokenIssueCmd.Flags().StringP("role", "r", "user", "role claim for the token")
	tokenIssueCmd.Flags().Int64P("ttl", "t", 0, "token lifetime in seconds (default: TOKEN_TTL_SECONDS)")
}
