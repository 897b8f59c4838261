package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smart-pto/pkg/gmail"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize read-only Gmail access",
	Long: `Run the interactive OAuth consent flow and save the resulting token.

Open the printed URL, sign in with your Google account, then paste the
authorization code back here. The token is written to gmail.token_path
(default token.json) and reused by the API server and the other commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		credsPath := cfg.Gmail.CredentialsPath
		if flagPath, _ := cmd.Flags().GetString("credentials"); flagPath != "" {
			credsPath = flagPath
		}
		tokenPath := cfg.Gmail.TokenPath
		if flagPath, _ := cmd.Flags().GetString("token"); flagPath != "" {
			tokenPath = flagPath
		}

		oauthCfg, err := gmail.OAuthConfigFromFile(credsPath)
		if err != nil {
			return fmt.Errorf("%w\n\nMake sure %q is an OAuth Desktop App credentials file", err, credsPath)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Step 1: open this URL in your browser and sign in:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, gmail.AuthCodeURL(oauthCfg))
		fmt.Fprintln(out)
		fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

		code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && code == "" {
			return fmt.Errorf("reading authorization code: %w", err)
		}
		code = strings.TrimSpace(code)
		if code == "" {
			return fmt.Errorf("authorization code is empty")
		}

		tok, err := gmail.ExchangeCode(cmd.Context(), oauthCfg, code)
		if err != nil {
			return err
		}
		if err := gmail.SaveToken(tokenPath, tok); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nToken saved to %s\n", tokenPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.Flags().String("credentials", "", "OAuth client credentials file (default gmail.credentials_path)")
	authCmd.Flags().String("token", "", "where to write the token (default gmail.token_path)")
}
