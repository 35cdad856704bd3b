package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/github"
)

var tokenInstallationID int64

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mints an installation access token to verify the app credentials",
	Long:  `Exchanges the configured app private key for a short-lived installation token, proving that the app id, key, and installation are wired correctly. The token itself is printed, so treat the output as a secret.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if tokenInstallationID == 0 {
			return fmt.Errorf("--installation is required")
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		factory := github.NewClientFactory(cfg, logger)
		_, token, err := factory.ClientFor(ctx, tokenInstallationID)
		if err != nil {
			return fmt.Errorf("token exchange failed: %w", err)
		}

		successColor.Printf("token minted for installation %d\n", tokenInstallationID)
		dimColor.Printf("  expires: %s\n", token.ExpiresAt.Format(time.RFC3339))
		fmt.Println(token.Value)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	tokenCmd.Flags().Int64Var(&tokenInstallationID, "installation", 0, "installation id to mint a token for")
	rootCmd.AddCommand(tokenCmd)
}
