package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/cellar-backend/internal/auth"
	"github.com/heartmarshall/cellar-backend/internal/config"
)

// newDevTokenCmd mints a bearer token with the server's AUTH_* settings.
// It is meant for local development where no user pool is running.
func newDevTokenCmd(d deps) *cobra.Command {
	var (
		owner string
		ttl   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "dev-token",
		Short: "Mint a bearer token signed with AUTH_JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.AuthConfig
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return fmt.Errorf("read auth env: %w", err)
			}
			if cfg.JWTSecret == "" {
				return errors.New("AUTH_JWT_SECRET must not be empty")
			}
			if ttl > 0 {
				cfg.AccessTokenTTL = ttl
			}

			ownerID := uuid.New()
			if owner != "" {
				id, err := uuid.Parse(owner)
				if err != nil {
					return fmt.Errorf("invalid --owner %q: %w", owner, err)
				}
				ownerID = id
			}

			token, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, d.clock).GenerateAccessToken(ownerID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "owner %s, expires in %s\n", ownerID, cfg.AccessTokenTTL)
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner id to embed (default: a new random id)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: AUTH_ACCESS_TOKEN_TTL)")
	return cmd
}
