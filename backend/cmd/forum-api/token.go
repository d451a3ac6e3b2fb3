package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/forum-api/forum-api/shared/config"
	"github.com/forum-api/forum-api/shared/domain"
	"github.com/forum-api/forum-api/shared/jwt"
)

var (
	tokenUserId   string
	tokenUsername string
	tokenTTL      time.Duration
)

// tokenCommand mints an access token signed with the configured key.
// Tokens are normally issued by the auth service; this is for local use.
var tokenCommand = &cobra.Command{
	Use:   "token",
	Short: "Print an access token for a user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad(configFolder)
		token, err := jwt.New(cfg.JwtKey(), tokenTTL).NewToken(domain.User{Id: tokenUserId, Username: tokenUsername})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCommand.Flags().StringVar(&tokenUserId, "uid", "", "user id placed in the uid claim")
	tokenCommand.Flags().StringVar(&tokenUsername, "username", "", "username claim")
	tokenCommand.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
	tokenCommand.MarkFlagRequired("uid")
}
