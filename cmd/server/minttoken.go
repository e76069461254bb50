package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fisc/internal/jwtprincipal"
	"fisc/internal/platform/config"
	id "fisc/pkg/domain"
)

var (
	mintPrincipal string
	mintTTL       time.Duration
)

// mint-token is a development helper: it signs a principal token with the
// configured key so local clients can hit the write endpoints.
var mintTokenCmd = &cobra.Command{
	Use:   "mint-token",
	Short: "Mint a bearer token for a principal",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		principal, err := id.ParsePrincipal(mintPrincipal)
		if err != nil {
			return err
		}
		token, err := jwtprincipal.New(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience).
			Mint(principal, mintTTL)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	mintTokenCmd.Flags().StringVar(&mintPrincipal, "principal", "", "principal address the token asserts")
	mintTokenCmd.Flags().DurationVar(&mintTTL, "ttl", time.Hour, "token lifetime")
	_ = mintTokenCmd.MarkFlagRequired("principal")
}
