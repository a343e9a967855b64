package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tradelab/fyers-auth/internal/auth"
	"github.com/tradelab/fyers-auth/internal/config"
	"github.com/tradelab/fyers-auth/internal/env"
	"github.com/tradelab/fyers-auth/internal/fyers"
	"github.com/tradelab/fyers-auth/internal/logger"
	"github.com/tradelab/fyers-auth/internal/token"
)

func main() {
	log := logger.Get()

	creds := config.Load()
	client := fyers.NewClient(creds)
	store := token.NewStore(env.GetOrDefault("FYERS_TOKEN_FILE", token.DefaultPath))

	ctx := context.Background()

	// A token from an earlier run may still be usable; Fyers tokens stay
	// valid for roughly a day.
	if stored, err := store.Load(); err == nil && stored != "" {
		if profile, err := client.GetProfile(ctx, stored); err == nil && profile.Ok() {
			log.Info().Str("name", profile.Data.Name).Msg("Already authenticated")
			return
		}
		log.Info().Msg("Stored token is no longer valid, starting a fresh login")
	}

	flow := auth.NewFlow(client, store)
	accessToken, err := flow.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Authentication failed")
		printTroubleshooting()
		os.Exit(1)
	}

	validateToken(ctx, client, accessToken)
	printNextSteps(store.Path())
}

// validateToken checks the fresh token with one profile call. A failure here
// is logged but does not fail the run: the token was issued and saved.
func validateToken(ctx context.Context, client *fyers.Client, accessToken string) {
	log := logger.Get()
	log.Info().Msg("Testing token validity")

	profile, err := client.GetProfile(ctx, accessToken)
	if err != nil {
		log.Error().Err(err).Msg("Error testing token")
		return
	}
	if !profile.Ok() {
		log.Error().Str("status", profile.S).Str("message", profile.Message).Msg("Token validation failed")
		return
	}

	name := profile.Data.Name
	if name == "" {
		name = "Unknown"
	}
	log.Info().Str("name", name).Msg("Token is valid")
}

func printNextSteps(tokenFile string) {
	fmt.Println("\nNext steps:")
	fmt.Println("1. Use this token for authenticated Fyers API calls")
	fmt.Printf("2. The token is also saved to %s\n", tokenFile)
	fmt.Println("3. The token is valid for one day")
}

func printTroubleshooting() {
	fmt.Println("\nAuthentication failed. Here are some troubleshooting tips:")
	fmt.Println("1. Make sure your client ID and secret key are correct")
	fmt.Println("2. Complete the login process quickly (within 60 seconds)")
	fmt.Println("3. Copy the ENTIRE redirect URL, including the auth_code parameter")
	fmt.Println("4. If you keep getting 'auth code expired', try clearing your browser cache or using incognito mode")
}
