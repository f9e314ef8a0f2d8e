// scripts/clickup-auth/main.go
//
// Run this ONCE to authorize a ClickUp OAuth app and print the access token
// to put in CLICKUP_TOKEN (with clickup.auth_mode: oauth).
//
// Usage:
//   CLICKUP_CLIENT_ID=... CLICKUP_CLIENT_SECRET=... go run scripts/clickup-auth/main.go [redirect-url]
//
// It prints an authorization URL. Approve access in the browser, copy the
// "code" query parameter from the redirect and paste it here.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
)

var clickupEndpoint = oauth2.Endpoint{
	AuthURL:   "https://app.clickup.com/api",
	TokenURL:  "https://api.clickup.com/api/v2/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

func main() {
	clientID := os.Getenv("CLICKUP_CLIENT_ID")
	clientSecret := os.Getenv("CLICKUP_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("CLICKUP_CLIENT_ID and CLICKUP_CLIENT_SECRET must be set")
	}

	redirectURL := "http://localhost:8080/oauth/callback"
	if len(os.Args) > 1 {
		redirectURL = os.Args[1]
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     clickupEndpoint,
		RedirectURL:  redirectURL,
	}

	authURL := config.AuthCodeURL("state-token")
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL and approve the workspace(s):")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the code from the redirect URL and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	tokenPath := "clickup-token.json"
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s. Configure the bot with:\n", tokenPath)
	fmt.Println("  CLICKUP_AUTH_MODE=oauth")
	fmt.Println("  CLICKUP_TOKEN=<access_token from the file>")
}
