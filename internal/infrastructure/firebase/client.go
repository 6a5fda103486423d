package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Client verifies Firebase ID tokens for admins who sign in through the
// Firebase-backed SSO flow instead of email/password.
type Client struct {
	authClient *auth.Client
}

// NewClient initializes a Firebase app and returns its auth client.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &Client{authClient: authClient}, nil
}

// VerifyIDToken validates a Firebase ID token and returns the email it was
// issued for. The email must still map to an admin account.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := c.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify firebase id token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("firebase token carries no email claim")
	}

	return email, nil
}
