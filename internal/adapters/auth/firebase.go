package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TokenVerifier = (*FirebaseVerifier)(nil)

// idTokenVerifier is the subset of *fbauth.Client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier validates Firebase Authentication ID tokens.
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier creates a verifier backed by the app's auth client.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// VerifyToken implements ports.TokenVerifier.
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (*ports.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		if fbauth.IsCertificateFetchFailed(err) {
			return nil, fmt.Errorf("verifying id token: %w: %w", domain.ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	name, _ := tok.Claims["name"].(string)
	return &ports.Identity{UserID: tok.UID, Name: name}, nil
}
