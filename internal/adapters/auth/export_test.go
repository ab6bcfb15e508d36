package auth

import (
	"context"

	fbauth "firebase.google.com/go/v4/auth"
)

// NewFirebaseVerifierWithClient builds a verifier around a fake token client.
func NewFirebaseVerifierWithClient(fn func(ctx context.Context, token string) (*fbauth.Token, error)) *FirebaseVerifier {
	return &FirebaseVerifier{client: verifierFunc(fn)}
}

type verifierFunc func(ctx context.Context, token string) (*fbauth.Token, error)

func (f verifierFunc) VerifyIDToken(ctx context.Context, token string) (*fbauth.Token, error) {
	return f(ctx, token)
}
