// Package firebase builds the Firebase app shared by the Firestore store and
// the Firebase token verifier.
package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/photostreak/streak-service/internal/platform/config"
)

// NewApp initializes a Firebase app for cfg.ProjectID. An empty
// CredentialsFile falls back to application default credentials, which also
// covers the Firestore emulator when FIRESTORE_EMULATOR_HOST is set.
func NewApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app for %q: %w", cfg.ProjectID, err)
	}
	return app, nil
}
