package cli

import (
	"context"

	"taskboard/internal/backend/postgres"
	"taskboard/internal/backend/supabase"
	"taskboard/internal/config"
	"taskboard/internal/service"
)

// DefaultStoreFactory builds the remote store selected by the stored
// credentials: PostgREST for the rest backend, a direct connection for
// the postgres backend.
func DefaultStoreFactory(ctx context.Context, cfg *config.Config) (service.Store, error) {
	creds, err := cfg.LoadCredentials()
	if err != nil {
		return nil, err
	}

	if creds.Backend == config.BackendPostgres {
		store, err := postgres.New(ctx, creds.ConnString)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	}

	return supabase.New(ctx, creds), nil
}
