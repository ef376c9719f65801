package app

import (
	"fmt"

	"retrorank/internal/config"
	"retrorank/internal/repository"
	"retrorank/internal/service"
	"retrorank/internal/session"
	"retrorank/internal/storage"
)

// App assembles the store, repositories, session manager and services.
func App(cfg *config.Config) (storage.Store, *repository.Repository, *service.Service, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	repo := repository.NewRepository(store)
	sess := session.NewManager(store, cfg.JWTSecretKey, cfg.TokenTTL)
	services := service.NewService(repo, sess, cfg)

	return store, repo, services, nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StoragePath == "" {
		return storage.NewMemoryStore(), nil
	}
	return storage.OpenSQLStore(cfg.StoragePath)
}
