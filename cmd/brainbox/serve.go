package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brainbox-app/brainbox/internal/api"
	"github.com/brainbox-app/brainbox/internal/auth"
	"github.com/brainbox-app/brainbox/internal/config"
	"github.com/brainbox-app/brainbox/internal/db"
	"github.com/brainbox-app/brainbox/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			userStore := store.NewUserStore(database)
			contentStore := store.NewContentStore(database)
			shareStore := store.NewShareStore(database)

			tokens := auth.NewTokens([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenLifetime)
			authMiddleware := auth.NewMiddleware(tokens, userStore)

			router := api.NewRouter(api.Deps{
				Auth:         authMiddleware,
				Tokens:       tokens,
				UserStore:    userStore,
				ContentStore: contentStore,
				ShareStore:   shareStore,
			})

			log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
