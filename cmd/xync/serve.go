package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/xync/xync/internal/api"
	"github.com/xync/xync/internal/auth"
	"github.com/xync/xync/internal/config"
	"github.com/xync/xync/internal/db"
	"github.com/xync/xync/internal/preview"
	"github.com/xync/xync/internal/store"
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

			tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Lifetime)
			authMiddleware := auth.NewMiddleware(tokens)

			userStore := store.NewUserStore(database)
			tagStore := store.NewTagStore(database)
			bookmarkStore := store.NewBookmarkStore(database, tagStore)
			noteStore := store.NewNoteStore(database)
			categoryStore := store.NewCategoryStore(database)

			router := api.NewRouter(api.Deps{
				DB:         database,
				Auth:       authMiddleware,
				Tokens:     tokens,
				Users:      userStore,
				Bookmarks:  bookmarkStore,
				Notes:      noteStore,
				Tags:       tagStore,
				Categories: categoryStore,
				Preview:    preview.NewFetcher(),
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
