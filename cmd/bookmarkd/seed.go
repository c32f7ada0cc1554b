package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tschmitz/bookmarkd/internal/config"
	"github.com/tschmitz/bookmarkd/internal/db"
	"github.com/tschmitz/bookmarkd/internal/store"
)

type seedBookmark struct {
	owner string
	title string
	href  string
	icon  string
	tags  []string
}

// Demo fixtures: two users with a handful of bookmarks and shared tags.
var seedBookmarks = []seedBookmark{
	{"bud", "DZone", "https://dzone.com/java-jdk-development-tutorials-tools-news", "", []string{"dev", "news"}},
	{"bud", "Go Blog", "https://go.dev/blog/", "", []string{"dev", "golang"}},
	{"bud", "Hacker News", "https://news.ycombinator.com/", "", []string{"news"}},
	{"bud", "SQLite Docs", "https://www.sqlite.org/docs.html", "", []string{"dev", "reference"}},
	{"terence", "Gopher Reading List", "https://github.com/enocom/gopher-reading-list", "", []string{"golang", "reference"}},
	{"terence", "Prometheus Docs", "https://prometheus.io/docs/", "", []string{"reference"}},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo bookmarks and tags",
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

			ctx := context.Background()
			bookmarks := store.NewBookmarkStore(database)
			tags := store.NewTagStore(database)

			// Tag titles are unique; reuse an existing tag on collision.
			tagIDs := map[string]string{}
			tagID := func(title string) (string, error) {
				if id, ok := tagIDs[title]; ok {
					return id, nil
				}
				t, err := tags.Create(ctx, title)
				if err != nil {
					return "", fmt.Errorf("create tag %q: %w", title, err)
				}
				tagIDs[title] = t.ID
				return t.ID, nil
			}

			for _, sb := range seedBookmarks {
				b, err := bookmarks.Create(ctx, sb.owner, sb.title, sb.href, sb.icon)
				if err != nil {
					return fmt.Errorf("create bookmark %q: %w", sb.title, err)
				}
				for _, tt := range sb.tags {
					id, err := tagID(tt)
					if err != nil {
						return err
					}
					if err := bookmarks.AttachTag(ctx, b.ID, id); err != nil {
						return fmt.Errorf("attach tag %q to %q: %w", tt, sb.title, err)
					}
				}
			}

			log.Printf("seeded %d bookmarks and %d tags", len(seedBookmarks), len(tagIDs))
			return nil
		},
	}
}
