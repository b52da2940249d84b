// Seed imports paintings in bulk from a JSON file, used to load the
// initial collection into a fresh database.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/TillGrassi/My-Portfolio/config"
	"github.com/TillGrassi/My-Portfolio/models"
	"github.com/TillGrassi/My-Portfolio/storage"
)

func main() {
	file := flag.String("file", "seed/paintings.json", "paintings JSON file")
	flag.Parse()

	cfg := config.Load()

	store, err := storage.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		slog.Error("failed to read seed file", "file", *file, "error", err)
		os.Exit(1)
	}

	var paintings []models.Painting
	if err := json.Unmarshal(data, &paintings); err != nil {
		slog.Error("failed to parse seed file", "file", *file, "error", err)
		os.Exit(1)
	}

	for _, p := range paintings {
		p.ID = 0 // always insert
		created, err := store.CreatePainting(p)
		if err != nil {
			slog.Error("failed to add painting", "title", p.Title, "error", err)
			os.Exit(1)
		}
		slog.Info("added painting", "id", created.ID, "title", created.Title)
	}
	slog.Info("seed complete", "count", len(paintings))
}
