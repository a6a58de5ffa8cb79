package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"curio-box/internal/model"
	"curio-box/internal/seed"
)

// seedgen writes a gzipped starter catalog JSON file that the API can load
// at startup via SEED_ENABLED=true SEED_PATH=<file>.
func main() {
	out := "catalog.json.gz"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	catalog := append(seed.Default(), sampleItems()...)

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}

	file, err := os.Create(out)
	if err != nil {
		log.Fatalf("create %s: %v", out, err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	defer gz.Close()

	enc := json.NewEncoder(gz)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		log.Fatalf("encode catalog: %v", err)
	}

	fmt.Printf("wrote %d items to %s\n", len(catalog), out)
}

func sampleItems() []model.Item {
	return []model.Item{
		{
			ID:          "sample-1",
			Name:        "Afrobeat Vinyl Sampler",
			Business:    "Highlife Records",
			Category:    model.CategoryGenre,
			Description: "A three-track vinyl introduction to modern Afrobeat.",
		},
		{
			ID:          "sample-2",
			Name:        "Brass Cowrie Cuff",
			Business:    "Adorn Atelier",
			Category:    model.CategoryAccessories,
			Description: "Hand-cast brass cuff with a single cowrie inlay.",
		},
		{
			ID:          "sample-3",
			Name:        "City Mural Print Set",
			Business:    "Corner Canvas Studio",
			Category:    model.CategoryArt,
			Description: "Five postcard prints from neighbourhood mural artists.",
		},
	}
}
