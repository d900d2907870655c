// mobility-check loads the configured mobility file and prints what the
// dashboard would be built from. Run it after swapping in a new export to
// catch format problems before deploying the server.
package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/zakhtar/go-mobility-map/internal/config"
	"github.com/zakhtar/go-mobility-map/internal/dataset"
	"github.com/zakhtar/go-mobility-map/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	ds, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		logging.Fatalf("Failed to load mobility data: %v", err)
	}

	b := ds.Bounds()
	fmt.Printf("file:          %s\n", cfg.Data.Path)
	fmt.Printf("routes:        %d\n", len(ds.Records))
	fmt.Printf("sources:       %s\n", strings.Join(ds.SourceCategories, ", "))
	fmt.Printf("destinations:  %s\n", strings.Join(ds.DestinationCategories, ", "))
	fmt.Printf("bounds:        lat [%.4f, %.4f] lon [%.4f, %.4f]\n", b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)
	fmt.Printf("timestamps:    %d\n", ds.Times.Len())
	for i, t := range ds.Times.Times() {
		fmt.Printf("  %3d  %-12s %s\n", i, dataset.SlotLabel(t), t.Format("2006-01-02 15:04"))
	}
}
