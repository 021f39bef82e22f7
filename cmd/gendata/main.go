// Command gendata exports the synthetic dashboard dataset as a JSON fixture.
// It uses the actual domain and dataset packages so exported fixtures match
// service behavior exactly.
//
// Usage:
//
//	go run ./cmd/gendata -out data/fixtures/dataset.json -seed 42
//	go run ./cmd/gendata -out data/fixtures/trend_only.json -zero-noise
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/dataset"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the dataset JSON fixture")
	seed := flag.Uint64("seed", 0, "noise seed (ignored with -zero-noise)")
	zeroNoise := flag.Bool("zero-noise", false, "disable noise so every value equals its trend")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	var noise domain.NoiseSource
	if *zeroNoise {
		noise = domain.ZeroNoise{}
	} else {
		noise = domain.NewRandomNoise(*seed)
	}

	// Fix the clock so re-running with the same flags is byte-identical.
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	ds := dataset.NewProvider(noise, dataset.WithClock(clock)).Dataset()

	if err := writeJSON(*out, ds); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}

	log.Printf("wrote fixture: %s", *out)
	log.Printf("regions=%d climate=%d crop_health=%d projections=%d",
		len(ds.Regions), len(ds.ClimateHistory), len(ds.CropHealth), len(ds.Projections))
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
