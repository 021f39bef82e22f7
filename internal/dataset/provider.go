// Package dataset owns the process-lifetime synthetic dataset. A Provider
// is constructed once at startup with an explicit noise source, generates
// every table exactly once, and hands out the same immutable snapshot to
// all consumers.
package dataset

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/domain"
)

// Dataset is the full generated snapshot. Fields are populated once and
// must be treated as read-only.
type Dataset struct {
	Regions        []domain.Region                         `json:"regions"`
	ClimateHistory []domain.ClimateRecord                  `json:"climate_history"`
	CropHealth     []domain.CropHealthRecord               `json:"crop_health"`
	Projections    []domain.ProjectionRecord               `json:"projections"`
	Temperatures   map[string][]domain.RegionalTemperature `json:"temperatures"`
	Drought        []domain.DroughtRecord                  `json:"drought"`
	GeneratedAt    time.Time                               `json:"generated_at"`
}

// Provider generates the dataset on first use and caches it for the rest of
// the process lifetime. Safe for concurrent readers: the only write happens
// under sync.Once.
type Provider struct {
	noise domain.NoiseSource
	clock clockwork.Clock

	once      sync.Once
	data      *Dataset
	generated atomic.Bool
}

// Option customizes a Provider.
type Option func(*Provider)

// WithClock replaces the time source used for the GeneratedAt stamp.
func WithClock(c clockwork.Clock) Option {
	return func(p *Provider) { p.clock = c }
}

// NewProvider creates a Provider drawing noise from the given source.
func NewProvider(noise domain.NoiseSource, opts ...Option) *Provider {
	p := &Provider{
		noise: noise,
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dataset returns the cached snapshot, generating it on the first call.
// Every call returns the identical pointer.
func (p *Provider) Dataset() *Dataset {
	p.once.Do(func() {
		regions := domain.DefaultRegions()

		temps := make(map[string][]domain.RegionalTemperature, len(regions))
		for _, r := range regions {
			temps[r.Name] = domain.GenerateRegionalTemperature(r, p.noise)
		}

		p.data = &Dataset{
			Regions:        regions,
			ClimateHistory: domain.GenerateClimateHistory(p.noise),
			CropHealth:     domain.GenerateCropHealth(regions, p.noise),
			Projections:    domain.GenerateProjections(p.noise),
			Temperatures:   temps,
			Drought:        domain.DroughtHistory(),
			GeneratedAt:    p.clock.Now().UTC(),
		}
		p.generated.Store(true)
	})
	return p.data
}

// CheckReadiness reports whether the dataset has been generated.
func (p *Provider) CheckReadiness(_ context.Context) error {
	if !p.generated.Load() {
		return errors.New("dataset has not been generated yet")
	}
	return nil
}

// Region looks up a region by name.
func (p *Provider) Region(name string) (domain.Region, bool) {
	for _, r := range p.Dataset().Regions {
		if r.Name == name {
			return r, true
		}
	}
	return domain.Region{}, false
}

// CropHealthAt returns the crop health record for a region and year.
func (p *Provider) CropHealthAt(region string, year int) (domain.CropHealthRecord, bool) {
	for _, rec := range p.Dataset().CropHealth {
		if rec.Region == region && rec.Year == year {
			return rec, true
		}
	}
	return domain.CropHealthRecord{}, false
}

// Temperatures returns a region's absolute temperature series.
func (p *Provider) Temperatures(region string) ([]domain.RegionalTemperature, bool) {
	t, ok := p.Dataset().Temperatures[region]
	return t, ok
}
