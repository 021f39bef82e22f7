// Package domain models synthetic climate and crop-health sample data for
// three South African agricultural regions.
//
// # Data Source
//
// All values are synthesized in-process. There is no ingestion pipeline: the
// tables are produced from closed-form trend formulas plus normally
// distributed noise drawn from an injectable [NoiseSource]. A process uses
// one noise source for its lifetime, so results vary across runs unless the
// source is seeded.
//
// # Regions
//
// The region set is fixed: Western Cape Wheat, Free State Maize, and
// KZN Sugarcane. Each region carries a WGS-84 bounding box (west, south,
// east, north), a crop type derived from the region name, a base annual
// temperature, and a climate risk profile on a 1-5 scale.
//
// # Anomalies
//
// Temperature anomalies (°C) and rainfall anomalies (%) are expressed
// relative to the 1990-2000 baseline period. Historical series cover
// 2010-2023; projections cover 2024-2049.
//
// # Synthesis Formulas
//
// With Y the calendar year and N(m,s) a normal draw:
//
//	Historical temperature anomaly:  0.1*(Y-2010)  + N(0, 0.2)
//	Historical rainfall anomaly:    -2*(Y-2010)    + N(0, 3)
//	Crop health index:               max(60, 80 - 0.8*(Y-2010) + N(0, 5))
//	Projected temperature anomaly:   0.15*(Y-2010) + N(0, 0.3)
//	Projected rainfall anomaly:     -3*(Y-2010)    + N(0, 5)
//	Projected crop health:           max(40, 80 - 1.0*(Y-2010) + N(0, 6))
//	Regional mean temperature:       base + 0.08*(Y-2010) + N(0, 0.15)
//
// Crop health uses the same formula for every region with independent noise
// draws per region. Historical health is floored at 60, projected health at
// 40. Drought history and yield scenarios are deterministic tables with no
// noise term.
//
// # Health Classification
//
// The 0-100 crop health index maps to three status bands used across the
// dashboard:
//
//	>= 70   optimal    favourable growing conditions
//	40-69   moderate   moderate stress
//	<  40   severe     severe stress, potential yield loss
//
// # NDVI
//
// Monthly NDVI (Normalized Difference Vegetation Index) profiles are fixed
// 12-value curves per region, used as display series over the synthetic
// data. 0 reads as bare soil, values near 1 as healthy vegetation.
package domain
