// Package render turns dataset series into PNG charts served by the
// dashboard. Rendering is stateless; each function consumes read-only
// records and returns encoded bytes.
package render

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/domain"
)

const (
	chartWidth  = 900
	chartHeight = 420
)

var (
	colorTemp  = drawing.Color{R: 0xD6, G: 0x3A, B: 0x2F, A: 0xFF}
	colorRain  = drawing.Color{R: 0x2F, G: 0x6F, B: 0xD6, A: 0xFF}
	colorCrop  = drawing.Color{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF}
	colorBand  = drawing.Color{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
	colorAlert = drawing.Color{R: 0xEF, G: 0x6C, B: 0x00, A: 0xFF}
)

func lineStyle(c drawing.Color) chart.Style {
	return chart.Style{StrokeColor: c, StrokeWidth: 2}
}

func renderPNG(ch chart.Chart) ([]byte, error) {
	ch.Width = chartWidth
	ch.Height = chartHeight
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// ClimateHistory plots historical temperature anomalies against the primary
// axis and rainfall anomalies against the secondary axis.
func ClimateHistory(records []domain.ClimateRecord) ([]byte, error) {
	years := make([]float64, 0, len(records))
	temps := make([]float64, 0, len(records))
	rains := make([]float64, 0, len(records))
	for _, r := range records {
		years = append(years, float64(r.Year))
		temps = append(temps, r.TempAnomalyC)
		rains = append(rains, r.RainAnomalyPct)
	}

	ch := chart.Chart{
		Title: "Climate Change from Baseline (1990-2000)",
		XAxis: chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{Name: "Temperature Change (°C)"},
		YAxisSecondary: chart.YAxis{
			Name: "Rainfall Change (%)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Temperature Change (°C)",
				XValues: years,
				YValues: temps,
				Style:   lineStyle(colorTemp),
			},
			chart.ContinuousSeries{
				Name:    "Rainfall Change (%)",
				XValues: years,
				YValues: rains,
				Style:   lineStyle(colorRain),
				YAxis:   chart.YAxisSecondary,
			},
		},
	}
	return renderPNG(ch)
}

// Projections plots the projected temperature, rainfall, and crop health
// series through 2049.
func Projections(records []domain.ProjectionRecord) ([]byte, error) {
	years := make([]float64, 0, len(records))
	temps := make([]float64, 0, len(records))
	rains := make([]float64, 0, len(records))
	health := make([]float64, 0, len(records))
	for _, r := range records {
		years = append(years, float64(r.Year))
		temps = append(temps, r.TempAnomalyC)
		rains = append(rains, r.RainAnomalyPct)
		health = append(health, r.HealthIndex)
	}

	ch := chart.Chart{
		Title: "Projected Climate Change (2024-2049)",
		XAxis: chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{Name: "Temperature Change (°C)"},
		YAxisSecondary: chart.YAxis{
			Name: "Rainfall Change (%) / Crop Health",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Temperature Change (°C)",
				XValues: years,
				YValues: temps,
				Style:   lineStyle(colorTemp),
			},
			chart.ContinuousSeries{
				Name:    "Rainfall Change (%)",
				XValues: years,
				YValues: rains,
				Style:   lineStyle(colorRain),
				YAxis:   chart.YAxisSecondary,
			},
			chart.ContinuousSeries{
				Name:    "Projected Crop Health",
				XValues: years,
				YValues: health,
				Style:   lineStyle(colorCrop),
				YAxis:   chart.YAxisSecondary,
			},
		},
	}
	return renderPNG(ch)
}

// RegionalTemperature plots a region's min/avg/max temperature band.
func RegionalTemperature(region string, records []domain.RegionalTemperature) ([]byte, error) {
	years := make([]float64, 0, len(records))
	avgs := make([]float64, 0, len(records))
	mins := make([]float64, 0, len(records))
	maxs := make([]float64, 0, len(records))
	for _, r := range records {
		years = append(years, float64(r.Year))
		avgs = append(avgs, r.AvgC)
		mins = append(mins, r.MinC)
		maxs = append(maxs, r.MaxC)
	}

	ch := chart.Chart{
		Title: fmt.Sprintf("Temperature Trends: %s", region),
		XAxis: chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{Name: "Temperature (°C)"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Max Temp", XValues: years, YValues: maxs, Style: lineStyle(colorTemp)},
			chart.ContinuousSeries{Name: "Avg Temp", XValues: years, YValues: avgs, Style: lineStyle(colorBand)},
			chart.ContinuousSeries{Name: "Min Temp", XValues: years, YValues: mins, Style: lineStyle(colorRain)},
		},
	}
	return renderPNG(ch)
}

// NDVI plots a region's monthly NDVI profile on a fixed 0-1 axis.
func NDVI(region string, profile []float64) ([]byte, error) {
	xs := make([]float64, 0, len(profile))
	ticks := make([]chart.Tick, 0, len(profile))
	for i := range profile {
		xs = append(xs, float64(i+1))
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: domain.Months[i]})
	}

	ch := chart.Chart{
		Title: fmt.Sprintf("Monthly NDVI Trend: %s", region),
		XAxis: chart.XAxis{Name: "Month", Ticks: ticks},
		YAxis: chart.YAxis{
			Name:  "NDVI",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "NDVI",
				XValues: xs,
				YValues: profile,
				Style:   lineStyle(colorCrop),
			},
		},
	}
	return renderPNG(ch)
}

// Drought plots drought days per year with the 1-5 severity rating scaled
// onto the same axis, mirroring the dual-scale view on the trends tab.
func Drought(records []domain.DroughtRecord) ([]byte, error) {
	years := make([]float64, 0, len(records))
	days := make([]float64, 0, len(records))
	severity := make([]float64, 0, len(records))
	for _, r := range records {
		years = append(years, float64(r.Year))
		days = append(days, float64(r.Days))
		severity = append(severity, float64(r.Severity)*20)
	}

	ch := chart.Chart{
		Title: "Increasing Drought Frequency and Severity",
		XAxis: chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{Name: "Drought Days / Year (severity ×20)"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Drought Days", XValues: years, YValues: days, Style: lineStyle(colorAlert)},
			chart.ContinuousSeries{Name: "Severity (1-5, scaled)", XValues: years, YValues: severity, Style: lineStyle(colorTemp)},
		},
	}
	return renderPNG(ch)
}

// Yield plots a scenario's projected yield curve.
func Yield(scenario domain.Scenario, points []domain.YieldPoint) ([]byte, error) {
	years := make([]float64, 0, len(points))
	yields := make([]float64, 0, len(points))
	for _, p := range points {
		years = append(years, float64(p.Year))
		yields = append(yields, p.YieldPct)
	}

	ch := chart.Chart{
		Title: fmt.Sprintf("Projected Crop Yield: %s", scenario.Label()),
		XAxis: chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{Name: "Yield as % of 2020 Baseline"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Projected Yield (%)",
				XValues: years,
				YValues: yields,
				Style:   lineStyle(colorCrop),
			},
		},
	}
	return renderPNG(ch)
}

// Rainfall renders the annual rainfall anomaly as a bar chart.
func Rainfall(records []domain.ClimateRecord) ([]byte, error) {
	bars := make([]chart.Value, 0, len(records))
	for _, r := range records {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d", r.Year),
			Value: r.RainAnomalyPct,
			Style: chart.Style{FillColor: colorRain, StrokeColor: colorRain},
		})
	}

	ch := chart.BarChart{
		Title:    "Annual Rainfall Change from Baseline",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render rainfall chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Strategies renders the adaptation strategy effectiveness bar chart.
func Strategies(strategies []domain.Strategy) ([]byte, error) {
	bars := make([]chart.Value, 0, len(strategies))
	for _, s := range strategies {
		bars = append(bars, chart.Value{
			Label: s.Name,
			Value: s.Effectiveness,
			Style: chart.Style{FillColor: colorCrop, StrokeColor: colorCrop},
		})
	}

	ch := chart.BarChart{
		Title:    "Effectiveness of Adaptation Strategies",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 80,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render strategies chart: %w", err)
	}
	return buf.Bytes(), nil
}
