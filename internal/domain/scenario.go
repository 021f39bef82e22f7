package domain

import "fmt"

// Scenario is an emissions pathway for yield projections, loosely following
// the RCP naming used in climate assessments.
type Scenario string

const (
	ScenarioLow      Scenario = "low"      // RCP 2.6
	ScenarioModerate Scenario = "moderate" // RCP 4.5
	ScenarioHigh     Scenario = "high"     // RCP 8.5
)

// yieldDeclinePerYear maps a scenario to its annual yield loss in percentage
// points from the 2020 baseline.
var yieldDeclinePerYear = map[Scenario]float64{
	ScenarioLow:      0.5,
	ScenarioModerate: 1.0,
	ScenarioHigh:     2.0,
}

// ParseScenario validates a scenario string. The empty string defaults to
// the moderate pathway.
func ParseScenario(s string) (Scenario, error) {
	if s == "" {
		return ScenarioModerate, nil
	}
	sc := Scenario(s)
	if _, ok := yieldDeclinePerYear[sc]; !ok {
		return "", fmt.Errorf("unknown scenario %q (want low, moderate, or high)", s)
	}
	return sc, nil
}

// Label returns the display name for a scenario.
func (s Scenario) Label() string {
	switch s {
	case ScenarioLow:
		return "Low Emissions (RCP 2.6)"
	case ScenarioModerate:
		return "Moderate Emissions (RCP 4.5)"
	case ScenarioHigh:
		return "High Emissions (RCP 8.5)"
	default:
		return string(s)
	}
}

// YieldProjection returns the deterministic yield curve for a scenario over
// the projection range: 100% in 2024, declining linearly.
func YieldProjection(s Scenario) []YieldPoint {
	decline := yieldDeclinePerYear[s]
	points := make([]YieldPoint, 0, FutureYears)
	for year := FutureStartYear; year <= FutureEndYear; year++ {
		points = append(points, YieldPoint{
			Year:     year,
			YieldPct: 100 - decline*float64(year-FutureStartYear),
		})
	}
	return points
}

// Season is a stage of the growing cycle selectable on the crop health view.
type Season string

const (
	SeasonPlanting Season = "Planting"
	SeasonGrowth   Season = "Growth"
	SeasonHarvest  Season = "Harvest"
)

// ParseSeason validates a season string. The empty string defaults to
// Planting, matching the dashboard's initial selection.
func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case "":
		return SeasonPlanting, nil
	case SeasonPlanting, SeasonGrowth, SeasonHarvest:
		return Season(s), nil
	default:
		return "", fmt.Errorf("unknown season %q (want Planting, Growth, or Harvest)", s)
	}
}
