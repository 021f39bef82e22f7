package http

import (
	"html/template"
	"net/http"
	"time"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/domain"
)

// pageData feeds the dashboard template.
type pageData struct {
	Regions         []domain.Region
	Vulnerability   []domain.VulnerabilityPoint
	Strategies      []domain.Strategy
	Recommendations map[string][]domain.Recommendation
	Years           []int
	GeneratedAt     time.Time
}

func (s *Server) handleDashboardPage(w http.ResponseWriter, _ *http.Request) {
	ds := s.provider.Dataset()

	recs := make(map[string][]domain.Recommendation, len(ds.Regions))
	for _, r := range ds.Regions {
		if rr, ok := domain.Recommendations(r.Name); ok {
			recs[r.Name] = rr
		}
	}

	years := make([]int, 0, domain.HistoricalYears)
	for y := domain.HistoricalStartYear; y <= domain.HistoricalEndYear; y++ {
		years = append(years, y)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, pageData{
		Regions:         ds.Regions,
		Vulnerability:   domain.VulnerabilityMap2050(),
		Strategies:      domain.AdaptationStrategies(),
		Recommendations: recs,
		Years:           years,
		GeneratedAt:     ds.GeneratedAt,
	}); err != nil {
		s.logger.Error("render dashboard page failed", "error", err)
	}
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Climate Impact on SA Agriculture</title>
<style>
  body { font-family: sans-serif; margin: 0; background: #0d0d0d; color: #eee; }
  header { background: #1a6b2b; padding: 16px 24px; }
  header h1 { margin: 0; font-size: 22px; }
  nav { display: flex; gap: 4px; background: #191919; padding: 0 24px; }
  nav button { background: none; border: none; color: #aaa; padding: 12px 16px; cursor: pointer; font-size: 14px; }
  nav button.active { color: #fff; border-bottom: 2px solid #2e7d32; }
  section { display: none; padding: 24px; }
  section.active { display: block; }
  .row { display: flex; gap: 24px; flex-wrap: wrap; }
  .card { background: #191919; border-radius: 10px; padding: 16px; flex: 1 1 420px; }
  img.chart { max-width: 100%; border-radius: 6px; background: #fff; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border-bottom: 1px solid #333; padding: 6px 10px; text-align: left; font-size: 14px; }
  select { background: #000; color: #eee; border: 1px solid #444; border-radius: 6px; padding: 6px; }
  footer { color: #666; font-size: 13px; text-align: center; padding: 20px; }
</style>
</head>
<body>
<header>
  <h1>Climate Change Impact on South African Agriculture</h1>
</header>
<nav>
  <button data-tab="overview" class="active">Regional Overview</button>
  <button data-tab="crops">Crop Health Analysis</button>
  <button data-tab="trends">Climate Trends</button>
  <button data-tab="projections">Future Projections</button>
  <button data-tab="recommendations">Recommendations</button>
</nav>

<section id="overview" class="active">
  <div class="row">
    <div class="card">
      <h3>Key Agricultural Regions</h3>
      <table>
        <tr><th>Region</th><th>Crop</th><th>Temp Risk</th><th>Drought Risk</th><th>Flood Risk</th><th>Overall</th></tr>
        {{range .Regions}}
        <tr><td>{{.Name}}</td><td>{{.Crop}}</td><td>{{.Risk.Temperature}}</td><td>{{.Risk.Drought}}</td><td>{{.Risk.Flood}}</td><td>{{.Risk.Overall}}</td></tr>
        {{end}}
      </table>
      <p>Region boundaries are available as <a href="/api/regions/geojson">GeoJSON</a> for map layers.</p>
    </div>
  </div>
</section>

<section id="crops">
  <div class="row">
    <div class="card">
      <h3>NDVI Analysis</h3>
      <label>Region
        <select id="crop-region">
          {{range .Regions}}<option>{{.Name}}</option>{{end}}
        </select>
      </label>
      <label>Year
        <select id="crop-year">
          {{range .Years}}<option{{if eq . 2020}} selected{{end}}>{{.}}</option>{{end}}
        </select>
      </label>
      <p><img class="chart" id="ndvi-chart" alt="Monthly NDVI trend"></p>
      <p id="crop-health"></p>
    </div>
    <div class="card">
      <h3>Satellite Imagery</h3>
      <p><img class="chart" id="region-photo" alt="Region photograph"></p>
    </div>
  </div>
</section>

<section id="trends">
  <div class="row">
    <div class="card">
      <h3>Temperature and Rainfall</h3>
      <p><img class="chart" src="/charts/climate-history.png" alt="Climate history"></p>
      <p><img class="chart" src="/charts/rainfall.png" alt="Annual rainfall change"></p>
    </div>
    <div class="card">
      <h3>Regional Temperature / Drought</h3>
      <label>Region
        <select id="trend-region">
          {{range .Regions}}<option>{{.Name}}</option>{{end}}
        </select>
      </label>
      <p><img class="chart" id="temperature-chart" alt="Regional temperature"></p>
      <p><img class="chart" src="/charts/drought.png" alt="Drought frequency"></p>
    </div>
  </div>
</section>

<section id="projections">
  <div class="row">
    <div class="card">
      <h3>Climate Projections to 2050</h3>
      <p><img class="chart" src="/charts/projections.png" alt="Projected climate change"></p>
      <label>Scenario
        <select id="yield-scenario">
          <option value="low">Low Emissions (RCP 2.6)</option>
          <option value="moderate" selected>Moderate Emissions (RCP 4.5)</option>
          <option value="high">High Emissions (RCP 8.5)</option>
        </select>
      </label>
      <p><img class="chart" id="yield-chart" alt="Projected crop yield"></p>
    </div>
    <div class="card">
      <h3>Regional Vulnerability in 2050</h3>
      <table>
        <tr><th>Region</th><th>Risk Level</th><th>Score</th><th>Main Threat</th></tr>
        {{range .Vulnerability}}
        <tr><td>{{.Region}}</td><td>{{.RiskLevel}}</td><td>{{.RiskScore}}</td><td>{{.MainThreat}}</td></tr>
        {{end}}
      </table>
      <p><img class="chart" src="/charts/strategies.png" alt="Adaptation strategy effectiveness"></p>
    </div>
  </div>
</section>

<section id="recommendations">
  <div class="row">
    {{range .Regions}}
    <div class="card">
      <h3>{{.Name}}</h3>
      <ul>
        {{range index $.Recommendations .Name}}
        <li><strong>{{.Title}}:</strong> {{.Detail}}</li>
        {{end}}
      </ul>
    </div>
    {{end}}
  </div>
</section>

<footer>
  <p>Sample dataset generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}. Demonstration tool; for official assessments consult relevant authorities.</p>
</footer>

<script>
  const tabs = document.querySelectorAll('nav button');
  tabs.forEach(btn => btn.addEventListener('click', () => {
    tabs.forEach(b => b.classList.remove('active'));
    document.querySelectorAll('section').forEach(s => s.classList.remove('active'));
    btn.classList.add('active');
    document.getElementById(btn.dataset.tab).classList.add('active');
  }));

  const enc = encodeURIComponent;
  function refreshCrops() {
    const region = document.getElementById('crop-region').value;
    const year = document.getElementById('crop-year').value;
    document.getElementById('ndvi-chart').src = '/charts/ndvi.png?region=' + enc(region);
    document.getElementById('region-photo').src = '/regions/' + enc(region) + '/photo';
    fetch('/api/crops/health?region=' + enc(region) + '&year=' + year)
      .then(r => r.json())
      .then(d => {
        document.getElementById('crop-health').textContent =
          'Crop Health Index: ' + d.health_index.toFixed(1) + '/100 (' + d.status + ')';
      });
  }
  function refreshTrends() {
    const region = document.getElementById('trend-region').value;
    document.getElementById('temperature-chart').src = '/charts/temperature.png?region=' + enc(region);
  }
  function refreshYield() {
    const scenario = document.getElementById('yield-scenario').value;
    document.getElementById('yield-chart').src = '/charts/yield.png?scenario=' + enc(scenario);
  }
  document.getElementById('crop-region').addEventListener('change', refreshCrops);
  document.getElementById('crop-year').addEventListener('change', refreshCrops);
  document.getElementById('trend-region').addEventListener('change', refreshTrends);
  document.getElementById('yield-scenario').addEventListener('change', refreshYield);
  refreshCrops();
  refreshTrends();
  refreshYield();
</script>
</body>
</html>
`))
