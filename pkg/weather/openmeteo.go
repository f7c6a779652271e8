package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"irrig/entities"
)

type openMeteo struct {
	endpoint string
	lat, lon float64
}

// NewOpenMeteo builds a Source against an Open-Meteo compatible endpoint.
func NewOpenMeteo(endpoint string, lat, lon float64) Source {
	return &openMeteo{endpoint: endpoint, lat: lat, lon: lon}
}

func (c *openMeteo) Forecast(date time.Time) (entities.ForecastSnapshot, error) {
	day := date.Format("2006-01-02")
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&daily=precipitation_sum,et0_fao_evapotranspiration&start_date=%s&end_date=%s&timezone=UTC",
		strings.TrimRight(c.endpoint, "/"), c.lat, c.lon, day, day,
	)

	httpc := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpc.Get(url)
	if err != nil {
		return entities.ForecastSnapshot{}, fmt.Errorf("weather api: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return entities.ForecastSnapshot{}, fmt.Errorf("weather api: status %d", resp.StatusCode)
	}

	var out struct {
		Daily struct {
			Time          []string  `json:"time"`
			Precipitation []float64 `json:"precipitation_sum"`
			ET0           []float64 `json:"et0_fao_evapotranspiration"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entities.ForecastSnapshot{}, fmt.Errorf("weather api: decode: %w", err)
	}
	if len(out.Daily.Precipitation) == 0 || len(out.Daily.ET0) == 0 {
		return entities.ForecastSnapshot{}, fmt.Errorf("weather api: empty daily series for %s", day)
	}

	return Spread(date, out.Daily.Precipitation[0], out.Daily.ET0[0]), nil
}
