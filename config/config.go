package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	Timezone     string
	DBPath       string
	DataDir      string
	PumpQmaxLPM  float64
	WindowStart  string
	WindowEnd    string
	SlotMinutes  int
	SolverBudget float64 // seconds, exact scheduler wall-clock budget
	SafetyMm     float64
	WeatherURL   string // Open-Meteo style endpoint; empty = synthetic only
	Latitude     float64
	Longitude    float64
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getF := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	getI := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}

	cfg := AppConfig{
		Port:         get("PORT", "8080"),
		Timezone:     get("TZ", "UTC"),
		DBPath:       get("DB_PATH", "irrig.db"),
		DataDir:      get("DATA_DIR", "data"),
		PumpQmaxLPM:  getF("PUMP_QMAX_LPM", 250),
		WindowStart:  get("WINDOW_START", "02:00"),
		WindowEnd:    get("WINDOW_END", "06:00"),
		SlotMinutes:  getI("SLOT_MINUTES", 5),
		SolverBudget: getF("SOLVER_BUDGET_SEC", 10),
		SafetyMm:     getF("SAFETY_MARGIN_MM", 1.0),
		WeatherURL:   get("WEATHER_URL", ""),
		Latitude:     getF("LATITUDE", 0),
		Longitude:    getF("LONGITUDE", 0),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
