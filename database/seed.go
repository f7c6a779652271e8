package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"irrig/entities"
)

// SeedCatalog loads the soil and crop catalogs from CSV into the database.
// Files are optional; a missing file just leaves the table as it is.
func SeedCatalog(db *gorm.DB, dataDir string) error {
	soilsPath := filepath.Join(dataDir, "soils.csv")
	cropsPath := filepath.Join(dataDir, "crops.csv")

	if _, err := os.Stat(soilsPath); err == nil {
		if err := seedSoils(db, soilsPath); err != nil {
			return fmt.Errorf("seed soils: %w", err)
		}
	} else {
		log.Printf("[seed] %s not found, skipping soils", soilsPath)
	}

	if _, err := os.Stat(cropsPath); err == nil {
		if err := seedCrops(db, cropsPath); err != nil {
			return fmt.Errorf("seed crops: %w", err)
		}
	} else {
		log.Printf("[seed] %s not found, skipping crops", cropsPath)
	}

	return nil
}

// csvTable reads a CSV with a normalized header map, tolerating BOMs,
// spaces, dashes and underscores in the column names.
type csvTable struct {
	cols map[string]int
	rows [][]string
}

func readCSV(path string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}

	t := &csvTable{cols: map[string]int{}}
	for i, h := range head {
		t.cols[norm(h)] = i
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

func (t *csvTable) col(aliases ...string) int {
	for _, a := range aliases {
		a = strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(a, "_", ""), " ", ""))
		if idx, ok := t.cols[a]; ok {
			return idx
		}
	}
	return -1
}

func (t *csvTable) get(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func seedSoils(db *gorm.DB, path string) error {
	t, err := readCSV(path)
	if err != nil {
		return err
	}

	cName := t.col("soil", "name")
	cWilt := t.col("theta_wilt", "wilt")
	cFC := t.col("theta_fc", "fc", "field_capacity")
	cSat := t.col("theta_sat", "sat", "saturation")
	cInfil := t.col("infil_rate_mm_h", "infil_rate", "infiltration")
	if cName == -1 || cWilt == -1 || cFC == -1 || cSat == -1 {
		return fmt.Errorf("soils.csv missing required columns (need soil, theta_wilt, theta_fc, theta_sat)")
	}

	n := 0
	for _, rec := range t.rows {
		name := t.get(rec, cName)
		if name == "" {
			continue
		}
		wilt, _ := strconv.ParseFloat(t.get(rec, cWilt), 64)
		fc, _ := strconv.ParseFloat(t.get(rec, cFC), 64)
		sat, _ := strconv.ParseFloat(t.get(rec, cSat), 64)
		infil, _ := strconv.ParseFloat(t.get(rec, cInfil), 64)
		if !(wilt <= fc && fc <= sat) {
			log.Printf("[seed] skip soil %q: wilt/fc/sat out of order", name)
			continue
		}
		row := entities.SoilProfile{Name: name, ThetaWilt: wilt, ThetaFC: fc, ThetaSat: sat, InfilRateMmH: infil}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return err
		}
		n++
	}
	log.Printf("[seed] %d soils loaded", n)
	return nil
}

func seedCrops(db *gorm.DB, path string) error {
	t, err := readCSV(path)
	if err != nil {
		return err
	}

	cName := t.col("crop", "name")
	cSpring := t.col("kc_spring")
	cSummer := t.col("kc_summer")
	cFall := t.col("kc_fall", "kc_winter")
	cZr := t.col("zr_mm", "root_depth_mm", "root_depth")
	cBMin := t.col("band_min_offset", "band_min")
	cBMax := t.col("band_max_offset", "band_max")
	if cName == -1 || cSpring == -1 || cSummer == -1 || cFall == -1 || cZr == -1 {
		return fmt.Errorf("crops.csv missing required columns (need crop, kc_spring, kc_summer, kc_fall, zr_mm)")
	}

	n := 0
	for _, rec := range t.rows {
		name := t.get(rec, cName)
		if name == "" {
			continue
		}
		row := entities.CropProfile{Name: name}
		row.KcSpring, _ = strconv.ParseFloat(t.get(rec, cSpring), 64)
		row.KcSummer, _ = strconv.ParseFloat(t.get(rec, cSummer), 64)
		row.KcFall, _ = strconv.ParseFloat(t.get(rec, cFall), 64)
		row.ZrMm, _ = strconv.ParseFloat(t.get(rec, cZr), 64)
		row.BandMinOffset = -0.05
		row.BandMaxOffset = 0.02
		if v := t.get(rec, cBMin); v != "" {
			row.BandMinOffset, _ = strconv.ParseFloat(v, 64)
		}
		if v := t.get(rec, cBMax); v != "" {
			row.BandMaxOffset, _ = strconv.ParseFloat(v, 64)
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return err
		}
		n++
	}
	log.Printf("[seed] %d crops loaded", n)
	return nil
}
