package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"truckservice/internal/infrastructure/cache"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// The fixed price table. Order matters: it doubles as the fallback material
// list when the source file is absent.
var defaultMaterials = []struct {
	Name  string
	Price float64
}{
	{"ВД-40", 375},
	{"Перчатки", 95},
	{"Смазка", 210},
	{"Диск отрезной", 120},
}

// MaterialsXLSXRepository loads the global material list from the templates
// dir, cached under the fixed "materials" key.

type MaterialsXLSXRepository struct {
	layout *workspace.Layout
	cache  *cache.Store
	prices map[string]float64
}

var _ interfaces.IMaterialsRepository = (*MaterialsXLSXRepository)(nil)

func NewMaterialsXLSXRepository(layout *workspace.Layout, store *cache.Store) *MaterialsXLSXRepository {
	prices := make(map[string]float64, len(defaultMaterials))
	for _, m := range defaultMaterials {
		prices[m.Name] = m.Price
	}
	return &MaterialsXLSXRepository{layout: layout, cache: store, prices: prices}
}

func (r *MaterialsXLSXRepository) GetMaterials(_ context.Context) ([]string, error) {
	const cacheKey = "materials"
	cacheDir := r.layout.MaterialsCacheDir()

	if payload, hit := r.cache.Get(cacheDir, cacheKey); hit {
		var materials []string
		if err := json.Unmarshal(payload, &materials); err == nil {
			return materials, nil
		}
	}

	materials := r.loadFromSource()

	if payload, err := json.Marshal(materials); err == nil {
		r.cache.Put(cacheDir, cacheKey, payload)
	}
	return materials, nil
}

func (r *MaterialsXLSXRepository) loadFromSource() []string {
	path := r.layout.MaterialsFilePath()
	materials, err := readMaterialsFile(path)
	if err != nil {
		log.Printf("[materials] load %s failed, using defaults: %v", path, err)
		return r.fallback()
	}
	log.Printf("[materials] loaded %d materials", len(materials))
	return materials
}

func (r *MaterialsXLSXRepository) fallback() []string {
	names := make([]string, 0, len(defaultMaterials))
	for _, m := range defaultMaterials {
		names = append(names, m.Name)
	}
	return names
}

// readMaterialsFile parses a one-column material list; the first row is a
// header and blank names are skipped.
func readMaterialsFile(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	var materials []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			materials = append(materials, name)
		}
	}
	return materials, nil
}

func (r *MaterialsXLSXRepository) GetMaterialPrice(name string) float64 {
	return r.prices[name]
}
