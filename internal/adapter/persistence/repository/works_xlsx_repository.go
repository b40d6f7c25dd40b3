package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/cache"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// Built-in catalog used when a category's source file is missing or broken.
var defaultWorks = map[string][]entities.WorkItem{
	"base": {
		{Name: "Осмотр ТС", NormHours: 0.4},
		{Name: "Замена нижней накладки правой фары", NormHours: 0.6},
		{Name: "Замена верхней накладки правой фары", NormHours: 0.8},
		{Name: "Замена нижней накладки левой фары", NormHours: 0.6},
		{Name: "Замена верхней накладки левой фары", NormHours: 0.8},
		{Name: "Замена правой подножки", NormHours: 1.4},
		{Name: "Замена левой подножки", NormHours: 1.4},
		{Name: "Замена накладки правой подножки", NormHours: 0.2},
		{Name: "Замена накладки левой подножки", NormHours: 0.2},
		{Name: "Замена лючка правой подножки", NormHours: 0.4},
	},
}

// WorksXLSXRepository loads category work catalogs from xlsx source files
// under the templates dir, write-through cached per category.

type WorksXLSXRepository struct {
	layout *workspace.Layout
	cache  *cache.Store
}

var _ interfaces.IWorksRepository = (*WorksXLSXRepository)(nil)

func NewWorksXLSXRepository(layout *workspace.Layout, store *cache.Store) *WorksXLSXRepository {
	return &WorksXLSXRepository{layout: layout, cache: store}
}

func (r *WorksXLSXRepository) GetWorks(_ context.Context, categoryID string) ([]entities.WorkItem, error) {
	cat, ok := r.layout.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrCategoryNotFound, categoryID)
	}

	cacheKey := categoryID + "_works"
	cacheDir := r.layout.CacheDirFor(cat)

	if payload, hit := r.cache.Get(cacheDir, cacheKey); hit {
		var works []entities.WorkItem
		if err := json.Unmarshal(payload, &works); err == nil {
			return works, nil
		}
	}

	works := r.loadFromSource(cat)

	if payload, err := json.Marshal(works); err == nil {
		r.cache.Put(cacheDir, cacheKey, payload)
	}
	return works, nil
}

func (r *WorksXLSXRepository) loadFromSource(cat entities.Category) []entities.WorkItem {
	path := r.layout.WorksFilePath(cat)
	works, err := ReadWorksFile(path)
	if err != nil {
		log.Printf("[works] load %s failed, using defaults: %v", path, err)
		return defaultWorks[cat.ID]
	}
	log.Printf("[works] loaded %d works for category %s", len(works), cat.ID)
	return works
}

// ReadWorksFile parses a two-column (name, norm-hours) catalog file. The
// first row is a header. Rows missing either cell, or whose hours do not
// parse as a positive number, are skipped rather than fatal.
func ReadWorksFile(path string) ([]entities.WorkItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseWorksBook(f)
}

// ReadWorksBook parses an uploaded catalog workbook from memory. Same format
// and row rules as ReadWorksFile.
func ReadWorksBook(r io.Reader) ([]entities.WorkItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseWorksBook(f)
}

func parseWorksBook(f *excelize.File) ([]entities.WorkItem, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	var works []entities.WorkItem
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		hours, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(row[1]), ",", "."), 64)
		if name == "" || err != nil || hours <= 0 {
			continue
		}
		works = append(works, entities.WorkItem{Name: name, NormHours: hours})
	}
	return works, nil
}

func (r *WorksXLSXRepository) SaveWorks(_ context.Context, categoryID string, works []entities.WorkItem) error {
	cat, ok := r.layout.Category(categoryID)
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrCategoryNotFound, categoryID)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Наименование работ", "Норма времени"}); err != nil {
		return fmt.Errorf("write works header: %w", err)
	}
	for i, w := range works {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{w.Name, w.NormHours}); err != nil {
			return fmt.Errorf("write works row %d: %w", i+1, err)
		}
	}

	path := r.layout.WorksFilePath(cat)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save works file %s: %w", path, err)
	}

	r.cache.Invalidate(r.layout.CacheDirFor(cat), categoryID+"_works")
	return nil
}
