package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"truckservice/internal/domain/entities"
	"truckservice/internal/usecase/interfaces"
)

// HeaderTemplateJSONRepository keeps one JSON file per header template under
// the templates dir. When the folder holds none, the two built-in defaults
// are written out so the engine always has a header to stamp.

type HeaderTemplateJSONRepository struct {
	dir string

	mu        sync.RWMutex
	templates map[string]entities.HeaderTemplate
}

var _ interfaces.IHeaderTemplateRepository = (*HeaderTemplateJSONRepository)(nil)

func NewHeaderTemplateJSONRepository(dir string) (*HeaderTemplateJSONRepository, error) {
	r := &HeaderTemplateJSONRepository{dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads every template file; broken files are skipped with a log
// line, not fatal.
func (r *HeaderTemplateJSONRepository) Reload() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create header templates dir %s: %w", r.dir, err)
	}

	files, err := filepath.Glob(filepath.Join(r.dir, "*.json"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	templates := make(map[string]entities.HeaderTemplate)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Printf("[templates] read %s failed: %v", file, err)
			continue
		}
		var t entities.HeaderTemplate
		if err := json.Unmarshal(data, &t); err != nil || t.ID == "" {
			log.Printf("[templates] skip broken template %s: %v", file, err)
			continue
		}
		templates[t.ID] = t
	}

	r.mu.Lock()
	r.templates = templates
	r.mu.Unlock()

	if len(templates) == 0 {
		return r.createDefaults()
	}
	log.Printf("[templates] loaded %d header templates", len(templates))
	return nil
}

func (r *HeaderTemplateJSONRepository) createDefaults() error {
	for _, t := range defaultHeaderTemplates() {
		if err := r.Save(t); err != nil {
			return fmt.Errorf("create default template %s: %w", t.ID, err)
		}
	}
	log.Printf("[templates] created %d default header templates", len(defaultHeaderTemplates()))
	return nil
}

func (r *HeaderTemplateJSONRepository) List() []entities.HeaderTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]entities.HeaderTemplate, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.templates[id])
	}
	return out
}

func (r *HeaderTemplateJSONRepository) Get(id string) (entities.HeaderTemplate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	return t, ok
}

func (r *HeaderTemplateJSONRepository) Save(t entities.HeaderTemplate) error {
	if t.ID == "" {
		return fmt.Errorf("header template without id")
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.dir, t.ID+".json"), data, 0o644); err != nil {
		return err
	}

	r.mu.Lock()
	r.templates[t.ID] = t
	r.mu.Unlock()
	return nil
}

func (r *HeaderTemplateJSONRepository) Delete(id string) error {
	if err := os.Remove(filepath.Join(r.dir, id+".json")); err != nil && !os.IsNotExist(err) {
		return err
	}
	r.mu.Lock()
	delete(r.templates, id)
	r.mu.Unlock()
	return nil
}

func defaultHeaderTemplates() []entities.HeaderTemplate {
	contractor := entities.Contractor{
		Company: "ИП Айрапетян Кристина Тиграновна",
		Address: "600033, Владимирская обл., г. Владимир, ул. Сущевская, д. 7, кв. 152",
		INN:     "234206956031",
		OGRNIP:  "321332800018501",
		Email:   "airanetan93@gmail.com",
		Phone:   "+79190130122",
	}
	return []entities.HeaderTemplate{
		{
			ID:   "bridge_town",
			Name: "Бриджтаун Фудс",
			Customer: entities.Party{
				Company: "ЗАО «Бриджтаун Фудс»",
				Address: "600026, г. Владимир, ул. Куйбышева д. 3",
			},
			Contractor:     contractor,
			DefaultVehicle: "Mercedes-Benz MP4",
		},
		{
			ID:   "company_a",
			Name: "Компания А",
			Customer: entities.Party{
				Company: "ООО «Компания А»",
				Address: "г. Москва, ул. Ленина д. 1",
			},
			Contractor:     contractor,
			DefaultVehicle: "Грузовой автомобиль",
		},
	}
}
