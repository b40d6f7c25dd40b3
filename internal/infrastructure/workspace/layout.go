package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"truckservice/internal/config"
	"truckservice/internal/domain/entities"
)

// Folder and file names the whole engine depends on. They match the layout
// the operators already have on disk, so they are not translated.
const (
	TemplatesDir        = "Шаблоны"
	HeaderTemplatesDir  = "header_templates"
	OrdersDir           = "Заказы"
	AccountingDir       = "Учет"
	PhotosDir           = "Фото"
	CacheDir            = "cache"
	CommonAccountingDir = "Общий_учет"
	CustomListsDir      = "Пользовательские_списки"

	MaterialsFile     = "list_materials.xlsx"
	SectionLedgerFile = "учет_заказов.xlsx"
	CommonLedgerFile  = "главная_база.xlsx"
)

// Layout owns the on-disk folder tree and the category registry. Standard
// categories come from configuration; custom (user-defined) lists register at
// runtime and live under their own subtree.

type Layout struct {
	root string

	mu         sync.RWMutex
	categories map[string]entities.Category
	order      []string
}

// New builds the layout and creates every folder the engine writes into.
func New(cfg config.Config) (*Layout, error) {
	l := &Layout{
		root:       cfg.Root,
		categories: make(map[string]entities.Category),
	}

	essential := []string{
		l.root,
		filepath.Join(l.root, TemplatesDir),
		filepath.Join(l.root, TemplatesDir, HeaderTemplatesDir),
		filepath.Join(l.root, CommonAccountingDir),
		filepath.Join(l.root, CustomListsDir),
		filepath.Join(l.root, CustomListsDir, AccountingDir),
	}
	for _, dir := range essential {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create workspace folder %s: %w", dir, err)
		}
	}

	for _, cc := range cfg.Categories {
		cat := entities.Category{
			ID:        cc.ID,
			Name:      cc.Name,
			Folder:    filepath.Join(l.root, cc.Folder),
			WorksFile: cc.WorksFile,
		}
		if err := l.createCategoryTree(cat.Folder); err != nil {
			return nil, err
		}
		l.categories[cat.ID] = cat
		l.order = append(l.order, cat.ID)
	}
	l.discoverCustomLists()

	return l, nil
}

func (l *Layout) createCategoryTree(folder string) error {
	for _, sub := range []string{"", OrdersDir, AccountingDir, PhotosDir, CacheDir} {
		if err := os.MkdirAll(filepath.Join(folder, sub), 0o755); err != nil {
			return fmt.Errorf("create category folder %s: %w", filepath.Join(folder, sub), err)
		}
	}
	return nil
}

// discoverCustomLists re-registers custom lists already present on disk from
// a previous run.
func (l *Layout) discoverCustomLists() {
	base := filepath.Join(l.root, CustomListsDir)
	dirEntries, err := os.ReadDir(base)
	if err != nil {
		return
	}
	for _, de := range dirEntries {
		if !de.IsDir() || de.Name() == AccountingDir {
			continue
		}
		cat := l.customCategory(de.Name())
		l.categories[cat.ID] = cat
		l.order = append(l.order, cat.ID)
	}
}

func (l *Layout) customCategory(name string) entities.Category {
	return entities.Category{
		ID:        entities.CatchAllCategoryID + "_" + name,
		Name:      name,
		Folder:    filepath.Join(l.root, CustomListsDir, name),
		WorksFile: "works_list_" + strings.ToLower(name) + ".xlsx",
		Custom:    true,
	}
}

// RegisterCustom creates a user-defined category and its folder tree. The
// returned category's ID carries the custom_ prefix used by inbound events.
func (l *Layout) RegisterCustom(name string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, fmt.Errorf("empty custom list name")
	}

	cat := l.customCategory(name)
	if err := l.createCategoryTree(cat.Folder); err != nil {
		return entities.Category{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.categories[cat.ID]; !exists {
		l.order = append(l.order, cat.ID)
	}
	l.categories[cat.ID] = cat
	return cat, nil
}

// Category resolves a category id, standard or custom.
func (l *Layout) Category(id string) (entities.Category, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cat, ok := l.categories[id]
	return cat, ok
}

// Categories lists every registered category in registration order.
func (l *Layout) Categories() []entities.Category {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entities.Category, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.categories[id])
	}
	return out
}

func (l *Layout) Root() string { return l.root }

// TemplatesPath is the root holding catalog source files.
func (l *Layout) TemplatesPath() string {
	return filepath.Join(l.root, TemplatesDir)
}

func (l *Layout) HeaderTemplatesPath() string {
	return filepath.Join(l.root, TemplatesDir, HeaderTemplatesDir)
}

// WorksFilePath locates the category's work catalog source. Standard
// categories keep their file in the shared templates dir, custom lists carry
// it inside their own folder.
func (l *Layout) WorksFilePath(cat entities.Category) string {
	if cat.Custom {
		return filepath.Join(cat.Folder, cat.WorksFile)
	}
	return filepath.Join(l.root, TemplatesDir, cat.WorksFile)
}

func (l *Layout) MaterialsFilePath() string {
	return filepath.Join(l.root, TemplatesDir, MaterialsFile)
}

func (l *Layout) CacheDirFor(cat entities.Category) string {
	return filepath.Join(cat.Folder, CacheDir)
}

// MaterialsCacheDir is the root-level cache folder for the shared material
// list.
func (l *Layout) MaterialsCacheDir() string {
	return filepath.Join(l.root, CacheDir)
}

func (l *Layout) OrdersDirFor(cat entities.Category) string {
	return filepath.Join(cat.Folder, OrdersDir)
}

func (l *Layout) PhotosDirFor(cat entities.Category) string {
	return filepath.Join(cat.Folder, PhotosDir)
}

// SectionLedgerPath returns the per-category ledger file. Custom categories
// share the catch-all ledger under the custom-lists tree.
func (l *Layout) SectionLedgerPath(cat entities.Category) string {
	if cat.Custom {
		return filepath.Join(l.root, CustomListsDir, AccountingDir, SectionLedgerFile)
	}
	return filepath.Join(cat.Folder, AccountingDir, SectionLedgerFile)
}

func (l *Layout) CommonLedgerPath() string {
	return filepath.Join(l.root, CommonAccountingDir, CommonLedgerFile)
}
