package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.HourlyRate != 2500 {
		t.Errorf("expected hourly rate 2500, got %v", cfg.HourlyRate)
	}
	if cfg.PageSize != 8 {
		t.Errorf("expected page size 8, got %d", cfg.PageSize)
	}
	if cfg.CacheTTL() != time.Hour {
		t.Errorf("expected 1h cache TTL, got %v", cfg.CacheTTL())
	}
	if cfg.MaxPastDays != 30 || cfg.MaxFutureDays != 365 {
		t.Errorf("unexpected date window: -%d/+%d", cfg.MaxPastDays, cfg.MaxFutureDays)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].ID != "base" {
		t.Fatalf("expected single base category, got %+v", cfg.Categories)
	}
	if cfg.Categories[0].Name != "Типовой заказ-наряд" {
		t.Errorf("unexpected base category name %q", cfg.Categories[0].Name)
	}
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if cfg.HourlyRate != Default().HourlyRate {
		t.Errorf("expected default rate, got %v", cfg.HourlyRate)
	}
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `hourly_rate: 3000
max_past_days: 7
categories:
  - id: base
    name: Типовой заказ-наряд
    folder: Типовой_заказ
    works_file: works_list_base.xlsx
  - id: trailer
    name: Прицепы
    folder: Прицепы
    works_file: works_list_trailer.xlsx
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HourlyRate != 3000 {
		t.Errorf("expected overridden rate 3000, got %v", cfg.HourlyRate)
	}
	if cfg.MaxPastDays != 7 {
		t.Errorf("expected overridden past window 7, got %d", cfg.MaxPastDays)
	}
	// Untouched keys keep their defaults.
	if cfg.PageSize != 8 {
		t.Errorf("expected default page size, got %d", cfg.PageSize)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[1].ID != "trailer" {
		t.Fatalf("expected two categories, got %+v", cfg.Categories)
	}
}

func TestLoad_BrokenYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("hourly_rate: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_EnvRootWins(t *testing.T) {
	t.Setenv("TSM_ROOT", "/srv/truckservice")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Root != "/srv/truckservice" {
		t.Errorf("expected env root, got %q", cfg.Root)
	}
}
