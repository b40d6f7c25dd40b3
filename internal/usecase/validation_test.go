package usecase

import (
	"errors"
	"testing"
	"time"

	"truckservice/internal/clock"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return NewValidator(clock.NewFixed(testNow), 30, 365)
}

func TestValidator_LicensePlate(t *testing.T) {
	v := newTestValidator()

	t.Run("accepts standard formats", func(t *testing.T) {
		for _, input := range []string{
			"А123ВС77",
			"А123ВС777",
			"1234АВ77",
			"АВ12377",
			"а123вс77",
			" А123ВС77 ",
		} {
			if _, err := v.LicensePlate(input); err != nil {
				t.Fatalf("expected %q to validate, got %v", input, err)
			}
		}
	})

	t.Run("normalizes latin lookalikes", func(t *testing.T) {
		plate, err := v.LicensePlate("A123BC77")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plate != "А123ВС77" {
			t.Fatalf("expected cyrillic plate, got %q", plate)
		}
	})

	t.Run("rejects malformed plates", func(t *testing.T) {
		for _, input := range []string{
			"",
			"123",
			"Ж123ВС77",
			"А123ВС7",
			"А123ВС7777",
			"ABC123",
		} {
			if _, err := v.LicensePlate(input); !errors.Is(err, ErrInvalidLicensePlate) {
				t.Fatalf("expected ErrInvalidLicensePlate for %q, got %v", input, err)
			}
		}
	})
}

func TestValidator_Date(t *testing.T) {
	v := newTestValidator()

	t.Run("accepts every layout", func(t *testing.T) {
		for _, input := range []string{
			"15.06.2025",
			"15/06/2025",
			"15-06-2025",
			"2025.06.15",
			"2025/06/15",
			"2025-06-15",
		} {
			d, err := v.Date(input)
			if err != nil {
				t.Fatalf("expected %q to parse, got %v", input, err)
			}
			if d.Day() != 15 || d.Month() != time.June || d.Year() != 2025 {
				t.Fatalf("wrong date parsed from %q: %v", input, d)
			}
		}
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		for _, input := range []string{"", "not a date", "31.02.2025", "15.06.25"} {
			if _, err := v.Date(input); !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate for %q, got %v", input, err)
			}
		}
	})

	t.Run("enforces the window", func(t *testing.T) {
		if _, err := v.Date("16.05.2025"); err != nil {
			t.Fatalf("date exactly 30 days back should pass, got %v", err)
		}
		if _, err := v.Date("15.05.2025"); !errors.Is(err, ErrDateOutOfRange) {
			t.Fatalf("expected ErrDateOutOfRange for 31 days back, got %v", err)
		}
		if _, err := v.Date("01.01.2024"); !errors.Is(err, ErrDateOutOfRange) {
			t.Fatalf("expected ErrDateOutOfRange for far past, got %v", err)
		}
		if _, err := v.Date("01.01.2027"); !errors.Is(err, ErrDateOutOfRange) {
			t.Fatalf("expected ErrDateOutOfRange for far future, got %v", err)
		}
	})
}

func TestValidator_OrderNumber(t *testing.T) {
	v := newTestValidator()

	for _, input := range []string{"1", "0042", "1234567890"} {
		if _, err := v.OrderNumber(input); err != nil {
			t.Fatalf("expected %q to validate, got %v", input, err)
		}
	}
	for _, input := range []string{"", "12345678901", "12a", "-5", "1.5"} {
		if _, err := v.OrderNumber(input); !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber for %q, got %v", input, err)
		}
	}
}

func TestValidator_Workers(t *testing.T) {
	v := newTestValidator()

	if _, err := v.Workers("Иванов И.И., Петров П.П."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	long := make([]rune, 201)
	for i := range long {
		long[i] = 'а'
	}
	for _, input := range []string{"", "x", string(long), "Иванов <скрипт>"} {
		if _, err := v.Workers(input); !errors.Is(err, ErrInvalidWorkers) {
			t.Fatalf("expected ErrInvalidWorkers for %q, got %v", input, err)
		}
	}
}
