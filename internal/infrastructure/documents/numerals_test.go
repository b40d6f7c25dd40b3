package documents

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "Ноль рублей 00 коп."},
		{"one ruble", "1", "Один рубль 00 коп."},
		{"two rubles", "2", "Два рубля 00 коп."},
		{"five rubles", "5", "Пять рублей 00 коп."},
		{"teens take plural", "11", "Одиннадцать рублей 00 коп."},
		{"twenty one", "21", "Двадцать один рубль 00 коп."},
		{"twenty two", "22", "Двадцать два рубля 00 коп."},
		{"hundred eleven", "111", "Сто одиннадцать рублей 00 коп."},
		{"feminine thousand", "1000", "Одна тысяча рублей 00 коп."},
		{"two thousand", "2000", "Две тысячи рублей 00 коп."},
		{"kopecks always two digits", "5.3", "Пять рублей 30 коп."},
		{"kopecks rounding", "2500.555", "Две тысячи пятьсот рублей 56 коп."},
		{"typical order total", "3475.00", "Три тысячи четыреста семьдесят пять рублей 00 коп."},
		{"million", "1000000", "Один миллион рублей 00 коп."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tc.amount)
			if err != nil {
				t.Fatalf("bad fixture: %v", err)
			}
			got, err := AmountInWords(amount)
			if err != nil {
				t.Fatalf("AmountInWords(%s): %v", tc.amount, err)
			}
			if got != tc.want {
				t.Fatalf("AmountInWords(%s) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}

	t.Run("negative amount", func(t *testing.T) {
		if _, err := AmountInWords(decimal.NewFromInt(-1)); !errors.Is(err, ErrAmountConversion) {
			t.Fatalf("expected ErrAmountConversion, got %v", err)
		}
	})

	t.Run("over a trillion", func(t *testing.T) {
		big := decimal.RequireFromString("1000000000000")
		if _, err := AmountInWords(big); !errors.Is(err, ErrAmountConversion) {
			t.Fatalf("expected ErrAmountConversion, got %v", err)
		}
	})
}

func TestPluralForm(t *testing.T) {
	forms := [3]string{"рубль", "рубля", "рублей"}
	cases := map[int64]string{
		1: "рубль", 2: "рубля", 4: "рубля", 5: "рублей",
		11: "рублей", 12: "рублей", 19: "рублей",
		21: "рубль", 24: "рубля", 25: "рублей",
		101: "рубль", 111: "рублей", 121: "рубль",
	}
	for n, want := range cases {
		if got := pluralForm(n, forms); got != want {
			t.Fatalf("pluralForm(%d) = %q, want %q", n, got, want)
		}
	}
}
