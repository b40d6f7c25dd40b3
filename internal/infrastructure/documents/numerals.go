package documents

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrAmountConversion rejects amounts that cannot be rendered in words.
// The words line goes onto a legal document, so failing beats emitting
// unverifiable text.
var ErrAmountConversion = errors.New("amount conversion failed")

var (
	onesMasculine = []string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	onesFeminine  = []string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	teens         = []string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}
	tens = []string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
		"шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	hundreds = []string{"", "сто", "двести", "триста", "четыреста", "пятьсот",
		"шестьсот", "семьсот", "восемьсот", "девятьсот"}
)

type scale struct {
	forms    [3]string
	feminine bool
}

var scales = []scale{
	{forms: [3]string{"", "", ""}},
	{forms: [3]string{"тысяча", "тысячи", "тысяч"}, feminine: true},
	{forms: [3]string{"миллион", "миллиона", "миллионов"}},
	{forms: [3]string{"миллиард", "миллиарда", "миллиардов"}},
}

// AmountInWords renders a ruble amount, e.g. "Одна тысяча двести рублей 50
// коп.". The amount is first converted to an exact integer count of kopecks
// so no floating-point artifact can leak into the text.
func AmountInWords(amount decimal.Decimal) (string, error) {
	totalKopecks := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if totalKopecks < 0 {
		return "", fmt.Errorf("%w: negative amount %s", ErrAmountConversion, amount)
	}

	rubles := totalKopecks / 100
	kopecks := totalKopecks % 100

	words, err := numberInWords(rubles)
	if err != nil {
		return "", err
	}
	rubleWord := pluralForm(rubles, [3]string{"рубль", "рубля", "рублей"})

	return fmt.Sprintf("%s %s %02d коп.", capitalize(words), rubleWord, kopecks), nil
}

// pluralForm picks the Russian plural case for n: teens always take the
// genitive plural, a trailing 1 the nominative singular, trailing 2-4 the
// genitive singular.
func pluralForm(n int64, forms [3]string) string {
	lastTwo := n % 100
	if lastTwo >= 11 && lastTwo <= 19 {
		return forms[2]
	}
	switch n % 10 {
	case 1:
		return forms[0]
	case 2, 3, 4:
		return forms[1]
	default:
		return forms[2]
	}
}

func numberInWords(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative number %d", ErrAmountConversion, n)
	}
	if n == 0 {
		return "ноль", nil
	}
	if n >= 1_000_000_000_000 {
		return "", fmt.Errorf("%w: number too large %d", ErrAmountConversion, n)
	}

	// Split into three-digit groups, least significant first.
	var groups []int64
	for rest := n; rest > 0; rest /= 1000 {
		groups = append(groups, rest%1000)
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		sc := scales[i]
		parts = append(parts, tripleInWords(g, sc.feminine))
		if sc.forms[0] != "" {
			parts = append(parts, pluralForm(g, sc.forms))
		}
	}
	return strings.Join(parts, " "), nil
}

func tripleInWords(n int64, feminine bool) string {
	ones := onesMasculine
	if feminine {
		ones = onesFeminine
	}

	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	rest := n % 100
	switch {
	case rest >= 10 && rest <= 19:
		parts = append(parts, teens[rest-10])
	case rest > 0:
		if t := rest / 10; t > 0 {
			parts = append(parts, tens[t])
		}
		if o := rest % 10; o > 0 {
			parts = append(parts, ones[o])
		}
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
