package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"truckservice/internal/clock"
)

var (
	ErrInvalidLicensePlate = errors.New("license plate does not match any accepted format")
	ErrInvalidDate         = errors.New("date does not match any accepted format")
	ErrDateOutOfRange      = errors.New("date is outside the accepted window")
	ErrInvalidOrderNumber  = errors.New("order number must be 1 to 10 digits")
	ErrInvalidWorkers      = errors.New("workers line is malformed")
)

// Accepted registration plate formats. The letter class is the Cyrillic
// subset that has a Latin lookalike, which is what domestic plates use.
var platePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[АВЕКМНОРСТУХ]\d{3}[АВЕКМНОРСТУХ]{2}\d{2,3}$`),
	regexp.MustCompile(`^\d{4}[АВЕКМНОРСТУХ]{2}\d{2,3}$`),
	regexp.MustCompile(`^[АВЕКМНОРСТУХ]{2}\d{3}\d{2,3}$`),
}

// latinToCyrillic maps the Latin lookalikes onto plate letters so input
// typed on either keyboard layout validates.
var latinToCyrillic = strings.NewReplacer(
	"A", "А", "B", "В", "E", "Е", "K", "К", "M", "М", "H", "Н",
	"O", "О", "P", "Р", "C", "С", "T", "Т", "Y", "У", "X", "Х",
)

var dateLayouts = []string{
	"02.01.2006", "02/01/2006", "02-01-2006",
	"2006.01.02", "2006/01/02", "2006-01-02",
}

var orderNumberPattern = regexp.MustCompile(`^\d{1,10}$`)

// workersForbidden are markup-ish characters that break the ledgers and the
// draft text when they leak into the workers line.
const workersForbidden = "<>{}[]~"

// Validator checks the free-text order fields. The date window is policy
// supplied by configuration, not a constant.
type Validator struct {
	clock         clock.Clock
	maxPastDays   int
	maxFutureDays int
}

func NewValidator(clk clock.Clock, maxPastDays, maxFutureDays int) *Validator {
	return &Validator{clock: clk, maxPastDays: maxPastDays, maxFutureDays: maxFutureDays}
}

// LicensePlate normalizes the input (trim, uppercase, Latin lookalikes to
// Cyrillic) and returns the canonical plate.
func (v *Validator) LicensePlate(input string) (string, error) {
	plate := latinToCyrillic.Replace(strings.ToUpper(strings.TrimSpace(input)))
	plate = strings.ReplaceAll(plate, " ", "")
	for _, p := range platePatterns {
		if p.MatchString(plate) {
			return plate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLicensePlate, input)
}

// Date parses the input against every accepted layout and enforces the
// configured past/future window. Comparison is by calendar day.
func (v *Validator) Date(input string) (time.Time, error) {
	input = strings.TrimSpace(input)

	var parsed time.Time
	ok := false
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			parsed = t
			ok = true
			break
		}
	}
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}

	today := truncateToDay(v.clock.Now())
	day := truncateToDay(parsed)
	if day.Before(today.AddDate(0, 0, -v.maxPastDays)) {
		return time.Time{}, fmt.Errorf("%w: %s is more than %d days in the past", ErrDateOutOfRange, input, v.maxPastDays)
	}
	if day.After(today.AddDate(0, 0, v.maxFutureDays)) {
		return time.Time{}, fmt.Errorf("%w: %s is more than %d days in the future", ErrDateOutOfRange, input, v.maxFutureDays)
	}
	return parsed, nil
}

// OrderNumber accepts 1 to 10 digits, nothing else.
func (v *Validator) OrderNumber(input string) (string, error) {
	number := strings.TrimSpace(input)
	if !orderNumberPattern.MatchString(number) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderNumber, input)
	}
	return number, nil
}

// Workers accepts a free-form line of 2 to 200 characters without markup
// characters.
func (v *Validator) Workers(input string) (string, error) {
	workers := strings.TrimSpace(input)
	if n := len([]rune(workers)); n < 2 || n > 200 {
		return "", fmt.Errorf("%w: length must be 2 to 200 characters", ErrInvalidWorkers)
	}
	if strings.ContainsAny(workers, workersForbidden) {
		return "", fmt.Errorf("%w: contains forbidden characters", ErrInvalidWorkers)
	}
	return workers, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
