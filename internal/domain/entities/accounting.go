package entities

import "time"

// AccountingRecord is one row per finalized order. It is appended to the
// category's own ledger and, projected into a slightly different column set,
// to the consolidated ledger. Append-only: no update or delete path exists.

type AccountingRecord struct {
	CategoryID   string
	CategoryName string
	CreatedAt    time.Time
	OrderDate    time.Time
	OrderNumber  string
	LicensePlate string
	Workers      string
	WorkCount    int
	TotalHours   float64
	ExcelFile    string
	DraftFile    string
	HasPhotos    bool
}
