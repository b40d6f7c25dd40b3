package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"unicode/utf8"

	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

var sectionLedgerColumns = []string{
	"ID", "Дата создания", "Время создания", "Номер ЗН", "Госномер",
	"Исполнители", "Кол-во работ", "Общее время", "Файл Excel", "Файл черновика", "Фото добавлены",
}

var commonLedgerColumns = []string{
	"ID", "Дата создания", "Время создания", "Раздел", "Номер ЗН", "Госномер",
	"Исполнители", "Кол-во работ", "Общее время", "Файл Excel", "Фото добавлены",
}

// AccountingXLSXRepository appends finalized orders to two xlsx ledgers. Each
// save is a read-whole-table, append, write-whole-table pass followed by a
// cosmetic formatting pass. Writers are serialized per ledger file, so two
// finalizations in the same category cannot lose each other's row.

type AccountingXLSXRepository struct {
	layout *workspace.Layout

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ interfaces.IAccountingRepository = (*AccountingXLSXRepository)(nil)

func NewAccountingXLSXRepository(layout *workspace.Layout) *AccountingXLSXRepository {
	return &AccountingXLSXRepository{
		layout: layout,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (r *AccountingXLSXRepository) SaveOrder(_ context.Context, rec entities.AccountingRecord) error {
	cat, ok := r.layout.Category(rec.CategoryID)
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrCategoryNotFound, rec.CategoryID)
	}

	date := rec.OrderDate.Format("02.01.2006")
	clock := rec.CreatedAt.Format("15:04:05")
	photos := "НЕТ"
	if rec.HasPhotos {
		photos = "ДА"
	}

	sectionPath := r.layout.SectionLedgerPath(cat)
	sectionRow := []interface{}{
		0, date, clock, rec.OrderNumber, rec.LicensePlate,
		rec.Workers, rec.WorkCount, rec.TotalHours, rec.ExcelFile, rec.DraftFile, photos,
	}
	id, err := r.appendRow(sectionPath, sectionLedgerColumns, sectionRow)
	if err != nil {
		return fmt.Errorf("append to category ledger %s: %w", sectionPath, err)
	}

	commonPath := r.layout.CommonLedgerPath()
	commonRow := []interface{}{
		0, date, clock, rec.CategoryName, rec.OrderNumber, rec.LicensePlate,
		rec.Workers, rec.WorkCount, rec.TotalHours, rec.ExcelFile, photos,
	}
	if _, err := r.appendRow(commonPath, commonLedgerColumns, commonRow); err != nil {
		return fmt.Errorf("append to consolidated ledger %s: %w", commonPath, err)
	}

	log.Printf("[accounting] order saved: category=%s id=%d photos=%s", rec.CategoryID, id, photos)
	return nil
}

// appendRow rewrites path with the existing rows plus one, assigning the new
// row's first cell the next sequential identifier. A missing or corrupt file
// starts over as an empty table with the canonical column set.
func (r *AccountingXLSXRepository) appendRow(path string, columns []string, row []interface{}) (int, error) {
	lock := r.ledgerLock(path)
	lock.Lock()
	defer lock.Unlock()

	existing := readLedgerRows(path, columns)
	row[0] = len(existing) + 1

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, err
	}
	for i, old := range existing {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &old); err != nil {
			return 0, err
		}
	}
	cell, _ := excelize.CoordinatesToCellName(1, len(existing)+2)
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return 0, err
	}

	if err := r.applyLedgerFormatting(f, sheet, columns, len(existing)+1); err != nil {
		return 0, err
	}
	if err := f.SaveAs(path); err != nil {
		return 0, err
	}
	return len(existing) + 1, nil
}

// numericLedgerColumns are the columns whose cells round-trip as numbers.
// Everything else stays text: order numbers in particular keep their leading
// zeros.
var numericLedgerColumns = map[string]bool{
	"ID":           true,
	"Кол-во работ": true,
	"Общее время":  true,
}

// readLedgerRows returns the data rows (header excluded), re-typing only the
// genuinely numeric columns.
func readLedgerRows(path string, columns []string) [][]interface{} {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		return nil
	}

	out := make([][]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]interface{}, len(columns))
		for i := range columns {
			switch {
			case i >= len(row):
				cells[i] = ""
			case numericLedgerColumns[columns[i]]:
				cells[i] = numericCell(row[i])
			default:
				cells[i] = row[i]
			}
		}
		out = append(out, cells)
	}
	return out
}

func numericCell(s string) interface{} {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

// applyLedgerFormatting is the cosmetic pass: content-derived column widths,
// centered wrapped cells, bold header, frozen header row.
func (r *AccountingXLSXRepository) applyLedgerFormatting(f *excelize.File, sheet string, columns []string, dataRows int) error {
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(sheet, "A1", lastCol+strconv.Itoa(dataRows+1), cellStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := columnContentWidth(f, sheet, i+1, dataRows+1, columns[i])
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func columnContentWidth(f *excelize.File, sheet string, col, rows int, header string) float64 {
	max := utf8.RuneCountInString(header)
	for row := 2; row <= rows; row++ {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			continue
		}
		if n := utf8.RuneCountInString(v); n > max {
			max = n
		}
	}
	return float64(max + 4)
}

func (r *AccountingXLSXRepository) ledgerLock(path string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[path] = lock
	}
	return lock
}
