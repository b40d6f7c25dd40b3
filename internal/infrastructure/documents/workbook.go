package documents

import (
	"errors"
	"fmt"
	"strings"

	"truckservice/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ErrGeneration wraps unexpected failures while assembling the workbook.
var ErrGeneration = errors.New("workbook generation failed")

const sheetName = "Заказ-наряд"

// numFmtMoney is the builtin "#,##0.00" format.
const numFmtMoney = 4

// workbookBuilder assembles the order workbook block by block. Every block
// returns the last row it used so the next block knows where to begin, which
// keeps the layout correct for catalogs of arbitrary length.

type workbookBuilder struct {
	f     *excelize.File
	st    wbStyles
	err   error
	rate  float64
	price func(string) float64
}

type wbStyles struct {
	center       int
	left         int
	boldCenter   int
	boldLeft     int
	bold12Center int
	bold14Center int

	// bordered table styles
	tableHeader  int
	totalsHeader int
	cellCenter   int
	cellLeft     int
	cellBoldLeft int
	money        int
	moneyBold    int
}

func newWorkbookBuilder(rate float64, price func(string) float64) (*workbookBuilder, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	b := &workbookBuilder{f: f, rate: rate, price: price}
	if err := b.createStyles(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return b, nil
}

func (b *workbookBuilder) createStyles() error {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	centerWrap := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	left := &excelize.Alignment{Horizontal: "left", Vertical: "center"}

	var err error
	mk := func(s *excelize.Style) int {
		if err != nil {
			return 0
		}
		var id int
		id, err = b.f.NewStyle(s)
		return id
	}

	b.st.center = mk(&excelize.Style{Alignment: center})
	b.st.left = mk(&excelize.Style{Alignment: left})
	b.st.boldCenter = mk(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: center})
	b.st.boldLeft = mk(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: left})
	b.st.bold12Center = mk(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}, Alignment: center})
	b.st.bold14Center = mk(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}, Alignment: center})

	b.st.tableHeader = mk(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
		Alignment: centerWrap,
		Border:    thin,
	})
	b.st.totalsHeader = mk(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EEEEEE"}},
		Alignment: centerWrap,
		Border:    thin,
	})
	b.st.cellCenter = mk(&excelize.Style{Alignment: center, Border: thin})
	b.st.cellLeft = mk(&excelize.Style{Alignment: left, Border: thin})
	b.st.cellBoldLeft = mk(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: left, Border: thin})
	b.st.money = mk(&excelize.Style{Alignment: center, Border: thin, NumFmt: numFmtMoney})
	b.st.moneyBold = mk(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: center, Border: thin, NumFmt: numFmtMoney})
	return err
}

func (b *workbookBuilder) set(cell string, value interface{}, style int) {
	if b.err != nil {
		return
	}
	if value != nil {
		b.err = b.f.SetCellValue(sheetName, cell, value)
	}
	if b.err == nil && style != 0 {
		b.err = b.f.SetCellStyle(sheetName, cell, cell, style)
	}
}

func (b *workbookBuilder) formula(cell, formula string, style int) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellFormula(sheetName, cell, formula)
	if b.err == nil && style != 0 {
		b.err = b.f.SetCellStyle(sheetName, cell, cell, style)
	}
}

func (b *workbookBuilder) merge(from, to string) {
	if b.err != nil {
		return
	}
	b.err = b.f.MergeCell(sheetName, from, to)
}

// styleRow applies the style across all six table columns of row so the
// borders cover empty cells too.
func (b *workbookBuilder) styleRow(row, style int) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), style)
}

// headerBlock stamps the contractor/customer boilerplate and vehicle fields
// from the selected header template. Returns the last row used.
func (b *workbookBuilder) headerBlock(s *entities.OrderSession, tmpl entities.HeaderTemplate) int {
	row := 1
	dateStr := s.Date.Format("02.01.2006")

	contractorName := strings.TrimPrefix(tmpl.Contractor.Company, "ИП ")
	b.merge(fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("A%d", row), "ИНДИВИДУАЛЬНЫЙ ПРЕДПРИНИМАТЕЛЬ "+contractorName, b.st.bold12Center)
	row++

	for _, line := range []string{
		fmt.Sprintf("ИНН: %s ОГРНИП: %s", tmpl.Contractor.INN, tmpl.Contractor.OGRNIP),
		tmpl.Contractor.Address,
		tmpl.Contractor.Email + " " + tmpl.Contractor.Phone,
	} {
		b.merge(fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row))
		b.set(fmt.Sprintf("A%d", row), line, b.st.center)
		row++
	}

	row++ // spacer

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("B%d", row), "ЗАКАЗ – НАРЯД №"+s.OrderNumber, b.st.bold14Center)
	row++

	for _, line := range []string{
		fmt.Sprintf("Дата и время приема заказа: %s г.", dateStr),
		fmt.Sprintf("Дата и время окончания работ: %s г.", dateStr),
	} {
		b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
		b.set(fmt.Sprintf("B%d", row), line, b.st.center)
		row++
	}

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("B%d", row), "Заказчик", b.st.boldCenter)
	row++
	for _, line := range []string{tmpl.Customer.Company, "Адрес: " + tmpl.Customer.Address} {
		b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
		b.set(fmt.Sprintf("B%d", row), line, b.st.center)
		row++
	}

	vehicle := tmpl.DefaultVehicle
	if vehicle == "" {
		vehicle = "Автомобиль"
	}
	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row))
	b.set(fmt.Sprintf("B%d", row), "Марка, модель: "+vehicle, b.st.left)
	b.set(fmt.Sprintf("E%d", row), "Двигатель №", b.st.center)
	row++

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row))
	b.set(fmt.Sprintf("B%d", row), "Государственный рег. номер: "+s.LicensePlate, b.st.boldLeft)
	b.set(fmt.Sprintf("E%d", row), "Шасси №", b.st.center)
	row++

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row))
	b.set(fmt.Sprintf("B%d", row), "VIN", b.st.left)
	b.set(fmt.Sprintf("E%d", row), "Кузов №", b.st.center)
	row++

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("B%d", row), fmt.Sprintf("Выполненные работы по заказ-наряду №%s", s.OrderNumber), b.st.boldCenter)

	return row
}

// worksBlock writes one row per selected work with a hours×qty×rate formula
// per line and a SUM formula row at the end. Returns the summary row.
func (b *workbookBuilder) worksBlock(s *entities.OrderSession, startRow int) int {
	row := startRow
	headers := []string{"№", "Наименование работ", "Норма времени", "Кол-во", "Стоимость (руб.)", "Сумма (руб.)"}
	b.styleRow(row, b.st.tableHeader)
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		b.set(cell, h, b.st.tableHeader)
	}
	if b.err == nil {
		b.err = b.f.SetRowHeight(sheetName, row, 30)
	}
	row++

	if len(s.SelectedWorks) == 0 {
		b.styleRow(row, b.st.cellCenter)
		b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
		b.set(fmt.Sprintf("B%d", row), "Работы не выбраны", b.st.cellCenter)
		row++
	} else {
		for i, w := range s.SelectedWorks {
			b.set(fmt.Sprintf("A%d", row), i+1, b.st.cellCenter)
			b.set(fmt.Sprintf("B%d", row), w.Name, b.st.cellLeft)
			b.set(fmt.Sprintf("C%d", row), w.NormHours, b.st.cellCenter)
			b.set(fmt.Sprintf("D%d", row), 1, b.st.cellCenter)
			b.set(fmt.Sprintf("E%d", row), b.rate, b.st.money)
			b.formula(fmt.Sprintf("F%d", row), fmt.Sprintf("C%d*D%d*E%d", row, row, row), b.st.money)
			row++
		}
	}

	b.styleRow(row, b.st.cellCenter)
	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("E%d", row))
	b.set(fmt.Sprintf("B%d", row), "Итого работы (руб.)", b.st.cellBoldLeft)
	if len(s.SelectedWorks) > 0 {
		b.formula(fmt.Sprintf("F%d", row), fmt.Sprintf("SUM(F%d:F%d)", startRow+1, row-1), b.st.moneyBold)
	} else {
		b.set(fmt.Sprintf("F%d", row), 0, b.st.moneyBold)
	}
	return row
}

// materialsBlock mirrors worksBlock for materials. When none were explicitly
// selected every catalog material is listed, a backward-compatibility default
// the ledgers and drafts rely on.
func (b *workbookBuilder) materialsBlock(s *entities.OrderSession, materials []string, startRow int) int {
	row := startRow

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("B%d", row), fmt.Sprintf("Расходная накладная по заказ–наряду №%s", s.OrderNumber), b.st.boldCenter)
	row++

	headers := []string{"№", "Наименование", "Единица измерения", "Кол-во", "Стоимость (руб.)", "Сумма (руб.)"}
	b.styleRow(row, b.st.tableHeader)
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		b.set(cell, h, b.st.tableHeader)
	}
	if b.err == nil {
		b.err = b.f.SetRowHeight(sheetName, row, 30)
	}
	row++
	firstDataRow := row

	for i, name := range materials {
		b.set(fmt.Sprintf("A%d", row), i+1, b.st.cellCenter)
		b.set(fmt.Sprintf("B%d", row), name, b.st.cellLeft)
		b.set(fmt.Sprintf("C%d", row), "шт.", b.st.cellCenter)
		b.set(fmt.Sprintf("D%d", row), 1, b.st.cellCenter)
		b.set(fmt.Sprintf("E%d", row), b.price(name), b.st.money)
		b.formula(fmt.Sprintf("F%d", row), fmt.Sprintf("D%d*E%d", row, row), b.st.money)
		row++
	}

	b.styleRow(row, b.st.cellCenter)
	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("E%d", row))
	b.set(fmt.Sprintf("B%d", row), "Итого запасные части (руб.)", b.st.cellBoldLeft)
	if len(materials) > 0 {
		b.formula(fmt.Sprintf("F%d", row), fmt.Sprintf("SUM(F%d:F%d)", firstDataRow, row-1), b.st.moneyBold)
	} else {
		b.set(fmt.Sprintf("F%d", row), 0, b.st.moneyBold)
	}
	return row
}

// totalsBlock references the two block totals by formula, sums them into the
// grand total and renders it in words. Returns the last row used.
func (b *workbookBuilder) totalsBlock(s *entities.OrderSession, materials []string, worksTotalRow, materialsTotalRow, startRow int) (int, error) {
	row := startRow

	b.styleRow(row, b.st.totalsHeader)
	b.set(fmt.Sprintf("A%d", row), "№", b.st.totalsHeader)
	b.set(fmt.Sprintf("B%d", row), "Наименование", b.st.totalsHeader)
	b.set(fmt.Sprintf("F%d", row), "Сумма (руб.)", b.st.totalsHeader)
	if b.err == nil {
		b.err = b.f.SetRowHeight(sheetName, row, 30)
	}
	row++

	b.styleRow(row, b.st.cellCenter)
	b.set(fmt.Sprintf("A%d", row), 1, b.st.cellCenter)
	b.set(fmt.Sprintf("B%d", row), "Работа", b.st.cellLeft)
	b.formula(fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", worksTotalRow), b.st.money)
	workRow := row
	row++

	b.styleRow(row, b.st.cellCenter)
	b.set(fmt.Sprintf("A%d", row), 2, b.st.cellCenter)
	b.set(fmt.Sprintf("B%d", row), "Запасные части", b.st.cellLeft)
	b.formula(fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", materialsTotalRow), b.st.money)
	materialsRow := row
	row++

	b.styleRow(row, b.st.cellCenter)
	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("E%d", row))
	b.set(fmt.Sprintf("B%d", row), "Всего к оплате (руб.)", b.st.cellBoldLeft)
	b.formula(fmt.Sprintf("F%d", row), fmt.Sprintf("F%d+F%d", workRow, materialsRow), b.st.moneyBold)
	row++

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("E%d", row))
	b.set(fmt.Sprintf("B%d", row), "Всего по заказ-наряду:", b.st.boldLeft)
	row++

	words, err := AmountInWords(grandTotal(s, materials, b.rate, b.price))
	if err != nil {
		return 0, err
	}
	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("B%d", row), words, b.st.boldLeft)

	return row, nil
}

func (b *workbookBuilder) footerBlock(startRow int) {
	row := startRow
	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("B%d", row),
		"Заказчик________________                МП                          Исполнитель_______________       МП",
		b.st.center)
	row += 2

	b.merge(fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row))
	b.set(fmt.Sprintf("B%d", row), "Работы выполнены с использованием запасных частей заказчика", b.st.center)
}

func (b *workbookBuilder) applyColumnWidths() {
	widths := map[string]float64{"A": 6, "B": 45, "C": 12, "D": 8, "E": 12, "F": 12}
	for col, width := range widths {
		if b.err != nil {
			return
		}
		b.err = b.f.SetColWidth(sheetName, col, col, width)
	}
}

// grandTotal computes works hours × rate plus the material prices, as an
// exact decimal. This is the value the words line must match the workbook's
// grand-total formula on.
func grandTotal(s *entities.OrderSession, materials []string, rate float64, price func(string) float64) decimal.Decimal {
	hours := decimal.Zero
	for _, w := range s.SelectedWorks {
		hours = hours.Add(decimal.NewFromFloat(w.NormHours))
	}
	total := hours.Mul(decimal.NewFromFloat(rate))
	for _, name := range materials {
		total = total.Add(decimal.NewFromFloat(price(name)))
	}
	return total
}

// buildOrderWorkbook assembles the complete workbook for a finalized session.
func buildOrderWorkbook(s *entities.OrderSession, tmpl entities.HeaderTemplate, materials []string, rate float64, price func(string) float64) (*excelize.File, error) {
	b, err := newWorkbookBuilder(rate, price)
	if err != nil {
		return nil, err
	}

	headerEnd := b.headerBlock(s, tmpl)
	worksEnd := b.worksBlock(s, headerEnd+1)
	materialsEnd := b.materialsBlock(s, materials, worksEnd+2)
	totalsEnd, err := b.totalsBlock(s, materials, worksEnd, materialsEnd, materialsEnd+2)
	if err != nil {
		b.f.Close()
		return nil, err
	}
	b.footerBlock(totalsEnd + 2)
	b.applyColumnWidths()

	if b.err != nil {
		b.f.Close()
		return nil, fmt.Errorf("%w: %v", ErrGeneration, b.err)
	}
	return b.f, nil
}
