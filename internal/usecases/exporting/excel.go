package exporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

// maxSheetName es el límite de Excel para nombres de hoja.
const maxSheetName = 31

// Exporter genera los libros de Excel descargables de metas y avances
type Exporter interface {
	QuotaWorkbook(table *domain.QuotaTable) ([]byte, error)
	GapWorkbook(report *domain.GapReport) ([]byte, error)
}

type Service struct{}

func NewService() Exporter {
	return &Service{}
}

// QuotaWorkbook arma el libro de una tabla de metas: una sola hoja, con una
// columna por mes de la ventana.
func (s *Service) QuotaWorkbook(table *domain.QuotaTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(fmt.Sprintf("Metas %s", table.Month))
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Ejecutivo", "Supervisor", "Centro", "Estatus", "Días activo"}
	headers = append(headers, table.WindowMonths...)
	headers = append(headers, "Total ventana", "Promedio", "Meta", "Nuevo ingreso")

	rows := make([][]any, 0, len(table.Rows))
	for _, r := range table.Rows {
		row := []any{r.Executive, r.Supervisor, r.CenterKey, r.Status, r.TenureDays}
		for _, m := range table.WindowMonths {
			row = append(row, r.MonthlySales[m])
		}
		row = append(row, r.TotalSales, utils.RoundWithTwoDecimalPlace(r.RollingAverage), r.Quota, boolMark(r.IsNewHire))
		rows = append(rows, row)
	}

	if err := writeSheet(f, sheet, headers, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GapWorkbook arma el libro del reporte de avance: una hoja por nivel de
// agregación.
func (s *Service) GapWorkbook(report *domain.GapReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	execSheet := sheetName("Ejecutivos")
	f.SetSheetName("Sheet1", execSheet)

	execHeaders := []string{
		"Ejecutivo", "Supervisor", "Centro", "Días activo",
		"Hechas", "En tránsito", "Total", "Meta", "Gap",
		"Tasa diaria mes", "Tasa diaria desde hoy", "Esperado a hoy", "Al corriente",
	}
	execRows := make([][]any, 0, len(report.Rows))
	for _, r := range report.Rows {
		execRows = append(execRows, []any{
			r.Executive, r.Supervisor, r.CenterKey, r.TenureDays,
			r.Completed, r.InTransit, r.Total, r.Quota, r.Gap,
			utils.RoundWithTwoDecimalPlace(r.RequiredDailyRate),
			utils.RoundWithTwoDecimalPlace(r.RequiredDailyRateFromToday),
			r.ExpectedByToday, boolMark(r.OnTrack),
		})
	}
	if err := writeSheet(f, execSheet, execHeaders, execRows); err != nil {
		return nil, err
	}

	if err := writeRollupSheet(f, "Teams", report.ByTeam); err != nil {
		return nil, err
	}
	if err := writeRollupSheet(f, "Centros", report.ByCenter); err != nil {
		return nil, err
	}
	var global []*domain.GapRollup
	if report.Global != nil {
		global = append(global, report.Global)
	}
	if err := writeRollupSheet(f, "Global", global); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeRollupSheet(f *excelize.File, name string, rollups []*domain.GapRollup) error {
	sheet := sheetName(name)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{
		"Grupo", "Ejecutivos", "Hechas", "En tránsito", "Total", "Meta", "Gap",
		"Meta promedio", "Tasa diaria mes", "Tasa diaria desde hoy", "Esperado a hoy", "Al corriente",
	}
	rows := make([][]any, 0, len(rollups))
	for _, g := range rollups {
		rows = append(rows, []any{
			g.Group, g.Executives, g.Completed, g.InTransit, g.Total, g.Quota, g.Gap,
			utils.RoundWithTwoDecimalPlace(g.AverageQuota),
			utils.RoundWithTwoDecimalPlace(g.RequiredDailyRate),
			utils.RoundWithTwoDecimalPlace(g.RequiredDailyRateFromToday),
			g.ExpectedByToday, boolMark(g.OnTrack),
		})
	}

	return writeSheet(f, sheet, headers, rows)
}

// writeSheet escribe encabezado con estilo, filas y anchos de columna, y
// congela el primer renglón.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, name := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	lastCol, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return err
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := fitColumns(f, sheet, headers, rows); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
}

// fitColumns ajusta cada columna al contenido más largo, con tope en 55.
func fitColumns(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, header := range headers {
		maxLen := len([]rune(header))
		for _, row := range rows {
			if i >= len(row) {
				continue
			}
			if l := len([]rune(fmt.Sprintf("%v", row[i]))); l > maxLen {
				maxLen = l
			}
		}

		width := float64(maxLen + 2)
		if width > 55 {
			width = 55
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return nil
}

func sheetName(name string) string {
	runes := []rune(name)
	if len(runes) > maxSheetName {
		return string(runes[:maxSheetName])
	}
	return name
}

func boolMark(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}
