package exporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/expcc/metas-cc-api/internal/domain"
)

func TestQuotaWorkbook(t *testing.T) {
	table := &domain.QuotaTable{
		Month:        "2026-08",
		WindowMonths: []string{"2026-05", "2026-06", "2026-07"},
		Rows: []*domain.QuotaRow{
			{
				Executive:      "ANA PEREZ",
				Supervisor:     "MARIA RUIZ",
				CenterKey:      domain.CenterJV,
				Status:         domain.StatusActive,
				TenureDays:     198,
				MonthlySales:   map[string]int{"2026-05": 0, "2026-06": 5, "2026-07": 3},
				TotalSales:     8,
				RollingAverage: 4.0,
				Quota:          7,
			},
		},
		TotalQuota: 7,
	}

	data, err := NewService().QuotaWorkbook(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Metas 2026-08"
	assert.Contains(t, f.GetSheetList(), sheet)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Ejecutivo", header)

	name, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "ANA PEREZ", name)

	// columnas de la ventana en orden, con cero explícito
	mayo, err := f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "0", mayo)

	junio, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "5", junio)

	quota, err := f.GetCellValue(sheet, "K2")
	require.NoError(t, err)
	assert.Equal(t, "7", quota)
}

func TestGapWorkbook(t *testing.T) {
	report := &domain.GapReport{
		Month: "2026-08",
		Rows: []*domain.GapRow{
			{
				Executive:  "ANA PEREZ",
				Supervisor: "MARIA RUIZ",
				CenterKey:  domain.CenterJV,
				Completed:  1,
				InTransit:  2,
				Total:      3,
				Quota:      7,
				Gap:        4,
			},
		},
		ByTeam: []*domain.GapRollup{
			{Group: "MARIA RUIZ", Executives: 1, Total: 3, Quota: 7, Gap: 4, AverageQuota: 7},
		},
		ByCenter: []*domain.GapRollup{
			{Group: domain.CenterJV, Executives: 1, Total: 3, Quota: 7, Gap: 4, AverageQuota: 7},
		},
		Global: &domain.GapRollup{Group: "GLOBAL", Executives: 1, Total: 3, Quota: 7, Gap: 4, AverageQuota: 7},
	}

	data, err := NewService().GapWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Ejecutivos")
	assert.Contains(t, sheets, "Teams")
	assert.Contains(t, sheets, "Centros")
	assert.Contains(t, sheets, "Global")

	gap, err := f.GetCellValue("Ejecutivos", "I2")
	require.NoError(t, err)
	assert.Equal(t, "4", gap)

	group, err := f.GetCellValue("Global", "A2")
	require.NoError(t, err)
	assert.Equal(t, "GLOBAL", group)
}

func TestSheetNameTruncation(t *testing.T) {
	long := "Hoja con un nombre larguísimo que excede el límite"
	assert.Len(t, []rune(sheetName(long)), maxSheetName)
	assert.Equal(t, "Global", sheetName("Global"))
}
