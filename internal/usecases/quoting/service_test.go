package quoting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/expcc/metas-cc-api/infrastructure/repository/mocks"
	"github.com/expcc/metas-cc-api/internal/config"
	"github.com/expcc/metas-cc-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Metas: config.Metas{
			WindowMonths:     3,
			MinTenureDays:    41,
			NewHireDayCutoff: 9,
		},
	}
}

func TestBuildQuotaTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepository(ctrl)

	hire := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	profiles := []*domain.EmployeeProfile{
		{Name: "ANA PEREZ", Supervisor: "MARIA RUIZ", Status: domain.StatusActive, HireDate: &hire},
		{Name: "CARLA DIAZ", Supervisor: "MARIA RUIZ", Status: domain.StatusBaja, HireDate: &hire},
	}

	sales := []*domain.SaleRecord{
		saleOn("ANA PEREZ", 2026, time.June, 3),
		saleOn("ANA PEREZ", 2026, time.June, 17),
		saleOn("ANA PEREZ", 2026, time.July, 8),
		saleOn("ANA PEREZ", 2026, time.August, 4),
		saleOn("LUIS SOTO", 2026, time.August, 12),
		saleOn("CARLA DIAZ", 2026, time.August, 20),
	}

	saleRepo.EXPECT().
		ListMonthKeys().
		Return([]string{"2026-05", "2026-06", "2026-07", "2026-08"}, nil)
	saleRepo.EXPECT().
		ListByDateRange(gomock.Any(), gomock.Any()).
		Return(sales, 2, nil)
	employeeRepo.EXPECT().
		ListProfiles().
		Return(profiles, nil)

	service := NewService(testConfig(), saleRepo, employeeRepo)

	table, err := service.BuildQuotaTable("2026-08")
	require.NoError(t, err)

	assert.Equal(t, "2026-08", table.Month)
	assert.Equal(t, []string{"2026-05", "2026-06", "2026-07"}, table.WindowMonths)
	assert.Equal(t, 2, table.SkippedRecords)
	require.Len(t, table.Rows, 3)

	byName := make(map[string]*domain.QuotaRow)
	for _, row := range table.Rows {
		byName[row.Executive] = row
	}

	ana := byName["ANA PEREZ"]
	require.NotNil(t, ana)
	assert.Equal(t, "MARIA RUIZ", ana.Supervisor)
	assert.Equal(t, domain.StatusActive, ana.Status)
	assert.Equal(t, map[string]int{"2026-05": 0, "2026-06": 2, "2026-07": 1}, ana.MonthlySales)
	assert.Equal(t, 1.5, ana.RollingAverage)
	assert.False(t, ana.NoActiveMonths)
	assert.Equal(t, 7, ana.Quota)
	assert.False(t, ana.IsNewHire)

	// sin perfil de nómina: supervisor BAJA y primera venta como inicio
	luis := byName["LUIS SOTO"]
	require.NotNil(t, luis)
	assert.Equal(t, domain.StatusBaja, luis.Supervisor)
	assert.Equal(t, domain.StatusActive, luis.Status)
	assert.Equal(t, 0, luis.TenureDays)
	assert.Equal(t, 6, luis.Quota)
	assert.True(t, luis.IsNewHire)
	assert.True(t, luis.NoActiveMonths)

	carla := byName["CARLA DIAZ"]
	require.NotNil(t, carla)
	assert.Equal(t, domain.StatusBaja, carla.Status)
	assert.Equal(t, 0, carla.Quota)

	assert.Equal(t, 13, table.TotalQuota)
}

func TestBuildQuotaTableDuplicateProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepository(ctrl)

	// Nómina trae a la misma persona repetida: gana la fecha de ingreso más
	// antigua y una fila sin fecha no pisa a las que sí la traen
	earliest := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	profiles := []*domain.EmployeeProfile{
		{Name: "ANA PEREZ", Supervisor: "MARIA RUIZ", Status: domain.StatusActive, HireDate: &earliest},
		{Name: "ANA PEREZ", Supervisor: "JUAN LARA", Status: domain.StatusActive, HireDate: &later},
		{Name: "ANA PEREZ", Status: domain.StatusActive},
	}

	sales := []*domain.SaleRecord{
		saleOn("ANA PEREZ", 2026, time.July, 5),
		saleOn("ANA PEREZ", 2026, time.August, 4),
	}

	saleRepo.EXPECT().
		ListMonthKeys().
		Return([]string{"2026-07", "2026-08"}, nil)
	saleRepo.EXPECT().
		ListByDateRange(gomock.Any(), gomock.Any()).
		Return(sales, 0, nil)
	employeeRepo.EXPECT().
		ListProfiles().
		Return(profiles, nil)

	service := NewService(testConfig(), saleRepo, employeeRepo)

	table, err := service.BuildQuotaTable("2026-08")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	ana := table.Rows[0]
	assert.Equal(t, "MARIA RUIZ", ana.Supervisor)
	assert.Equal(t, 92, ana.TenureDays)
	assert.False(t, ana.IsNewHire)
	assert.Equal(t, 7, ana.Quota)
}

func TestBuildQuotaTableInvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepository(ctrl)

	service := NewService(testConfig(), saleRepo, employeeRepo)

	_, err := service.BuildQuotaTable("2026-13")
	assert.Error(t, err)
}

func TestSimulateQuotas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepository(ctrl)

	hire := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	profiles := []*domain.EmployeeProfile{
		{Name: "ANA PEREZ", Supervisor: "MARIA RUIZ", Status: domain.StatusActive, HireDate: &hire},
		{Name: "LUIS SOTO", Supervisor: "MARIA RUIZ", Status: domain.StatusActive, HireDate: &hire},
	}

	sales := []*domain.SaleRecord{
		saleOn("ANA PEREZ", 2026, time.June, 3),
		saleOn("ANA PEREZ", 2026, time.June, 17),
		saleOn("ANA PEREZ", 2026, time.July, 8),
		// sin ventas en el último mes de la ventana: se simula en baja
		saleOn("LUIS SOTO", 2026, time.May, 20),
	}

	saleRepo.EXPECT().
		ListMonthKeys().
		Return([]string{"2026-05", "2026-06", "2026-07"}, nil)
	saleRepo.EXPECT().
		ListByDateRange(gomock.Any(), gomock.Any()).
		Return(sales, 0, nil)
	employeeRepo.EXPECT().
		ListProfiles().
		Return(profiles, nil)

	service := NewService(testConfig(), saleRepo, employeeRepo)

	// la ventana puede llegar desordenada
	table, err := service.SimulateQuotas([]string{"2026-06", "2026-05", "2026-07"})
	require.NoError(t, err)

	assert.Equal(t, "2026-08", table.Month)
	assert.Equal(t, []string{"2026-05", "2026-06", "2026-07"}, table.WindowMonths)
	require.Len(t, table.Rows, 2)

	byName := make(map[string]*domain.QuotaRow)
	for _, row := range table.Rows {
		byName[row.Executive] = row
	}

	ana := byName["ANA PEREZ"]
	require.NotNil(t, ana)
	assert.Equal(t, domain.StatusActive, ana.Status)
	assert.Equal(t, 7, ana.Quota)

	luis := byName["LUIS SOTO"]
	require.NotNil(t, luis)
	assert.Equal(t, domain.StatusBaja, luis.Status)
	assert.Equal(t, 0, luis.Quota)

	assert.Equal(t, 7, table.TotalQuota)
}

func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepository(ctrl)

	saleRepo.EXPECT().
		ListMonthKeys().
		Return([]string{"2025-11", "2025-12", "2026-01"}, nil)

	service := NewService(testConfig(), saleRepo, employeeRepo)

	periods, err := service.GetAvailablePeriods()
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01"}, periods.Periods)
	assert.Equal(t, []string{"2025", "2026"}, periods.Years)
	assert.Equal(t, []string{"01", "11", "12"}, periods.Months)
}
