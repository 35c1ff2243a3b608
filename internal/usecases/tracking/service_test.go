package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/expcc/metas-cc-api/infrastructure/repository/mocks"
	"github.com/expcc/metas-cc-api/internal/domain"
	quotingmocks "github.com/expcc/metas-cc-api/internal/usecases/quoting/mocks"
)

func TestBuildGapReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoter := quotingmocks.NewMockQuoter(ctrl)
	deliveryRepo := repomocks.NewMockDeliveryRepository(ctrl)

	quotas := &domain.QuotaTable{
		Month: "2026-08",
		Rows: []*domain.QuotaRow{
			{Executive: "ANA PEREZ", Supervisor: "MARIA RUIZ", CenterKey: domain.CenterJV, Quota: 7},
			{Executive: "LUIS SOTO", Supervisor: "MARIA RUIZ", CenterKey: domain.CenterCC2, Quota: 6},
			{Executive: "CARLA DIAZ", Supervisor: "PEDRO LUNA", CenterKey: domain.CenterCC2, Status: domain.StatusBaja, Quota: 0},
		},
		SkippedRecords: 2,
	}

	deliveries := []*domain.DeliveryRecord{
		{Folio: "100", Vendor: "ANA PEREZ", Status: "ENTREGADO", LinkedSale: "555"},
		{Folio: "101", Vendor: "ANA PEREZ", Status: "EN ENTREGA"},
		{Folio: "102", Vendor: "ANA PEREZ", Status: "ENTREGADO", LinkedSale: ""},
		{Folio: "103", Vendor: "LUIS SOTO", Status: domain.DeliveryCancError},
		{Folio: "", Vendor: "LUIS SOTO", Status: "SOLICITADO"},
		{Folio: "104", Vendor: "LUIS SOTO", Status: "ENTREGADO", LinkedSale: "557"},
	}

	quoter.EXPECT().BuildQuotaTable("2026-08").Return(quotas, nil)
	deliveryRepo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any()).Return(deliveries, nil)

	service := NewService(quoter, deliveryRepo)

	asOf := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)
	report, err := service.BuildGapReport("2026-08", asOf)
	require.NoError(t, err)

	assert.Equal(t, "2026-08", report.Month)
	assert.Equal(t, 23.5, report.DaysTotal)
	assert.False(t, report.RateIndeterminate)
	assert.Equal(t, 3, report.SkippedRecords)
	require.Len(t, report.Rows, 3)

	// orden por gap descendente
	assert.Equal(t, "LUIS SOTO", report.Rows[0].Executive)
	assert.Equal(t, "ANA PEREZ", report.Rows[1].Executive)
	assert.Equal(t, "CARLA DIAZ", report.Rows[2].Executive)

	ana := report.Rows[1]
	assert.Equal(t, 1, ana.Completed)
	assert.Equal(t, 2, ana.InTransit)
	assert.Equal(t, 3, ana.Total)
	assert.Equal(t, 4, ana.Gap)
	assert.Equal(t, 3, ana.ExpectedByToday)
	assert.True(t, ana.OnTrack)

	luis := report.Rows[0]
	assert.Equal(t, 1, luis.Completed)
	assert.Equal(t, 0, luis.InTransit)
	assert.Equal(t, 5, luis.Gap)
	assert.False(t, luis.OnTrack)

	// sin entregas en el mes: conteos en cero
	carla := report.Rows[2]
	assert.Equal(t, 0, carla.Total)
	assert.Equal(t, 0, carla.Gap)

	for _, row := range report.Rows {
		assert.Equal(t, row.Quota, row.Gap+row.Total, "la identidad gap + total == meta debe sostenerse para %s", row.Executive)
	}

	require.Len(t, report.ByTeam, 2)
	team := report.ByTeam[0]
	assert.Equal(t, "MARIA RUIZ", team.Group)
	assert.Equal(t, 2, team.Executives)
	assert.Equal(t, 13, team.Quota)
	assert.Equal(t, 4, team.Total)
	assert.Equal(t, 9, team.Gap)
	assert.Equal(t, team.Quota, team.Gap+team.Total)

	require.Len(t, report.ByCenter, 2)
	assert.Equal(t, domain.CenterCC2, report.ByCenter[0].Group)
	assert.Equal(t, domain.CenterJV, report.ByCenter[1].Group)

	require.NotNil(t, report.Global)
	assert.Equal(t, 3, report.Global.Executives)
	assert.Equal(t, 13, report.Global.Quota)
	assert.Equal(t, 9, report.Global.Gap)
	assert.Equal(t, report.Global.Quota, report.Global.Gap+report.Global.Total)
	assert.Equal(t, 6, report.Global.ExpectedByToday)
	assert.False(t, report.Global.OnTrack)
	assert.InDelta(t, 13.0/3.0, report.Global.AverageQuota, 1e-9)
}

func TestBuildGapReportInvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoter := quotingmocks.NewMockQuoter(ctrl)
	deliveryRepo := repomocks.NewMockDeliveryRepository(ctrl)

	service := NewService(quoter, deliveryRepo)

	_, err := service.BuildGapReport("agosto", time.Now())
	assert.Error(t, err)
}
