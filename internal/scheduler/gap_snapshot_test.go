package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/expcc/metas-cc-api/internal/config"
	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/internal/usecases/tracking/mocks"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

func TestGapSnapshotService_RefreshSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)

	month := utils.MonthKey(time.Now())
	report := &domain.GapReport{
		Month: month,
		AsOf:  time.Now(),
		Rows:  []*domain.GapRow{{Executive: "ANA PEREZ", Quota: 7, Total: 3, Gap: 4}},
	}

	mockTracker.EXPECT().
		BuildGapReport(month, gomock.Any()).
		Return(report, nil)

	service := &GapSnapshotService{tracker: mockTracker}

	assert.Nil(t, service.Snapshot())

	err := service.RefreshSnapshot()
	assert.NoError(t, err)
	assert.Equal(t, report, service.Snapshot())

	status := service.GetStatus()
	assert.Equal(t, false, status["run_running"])
	assert.Equal(t, month, status["snapshot_month"])
	assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())
}

func TestGapSnapshotService_RefreshSnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)

	mockTracker.EXPECT().
		BuildGapReport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("feed no disponible"))

	service := &GapSnapshotService{tracker: mockTracker}

	err := service.RefreshSnapshot()
	assert.Error(t, err)
	assert.Nil(t, service.Snapshot())

	status := service.GetStatus()
	assert.NotContains(t, status, "snapshot_month")
}

func TestGapSnapshotService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)

	cfg := &config.Config{
		GapSnapshot: config.GapSnapshot{
			CronSchedule: "0 7 * * *",
			Enabled:      false,
		},
	}

	service := NewGapSnapshotService(mockTracker, cfg)

	// Deshabilitado: no agenda nada y el tracker nunca se invoca
	err := service.Start(context.Background())
	assert.NoError(t, err)
}
