package tracking

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/expcc/metas-cc-api/infrastructure/repository"
	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/internal/usecases/quoting"
	"github.com/expcc/metas-cc-api/pkg/calendar"
)

// Service implementa el reporte de avance cruzando la tabla de metas con el
// feed de entregas del mes
type Service struct {
	quoter       quoting.Quoter
	deliveryRepo repository.DeliveryRepository
}

// NewService crea una nueva instancia del rastreador de avance
func NewService(quoter quoting.Quoter, deliveryRepo repository.DeliveryRepository) Tracker {
	return &Service{
		quoter:       quoter,
		deliveryRepo: deliveryRepo,
	}
}

// BuildGapReport calcula el avance del mes rastreado al corte asOf. Las
// filas son los ejecutivos de la tabla de metas; quien no aparece en el
// feed de entregas queda con conteos en cero.
func (s *Service) BuildGapReport(month string, asOf time.Time) (*domain.GapReport, error) {
	proj, err := NewProjection(month, asOf)
	if err != nil {
		return nil, fmt.Errorf("periodo inválido %q: %w", month, err)
	}
	if proj.Indeterminate() {
		logrus.Warnf("Mes %s sin días hábiles equivalentes; tasas indeterminadas", month)
	}

	start, end, err := calendar.MonthBounds(month)
	if err != nil {
		return nil, err
	}

	// La tabla de metas y el feed de entregas se consultan en paralelo
	var (
		quotas     *domain.QuotaTable
		deliveries []*domain.DeliveryRecord
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		quotas, err = s.quoter.BuildQuotaTable(month)
		return err
	})
	g.Go(func() error {
		var err error
		deliveries, err = s.deliveryRepo.ListByDateRange(start, end)
		if err != nil {
			return fmt.Errorf("error al consultar entregas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals, skippedDeliveries := SplitByVendor(deliveries)
	if skippedDeliveries > 0 {
		logrus.Warnf("%d registros de entrega omitidos por clave de join vacía", skippedDeliveries)
	}

	rows := make([]*domain.GapRow, 0, len(quotas.Rows))
	for _, q := range quotas.Rows {
		row := &domain.GapRow{
			Executive:  q.Executive,
			Supervisor: q.Supervisor,
			CenterKey:  q.CenterKey,
			TenureDays: q.TenureDays,
			Quota:      q.Quota,
			IsNewHire:  q.IsNewHire,
		}
		if t, ok := totals[q.Executive]; ok {
			row.Completed = t.Completed
			row.InTransit = t.InTransit
		}
		row.Total = row.Completed + row.InTransit
		row.Gap = row.Quota - row.Total

		if !proj.Indeterminate() {
			row.RequiredDailyRate = proj.RequiredDailyRate(row.Quota)
			row.RequiredDailyRateFromToday = proj.RequiredDailyRateFromToday(row.Gap)
			row.ExpectedByToday = proj.ExpectedByToday(row.Quota)
			row.OnTrack = row.Total >= row.ExpectedByToday
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Gap != rows[j].Gap {
			return rows[i].Gap > rows[j].Gap
		}
		if rows[i].RequiredDailyRateFromToday != rows[j].RequiredDailyRateFromToday {
			return rows[i].RequiredDailyRateFromToday > rows[j].RequiredDailyRateFromToday
		}
		return rows[i].Executive < rows[j].Executive
	})

	report := &domain.GapReport{
		Month:             month,
		AsOf:              asOf,
		DaysTotal:         proj.DaysTotal,
		DaysElapsed:       proj.DaysElapsed,
		DaysRemaining:     proj.DaysRemaining,
		RateIndeterminate: proj.Indeterminate(),
		Rows:              rows,
		ByTeam:            RollupBy(rows, proj, func(r *domain.GapRow) string { return r.Supervisor }),
		ByCenter:          RollupBy(rows, proj, func(r *domain.GapRow) string { return r.CenterKey }),
		SkippedRecords:    quotas.SkippedRecords + skippedDeliveries,
	}

	global := RollupBy(rows, proj, func(r *domain.GapRow) string { return "GLOBAL" })
	if len(global) > 0 {
		report.Global = global[0]
	}

	return report, nil
}
