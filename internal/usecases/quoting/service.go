package quoting

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/expcc/metas-cc-api/infrastructure/repository"
	"github.com/expcc/metas-cc-api/internal/config"
	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/pkg/calendar"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

// Service implementa el motor de metas sobre los feeds de ventas y nómina
type Service struct {
	cfg          *config.Config
	policy       Policy
	saleRepo     repository.SaleRepository
	employeeRepo repository.EmployeeRepository
}

// NewService crea una nueva instancia del motor de metas
func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	employeeRepo repository.EmployeeRepository,
) Quoter {
	return &Service{
		cfg: cfg,
		policy: Policy{
			MinTenureDays:    cfg.Metas.MinTenureDays,
			NewHireDayCutoff: cfg.Metas.NewHireDayCutoff,
		},
		saleRepo:     saleRepo,
		employeeRepo: employeeRepo,
	}
}

// BuildQuotaTable calcula la tabla de metas del mes objetivo. La ventana son
// hasta N meses inmediatamente anteriores con ventas registradas; cuando no
// existe historia previa, la ventana incluye el propio mes objetivo. Solo
// entran los ejecutivos con al menos una venta en el mes objetivo.
func (s *Service) BuildQuotaTable(month string) (*domain.QuotaTable, error) {
	if _, err := utils.ParseMonthKey(month); err != nil {
		return nil, fmt.Errorf("periodo inválido %q: %w", month, err)
	}

	keys, err := s.saleRepo.ListMonthKeys()
	if err != nil {
		return nil, fmt.Errorf("error al listar periodos: %w", err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no hay ventas registradas")
	}

	window := s.quotaWindow(keys, month)

	sales, skipped, err := s.fetchSales(keys[0], month)
	if err != nil {
		return nil, err
	}

	profiles, err := s.employeeProfiles()
	if err != nil {
		return nil, err
	}

	// Pertenecen a la tabla los ejecutivos que vendieron en el mes objetivo
	targetTally := BuildTally(sales, []string{month})
	members := targetTally.Executives()

	table, err := s.buildTable(month, window, sales, members, profiles)
	if err != nil {
		return nil, err
	}
	table.SkippedRecords = skipped

	logrus.Infof("Tabla de metas de %s: %d ejecutivos, meta total %d", month, len(table.Rows), table.TotalQuota)

	return table, nil
}

// SimulateQuotas simula las metas del mes siguiente al último mes de la
// ventana dada. Entran todos los ejecutivos con ventas en la ventana; queda
// en BAJA quien no vendió en el último mes de la ventana.
func (s *Service) SimulateQuotas(months []string) (*domain.QuotaTable, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("se requiere al menos un periodo")
	}

	window := make([]string, len(months))
	copy(window, months)
	sort.Strings(window)
	for _, m := range window {
		if _, err := utils.ParseMonthKey(m); err != nil {
			return nil, fmt.Errorf("periodo inválido %q: %w", m, err)
		}
	}

	lastMonth := window[len(window)-1]
	target, err := utils.NextMonthKey(lastMonth)
	if err != nil {
		return nil, err
	}

	keys, err := s.saleRepo.ListMonthKeys()
	if err != nil {
		return nil, fmt.Errorf("error al listar periodos: %w", err)
	}
	earliest := window[0]
	if len(keys) > 0 && keys[0] < earliest {
		earliest = keys[0]
	}

	sales, skipped, err := s.fetchSales(earliest, lastMonth)
	if err != nil {
		return nil, err
	}

	profiles, err := s.employeeProfiles()
	if err != nil {
		return nil, err
	}

	windowTally := BuildTally(sales, window)
	members := windowTally.Executives()

	table, err := s.buildTable(target, window, sales, members, profiles)
	if err != nil {
		return nil, err
	}
	table.SkippedRecords = skipped

	// En la simulación la actividad se deriva de la ventana, no de nómina:
	// quien no vendió en el último mes de la ventana se simula en baja
	for _, row := range table.Rows {
		if !windowTally.SoldIn(row.Executive, lastMonth) {
			row.Status = domain.StatusBaja
			row.Quota = 0
		}
	}
	table.TotalQuota = 0
	for _, row := range table.Rows {
		table.TotalQuota += row.Quota
	}

	logrus.Infof("Simulación de metas de %s: %d ejecutivos, meta total %d", target, len(table.Rows), table.TotalQuota)

	return table, nil
}

// GetAvailablePeriods devuelve los periodos con ventas registradas
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	keys, err := s.saleRepo.ListMonthKeys()
	if err != nil {
		return nil, fmt.Errorf("error al listar periodos: %w", err)
	}

	periods := &domain.AvailablePeriods{Periods: keys}
	seenYears := make(map[string]bool)
	seenMonths := make(map[string]bool)
	for _, key := range keys {
		year, month := key[:4], key[5:]
		if !seenYears[year] {
			seenYears[year] = true
			periods.Years = append(periods.Years, year)
		}
		if !seenMonths[month] {
			seenMonths[month] = true
			periods.Months = append(periods.Months, month)
		}
	}
	sort.Strings(periods.Years)
	sort.Strings(periods.Months)

	return periods, nil
}

// quotaWindow toma hasta N meses con ventas inmediatamente anteriores al mes
// objetivo; si no hay historia previa, cae a una ventana que incluye el
// propio mes objetivo.
func (s *Service) quotaWindow(keys []string, month string) []string {
	n := s.cfg.Metas.WindowMonths

	prior := make([]string, 0, len(keys))
	for _, key := range keys {
		if key < month {
			prior = append(prior, key)
		}
	}
	if len(prior) == 0 {
		for _, key := range keys {
			if key <= month {
				prior = append(prior, key)
			}
		}
	}
	if len(prior) > n {
		prior = prior[len(prior)-n:]
	}

	return prior
}

func (s *Service) fetchSales(firstMonth, lastMonth string) ([]*domain.SaleRecord, int, error) {
	start, _, err := calendar.MonthBounds(firstMonth)
	if err != nil {
		return nil, 0, err
	}
	_, end, err := calendar.MonthBounds(lastMonth)
	if err != nil {
		return nil, 0, err
	}

	sales, skipped, err := s.saleRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, 0, fmt.Errorf("error al consultar ventas: %w", err)
	}
	if skipped > 0 {
		logrus.Warnf("%d registros de venta omitidos por datos incompletos", skipped)
	}

	return sales, skipped, nil
}

func (s *Service) employeeProfiles() (map[string]*domain.EmployeeProfile, error) {
	profiles, err := s.employeeRepo.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("error al consultar nómina: %w", err)
	}

	byName := make(map[string]*domain.EmployeeProfile, len(profiles))
	for _, p := range profiles {
		current, ok := byName[p.Name]
		if !ok {
			byName[p.Name] = p
			continue
		}

		// En duplicados de nómina se conserva la fecha de ingreso más antigua
		if p.HireDate == nil {
			continue
		}
		if current.HireDate == nil || p.HireDate.Before(*current.HireDate) {
			byName[p.Name] = p
		}
	}

	return byName, nil
}

// buildTable arma las filas de metas para los ejecutivos dados contra la
// ventana indicada.
func (s *Service) buildTable(
	month string,
	window []string,
	sales []*domain.SaleRecord,
	members []string,
	profiles map[string]*domain.EmployeeProfile,
) (*domain.QuotaTable, error) {
	monthStart, err := utils.ParseMonthKey(month)
	if err != nil {
		return nil, err
	}

	windowTally := BuildTally(sales, window)
	firstSales := firstSaleDates(sales)
	centers := latestCenters(sales)

	table := &domain.QuotaTable{
		Month:        month,
		WindowMonths: window,
		Rows:         make([]*domain.QuotaRow, 0, len(members)),
	}

	for _, name := range members {
		profile := profiles[name]

		supervisor := domain.StatusBaja
		status := domain.StatusActive
		if profile != nil {
			if profile.Supervisor != "" {
				supervisor = profile.Supervisor
			}
			if profile.Status != "" {
				status = profile.Status
			}
		}

		counts := windowTally.Counts(name)
		monthly := make(map[string]int, len(window))
		total := 0
		for i, m := range window {
			monthly[m] = counts[i]
			total += counts[i]
		}

		avg, active := LeadingZeroAverage(counts)

		tenure := 0
		isNewHire := false
		first := firstSales[name]
		if start := EffectiveStart(profile, first); start != nil {
			tenure = TenureDays(*start, monthStart)
			isNewHire = s.policy.IsNewHire(*start, monthStart)
		}

		row := &domain.QuotaRow{
			Executive:      name,
			Supervisor:     supervisor,
			CenterKey:      centers[name],
			Status:         status,
			TenureDays:     tenure,
			MonthlySales:   monthly,
			TotalSales:     total,
			RollingAverage: avg,
			NoActiveMonths: !active,
			Quota:          s.policy.Quota(status, tenure, avg),
			IsNewHire:      isNewHire,
		}

		table.Rows = append(table.Rows, row)
		table.TotalQuota += row.Quota
	}

	return table, nil
}

// firstSaleDates devuelve la fecha de captura más antigua por ejecutivo,
// usada como respaldo cuando nómina no trae fecha de contratación.
func firstSaleDates(sales []*domain.SaleRecord) map[string]*time.Time {
	first := make(map[string]*time.Time)
	for _, sale := range sales {
		current, ok := first[sale.Executive]
		if !ok || sale.CaptureDate.Before(*current) {
			d := sale.CaptureDate
			first[sale.Executive] = &d
		}
	}
	return first
}

// latestCenters devuelve la clave de centro de la venta más reciente de cada
// ejecutivo.
func latestCenters(sales []*domain.SaleRecord) map[string]string {
	latest := make(map[string]time.Time)
	centers := make(map[string]string)
	for _, sale := range sales {
		if when, ok := latest[sale.Executive]; ok && !sale.CaptureDate.After(when) {
			continue
		}
		latest[sale.Executive] = sale.CaptureDate
		centers[sale.Executive] = sale.CenterKey
	}
	return centers
}
