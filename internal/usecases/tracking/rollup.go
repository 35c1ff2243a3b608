package tracking

import (
	"sort"

	"github.com/expcc/metas-cc-api/internal/domain"
)

// RollupBy agrega filas de avance por la llave dada. La suma ocurre antes
// de recalcular tasas, lo que preserva la identidad gap + total == meta a
// nivel de grupo; promediar tasas por ejecutivo la rompería.
func RollupBy(rows []*domain.GapRow, proj *Projection, key func(*domain.GapRow) string) []*domain.GapRollup {
	groups := make(map[string]*domain.GapRollup)
	for _, row := range rows {
		name := key(row)
		g, ok := groups[name]
		if !ok {
			g = &domain.GapRollup{Group: name}
			groups[name] = g
		}
		g.Executives++
		g.Completed += row.Completed
		g.InTransit += row.InTransit
		g.Total += row.Total
		g.Quota += row.Quota
		g.Gap += row.Gap
	}

	rollups := make([]*domain.GapRollup, 0, len(groups))
	for _, g := range groups {
		g.AverageQuota = float64(g.Quota) / float64(g.Executives)
		if !proj.Indeterminate() {
			g.RequiredDailyRate = proj.RequiredDailyRate(g.Quota)
			g.RequiredDailyRateFromToday = proj.RequiredDailyRateFromToday(g.Gap)
			g.ExpectedByToday = proj.ExpectedByToday(g.Quota)
			g.OnTrack = g.Total >= g.ExpectedByToday
		}
		rollups = append(rollups, g)
	}

	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].Gap != rollups[j].Gap {
			return rollups[i].Gap > rollups[j].Gap
		}
		if rollups[i].RequiredDailyRateFromToday != rollups[j].RequiredDailyRateFromToday {
			return rollups[i].RequiredDailyRateFromToday > rollups[j].RequiredDailyRateFromToday
		}
		return rollups[i].Group < rollups[j].Group
	})

	return rollups
}
