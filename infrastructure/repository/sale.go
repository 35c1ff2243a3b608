package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/expcc/metas-cc-api/infrastructure/database/postgres"
	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/pkg/normalize"
)

const (
	salesTable = "sales s"
)

type SaleRepository interface {
	// ListByDateRange devuelve las ventas capturadas en [startDate, endDate],
	// ya canonicalizadas, junto con el número de filas omitidas por no tener
	// ejecutivo o fecha de captura.
	ListByDateRange(startDate, endDate time.Time) ([]*domain.SaleRecord, int, error)

	// ListMonthKeys devuelve las claves "yyyy-mm" con ventas registradas,
	// en orden ascendente.
	ListMonthKeys() ([]string, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListByDateRange(startDate, endDate time.Time) ([]*domain.SaleRecord, int, error) {
	query, args, err := squirrel.
		Select("s.folio, s.executive, s.center, s.capture_date, s.status, s.plan, s.price, s.rent").
		From(salesTable).
		Where(squirrel.GtOrEq{"s.capture_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.capture_date": endDate.Format(time.DateOnly)}).
		OrderBy("s.capture_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.SaleRecord, 0)
	skipped := 0
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error al escanear venta: %w", err)
		}
		if sale == nil {
			skipped++
			continue
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return sales, skipped, nil
}

func (r *saleRepository) ListMonthKeys() ([]string, error) {
	query := "SELECT DISTINCT to_char(capture_date, 'YYYY-MM') FROM sales WHERE capture_date IS NOT NULL ORDER BY 1 ASC"

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("error al escanear periodo: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return keys, nil
}

// scanSale canonicaliza la fila al leerla. Devuelve nil cuando la fila no
// tiene ejecutivo o fecha de captura.
func (r *saleRepository) scanSale(rows *sql.Rows) (*domain.SaleRecord, error) {
	var (
		folio       sql.NullString
		executive   sql.NullString
		center      sql.NullString
		captureDate sql.NullTime
		status      sql.NullString
		plan        sql.NullString
		price       sql.NullString
		rent        sql.NullString
	)

	err := rows.Scan(
		&folio,
		&executive,
		&center,
		&captureDate,
		&status,
		&plan,
		&price,
		&rent,
	)
	if err != nil {
		return nil, err
	}

	name := domain.CanonicalExecutive(executive.String)
	if name == "" || !captureDate.Valid {
		return nil, nil
	}

	sale := &domain.SaleRecord{
		Folio:       normalize.FolioKey(folio.String),
		Executive:   name,
		Center:      center.String,
		CenterKey:   domain.CanonicalCenterKey(center.String),
		CaptureDate: captureDate.Time,
		Status:      normalize.Name(status.String),
		Plan:        plan.String,
		Price:       price.String,
		Rent:        rent.String,
	}
	sale.InTransit = sale.TransitFallback()

	return sale, nil
}
