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
	deliveriesTable = "deliveries d"
)

type DeliveryRepository interface {
	// ListByDateRange devuelve las entradas del programa de entregas
	// solicitadas en [startDate, endDate]. La clave de join se arma con el
	// folio o, si viene vacío, con la referencia de venta.
	ListByDateRange(startDate, endDate time.Time) ([]*domain.DeliveryRecord, error)
}

type deliveryRepository struct {
	conn *postgres.Connection
}

func NewDeliveryRepository(conn *postgres.Connection) DeliveryRepository {
	return &deliveryRepository{
		conn: conn,
	}
}

func (r *deliveryRepository) ListByDateRange(startDate, endDate time.Time) ([]*domain.DeliveryRecord, error) {
	query, args, err := squirrel.
		Select("d.folio, d.sale_ref, d.vendor, d.status, d.linked_sale").
		From(deliveriesTable).
		Where(squirrel.GtOrEq{"d.request_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"d.request_date": endDate.Format(time.DateOnly)}).
		OrderBy("d.request_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	deliveries := make([]*domain.DeliveryRecord, 0)
	for rows.Next() {
		delivery, err := r.scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear entrega: %w", err)
		}
		deliveries = append(deliveries, delivery)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return deliveries, nil
}

func (r *deliveryRepository) scanDelivery(rows *sql.Rows) (*domain.DeliveryRecord, error) {
	var (
		folio      sql.NullString
		saleRef    sql.NullString
		vendor     sql.NullString
		status     sql.NullString
		linkedSale sql.NullString
	)

	err := rows.Scan(
		&folio,
		&saleRef,
		&vendor,
		&status,
		&linkedSale,
	)
	if err != nil {
		return nil, err
	}

	key := normalize.FolioKey(folio.String)
	if key == "" {
		key = normalize.FolioKey(saleRef.String)
	}

	return &domain.DeliveryRecord{
		Folio:      key,
		Vendor:     domain.CanonicalExecutive(vendor.String),
		Status:     normalize.Name(status.String),
		LinkedSale: normalize.FolioKey(linkedSale.String),
	}, nil
}
