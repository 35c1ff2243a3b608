package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/expcc/metas-cc-api/infrastructure/database/postgres"
	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/pkg/normalize"
)

const (
	employeesTable = "employees e"
)

type EmployeeRepository interface {
	// ListProfiles devuelve el perfil de nómina de cada ejecutivo, con
	// nombres y supervisores ya canonicalizados.
	ListProfiles() ([]*domain.EmployeeProfile, error)
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) ListProfiles() ([]*domain.EmployeeProfile, error) {
	query, args, err := squirrel.
		Select("e.name, e.supervisor, e.status, e.hire_date, e.termination_date, e.center").
		From(employeesTable).
		OrderBy("e.name ASC").
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

	profiles := make([]*domain.EmployeeProfile, 0)
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear perfil: %w", err)
		}
		if profile == nil {
			continue
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return profiles, nil
}

func (r *employeeRepository) scanProfile(rows *sql.Rows) (*domain.EmployeeProfile, error) {
	var (
		name            sql.NullString
		supervisor      sql.NullString
		status          sql.NullString
		hireDate        sql.NullTime
		terminationDate sql.NullTime
		center          sql.NullString
	)

	err := rows.Scan(
		&name,
		&supervisor,
		&status,
		&hireDate,
		&terminationDate,
		&center,
	)
	if err != nil {
		return nil, err
	}

	canonical := domain.CanonicalExecutive(name.String)
	if canonical == "" {
		return nil, nil
	}

	profile := &domain.EmployeeProfile{
		Name:       canonical,
		Supervisor: domain.CanonicalExecutive(supervisor.String),
		Status:     normalize.Name(status.String),
		Center:     center.String,
	}
	if hireDate.Valid {
		d := hireDate.Time
		profile.HireDate = &d
	}
	if terminationDate.Valid {
		d := terminationDate.Time
		profile.TerminationDate = &d
	}

	return profile, nil
}
