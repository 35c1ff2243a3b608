package domain

import "time"

const (
	// StatusActive marca a un ejecutivo activo en nómina.
	StatusActive = "ACTIVO"

	// StatusBaja es el centinela de baja: sin supervisor activo o
	// terminado. Se usa también como supervisor por defecto cuando el
	// join con nómina no encuentra al ejecutivo.
	StatusBaja = "BAJA"
)

// EmployeeProfile es una persona del feed de nómina. El núcleo solo lo lee;
// nunca lo muta.
type EmployeeProfile struct {
	Name            string     `json:"name"`
	Supervisor      string     `json:"supervisor"`
	Status          string     `json:"status"`
	HireDate        *time.Time `json:"hire_date"`
	TerminationDate *time.Time `json:"termination_date"`
	Center          string     `json:"center"`
}
