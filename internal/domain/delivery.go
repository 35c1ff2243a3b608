package domain

// Estatus de entrega reconocidos, ya normalizados (mayúsculas, sin acentos).
const (
	DeliveryEnEntrega     = "EN ENTREGA"
	DeliveryEnPreparacion = "EN PREPARACION"
	DeliverySolicitado    = "SOLICITADO"
	DeliveryBackOffice    = "BACK OFFICE"
	DeliveryEntregado     = "ENTREGADO"
	DeliveryCancError     = "CANC ERROR"
)

// DeliveryRecord es una entrada del feed de programación de entregas.
type DeliveryRecord struct {
	// Folio es la clave de join normalizada (folio o venta, la primera
	// no vacía). Vacío significa registro sin clave; el clasificador lo
	// excluye y lo cuenta.
	Folio string `json:"folio"`

	// Vendor es el ejecutivo que solicita la entrega.
	Vendor string `json:"vendor"`

	Status string `json:"status"`

	// LinkedSale es el identificador de venta ligado; vacío cuando la
	// entrega aún no tiene venta asociada.
	LinkedSale string `json:"linked_sale"`
}
