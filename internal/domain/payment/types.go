package payment

// Status is owned by the payment collaborator. Reservation cancellation only
// ever moves completado to reembolsado.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusCompleted Status = "completado"
	StatusFailed    Status = "fallido"
	StatusRefunded  Status = "reembolsado"
)

func (s Status) String() string {
	return string(s)
}
