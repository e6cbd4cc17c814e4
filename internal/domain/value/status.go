package value

// DealStatus — производный статус предложения для отображения.
type DealStatus string

const (
	StatusActive   DealStatus = "active"
	StatusInactive DealStatus = "inactive"
	StatusExpired  DealStatus = "expired"
	StatusSoldOut  DealStatus = "sold_out"
)

func (s DealStatus) String() string {
	return string(s)
}
