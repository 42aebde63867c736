package domain

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.

// Status is the lifecycle status of a board item. The status value alone
// decides whether the item is an order or a reservation; there is no
// separate "kind" field.
type Status string

const (
	StatusNew         Status = "New"
	StatusBill        Status = "Bill"
	StatusClosed      Status = "Closed"
	StatusBanquet     Status = "Banquet"
	StatusReservation Status = "Reservation"
	StatusLiveQueue   Status = "LiveQueue"
)

// LiveQueueLabel is the display label for LiveQueue reservations.
// The stored status stays "LiveQueue"; the label is applied only when rendering.
const LiveQueueLabel = "Живая очередь"

// Category splits items into the two board columns.
type Category int

const (
	CategoryOrder Category = iota
	CategoryReservation
)

// Classify maps a status to its board category. Total: unknown statuses
// fall into CategoryOrder.
func Classify(s Status) Category {
	switch s {
	case StatusReservation, StatusLiveQueue:
		return CategoryReservation
	default:
		return CategoryOrder
	}
}

// Item is one order or reservation, tied to a single table and a single
// calendar date. Start/End are naive wall-clock times "HH:MM" with no date
// or offset attached; the owning date bucket supplies the date.
type Item struct {
	ID            string `json:"id"`
	Status        Status `json:"status"`
	Start         string `json:"start"`
	End           string `json:"end"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	NumPeople     int    `json:"num_people"`
	TableID       string `json:"table_id"`
}
