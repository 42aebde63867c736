package dto

import dom "Hostess/internal/domain"

// OrderView is an order rendered on the board. Times are ISO-8601 with the
// restaurant's UTC offset attached.
type OrderView struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CustomerPhone string `json:"customer_phone"`
	NumPeople     int    `json:"num_people"`
	CustomerName  string `json:"customer_name"`
}

// ReservationView is a reservation rendered on the board. Note the renamed
// guest fields — the board contract differs from the stored item here.
type ReservationView struct {
	ID                 string `json:"id"`
	NameForReservation string `json:"name_for_reservation"`
	NumPeople          int    `json:"num_people"`
	PhoneNumber        string `json:"phone_number"`
	Status             string `json:"status"`
	SeatingTime        string `json:"seating_time"`
	EndTime            string `json:"end_time"`
}

// TableView is one catalog table joined with its orders and reservations
// for a date.
type TableView struct {
	ID           string            `json:"id"`
	Capacity     int               `json:"capacity"`
	Number       string            `json:"number"`
	Zone         string            `json:"zone"`
	Orders       []OrderView       `json:"orders"`
	Reservations []ReservationView `json:"reservations"`
}

// BoardResponse is the full board payload for a date.
type BoardResponse struct {
	AvailableDays []string       `json:"available_days"`
	CurrentDay    string         `json:"current_day"`
	Restaurant    dom.Restaurant `json:"restaurant"`
	Tables        []TableView    `json:"tables"`
}
