package dto

import (
	"fmt"
	"regexp"
	"strings"

	dom "Hostess/internal/domain"
)

// CreateOrderRequest creates one item per requested table. start_time and
// end_time are ISO-8601 timestamps; the date is taken from the start_time
// prefix, the wall-clock part from the T-section.
type CreateOrderRequest struct {
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	NumPeople     int      `json:"num_people"`
	Status        string   `json:"status"` // optional, defaults to New
	Tables        []string `json:"tables"`
}

// Validate checks the required fields, mirroring the API contract message.
func (r CreateOrderRequest) Validate() error {
	if r.StartTime == "" || r.EndTime == "" || r.CustomerName == "" ||
		r.CustomerPhone == "" || r.NumPeople == 0 || len(r.Tables) == 0 {
		return fmt.Errorf("missing required fields: start_time, end_time, customer_name, customer_phone, num_people, tables")
	}
	return nil
}

var clockRe = regexp.MustCompile(`T(\d{2}:\d{2}):\d{2}`)

// DatePart returns the YYYY-MM-DD prefix of an ISO timestamp.
func DatePart(iso string) string {
	return strings.SplitN(iso, "T", 2)[0]
}

// ClockPart extracts HH:MM from an ISO timestamp. Falls back to "00:00"
// when the time section is missing or has no seconds.
func ClockPart(iso string) string {
	if m := clockRe.FindStringSubmatch(iso); m != nil {
		return m[1]
	}
	return "00:00"
}

// CreateOrdersResponse is the answer to a create call: the stored items,
// one per requested table.
type CreateOrdersResponse struct {
	Success bool       `json:"success"`
	Orders  []dom.Item `json:"orders"`
	Message string     `json:"message"`
}

// DeleteResponse reports a successful delete.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DayOrdersResponse is the raw date bucket.
type DayOrdersResponse struct {
	Success bool       `json:"success"`
	Date    string     `json:"date"`
	Orders  []dom.Item `json:"orders"`
}

// DayItemsResponse is the date bucket split by the classifier.
type DayItemsResponse struct {
	Success      bool       `json:"success"`
	Date         string     `json:"date"`
	Orders       []dom.Item `json:"orders"`
	Reservations []dom.Item `json:"reservations"`
}
