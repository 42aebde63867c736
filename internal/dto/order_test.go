package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2025-07-01", DatePart("2025-07-01T18:00:00+10:00"))
	assert.Equal(t, "2025-07-01", DatePart("2025-07-01"))
}

func TestClockPart(t *testing.T) {
	assert.Equal(t, "18:00", ClockPart("2025-07-01T18:00:00+10:00"))
	assert.Equal(t, "09:30", ClockPart("2025-07-01T09:30:15Z"))
	// No seconds section or garbage -> fallback, matching the API contract.
	assert.Equal(t, "00:00", ClockPart("2025-07-01T18:00"))
	assert.Equal(t, "00:00", ClockPart("not a timestamp"))
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := CreateOrderRequest{
		StartTime:     "2025-07-01T18:00:00+10:00",
		EndTime:       "2025-07-01T20:00:00+10:00",
		CustomerName:  "Иван",
		CustomerPhone: "+79991234567",
		NumPeople:     4,
		Tables:        []string{"1"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateOrderRequest)
	}{
		{"no start_time", func(r *CreateOrderRequest) { r.StartTime = "" }},
		{"no end_time", func(r *CreateOrderRequest) { r.EndTime = "" }},
		{"no customer_name", func(r *CreateOrderRequest) { r.CustomerName = "" }},
		{"no customer_phone", func(r *CreateOrderRequest) { r.CustomerPhone = "" }},
		{"no num_people", func(r *CreateOrderRequest) { r.NumPeople = 0 }},
		{"no tables", func(r *CreateOrderRequest) { r.Tables = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
