package domain

// Restaurant is the static, process-wide restaurant record. Read-only,
// never mutated.
type Restaurant struct {
	ID             int    `json:"id"`
	Timezone       string `json:"timezone"`
	RestaurantName string `json:"restaurant_name"`
	OpeningTime    string `json:"opening_time"`
	ClosingTime    string `json:"closing_time"`
}

// DefaultRestaurant returns the restaurant this instance serves.
func DefaultRestaurant() Restaurant {
	return Restaurant{
		ID:             11100,
		Timezone:       "Asia/Vladivostok",
		RestaurantName: "Супра",
		OpeningTime:    "11:00",
		ClosingTime:    "23:40",
	}
}
