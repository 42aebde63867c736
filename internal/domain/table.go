package domain

// Zone values — physical grouping of tables.
const (
	ZoneFirstFloor  = "1 этаж"
	ZoneSecondFloor = "2 этаж"
	ZoneBanquetHall = "Банкетный зал"
)

// Table is one physical table. Immutable reference data; Number is the
// display label and is distinct from ID.
type Table struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
	Number   string `json:"number"`
	Zone     string `json:"zone"`
}

// TableCatalog returns the fixed list of the restaurant's 12 tables.
// Board projections follow this order, not id or number order.
func TableCatalog() []Table {
	return []Table{
		{ID: "1", Capacity: 2, Number: "5", Zone: ZoneFirstFloor},
		{ID: "2", Capacity: 2, Number: "6", Zone: ZoneFirstFloor},
		{ID: "3", Capacity: 6, Number: "155", Zone: ZoneSecondFloor},
		{ID: "4", Capacity: 4, Number: "20", Zone: ZoneFirstFloor},
		{ID: "5", Capacity: 6, Number: "21", Zone: ZoneFirstFloor},
		{ID: "6", Capacity: 6, Number: "22", Zone: ZoneFirstFloor},
		{ID: "7", Capacity: 6, Number: "23", Zone: ZoneFirstFloor},
		{ID: "8", Capacity: 6, Number: "24", Zone: ZoneFirstFloor},
		{ID: "9", Capacity: 4, Number: "28", Zone: ZoneSecondFloor},
		{ID: "10", Capacity: 4, Number: "29", Zone: ZoneSecondFloor},
		{ID: "11", Capacity: 6, Number: "30", Zone: ZoneSecondFloor},
		{ID: "12", Capacity: 8, Number: "191", Zone: ZoneBanquetHall},
	}
}
