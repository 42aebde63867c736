package service

import dom "Hostess/internal/domain"

// SeedItems is the fixed demonstration dataset written into today's bucket
// on the very first run. Ids follow the "<table number>-<n>" /
// "<table number>-res-<n>" convention of the floor staff.
func SeedItems() []dom.Item {
	return []dom.Item{
		// Orders
		{ID: "29-1", Status: dom.StatusNew, Start: "12:00", End: "19:00", CustomerPhone: "+79991234567", NumPeople: 4, CustomerName: "Иван", TableID: "10"},
		{ID: "29-2", Status: dom.StatusBill, Start: "13:00", End: "14:00", CustomerPhone: "+79998889900", NumPeople: 2, CustomerName: "Мария", TableID: "10"},
		{ID: "29-3", Status: dom.StatusClosed, Start: "15:00", End: "17:00", CustomerPhone: "+79991112233", NumPeople: 3, CustomerName: "Петр", TableID: "10"},
		{ID: "5-1", Status: dom.StatusNew, Start: "11:30", End: "12:30", CustomerPhone: "+79987654321", NumPeople: 2, CustomerName: "Анна", TableID: "1"},
		{ID: "5-2", Status: dom.StatusBill, Start: "16:00", End: "18:00", CustomerPhone: "+79994445566", NumPeople: 5, CustomerName: "Сергей", TableID: "1"},
		{ID: "6-1", Status: dom.StatusClosed, Start: "12:00", End: "14:00", CustomerPhone: "+79997778899", NumPeople: 6, CustomerName: "Ольга", TableID: "2"},
		{ID: "20-1", Status: dom.StatusNew, Start: "13:00", End: "15:00", CustomerPhone: "+79993334445", NumPeople: 4, CustomerName: "Дмитрий", TableID: "4"},
		{ID: "21-1", Status: dom.StatusBanquet, Start: "18:00", End: "21:30", CustomerPhone: "+79996667788", NumPeople: 3, CustomerName: "Елена", TableID: "5"},
		{ID: "21-2", Status: dom.StatusNew, Start: "22:00", End: "23:00", CustomerPhone: "+79992223334", NumPeople: 7, CustomerName: "Алексей", TableID: "5"},
		{ID: "22-1", Status: dom.StatusBill, Start: "19:00", End: "21:00", CustomerPhone: "+79995556667", NumPeople: 8, CustomerName: "Наталья", TableID: "6"},
		{ID: "23-1", Status: dom.StatusClosed, Start: "14:00", End: "16:00", CustomerPhone: "+79998887766", NumPeople: 4, CustomerName: "Михаил", TableID: "7"},
		{ID: "24-1", Status: dom.StatusNew, Start: "15:00", End: "17:00", CustomerPhone: "+79991112233", NumPeople: 5, CustomerName: "Татьяна", TableID: "8"},
		{ID: "155-1", Status: dom.StatusBanquet, Start: "17:00", End: "22:00", CustomerPhone: "+79994443332", NumPeople: 6, CustomerName: "Андрей", TableID: "3"},
		{ID: "28-1", Status: dom.StatusNew, Start: "16:00", End: "20:00", CustomerPhone: "+79997776665", NumPeople: 10, CustomerName: "Юлия", TableID: "9"},
		{ID: "28-2", Status: dom.StatusBill, Start: "17:00", End: "18:30", CustomerPhone: "+79991234567", NumPeople: 4, CustomerName: "Владимир", TableID: "9"},
		{ID: "30-1", Status: dom.StatusBill, Start: "18:00", End: "20:00", CustomerPhone: "+79998889900", NumPeople: 2, CustomerName: "Игорь", TableID: "11"},
		{ID: "191-1", Status: dom.StatusBanquet, Start: "19:00", End: "23:00", CustomerPhone: "+79991112233", NumPeople: 3, CustomerName: "Екатерина", TableID: "12"},

		// Reservations and live queue
		{ID: "5-res-1", Status: dom.StatusReservation, Start: "13:00", End: "15:00", CustomerPhone: "+79991234567", NumPeople: 4, CustomerName: "Анна", TableID: "1"},
		{ID: "5-res-2", Status: dom.StatusReservation, Start: "20:00", End: "22:00", CustomerPhone: "+79998889900", NumPeople: 2, CustomerName: "Сергей", TableID: "1"},
		{ID: "6-res-1", Status: dom.StatusReservation, Start: "14:00", End: "16:00", CustomerPhone: "+79991112233", NumPeople: 3, CustomerName: "Мария", TableID: "2"},
		{ID: "20-res-1", Status: dom.StatusLiveQueue, Start: "14:00", End: "16:00", CustomerPhone: "+79987654321", NumPeople: 2, CustomerName: "Михаил", TableID: "4"},
		{ID: "20-res-2", Status: dom.StatusReservation, Start: "18:00", End: "20:00", CustomerPhone: "+79994445566", NumPeople: 5, CustomerName: "Ольга", TableID: "4"},
		{ID: "21-res-1", Status: dom.StatusReservation, Start: "15:00", End: "17:00", CustomerPhone: "+79997778899", NumPeople: 6, CustomerName: "Дмитрий", TableID: "5"},
		{ID: "22-res-2", Status: dom.StatusLiveQueue, Start: "21:00", End: "22:30", CustomerPhone: "+79993334445", NumPeople: 4, CustomerName: "Алексей", TableID: "6"},
		{ID: "23-res-1", Status: dom.StatusReservation, Start: "16:00", End: "18:00", CustomerPhone: "+79996667788", NumPeople: 3, CustomerName: "Наталья", TableID: "7"},
		{ID: "24-res-1", Status: dom.StatusReservation, Start: "17:00", End: "19:00", CustomerPhone: "+79992223334", NumPeople: 7, CustomerName: "Игорь", TableID: "8"},
		{ID: "155-res-1", Status: dom.StatusReservation, Start: "18:00", End: "20:00", CustomerPhone: "+79995556667", NumPeople: 8, CustomerName: "Татьяна", TableID: "3"},
		{ID: "28-res-1", Status: dom.StatusLiveQueue, Start: "12:00", End: "14:00", CustomerPhone: "+79998887766", NumPeople: 4, CustomerName: "Владимир", TableID: "9"},
		{ID: "29-res-1", Status: dom.StatusReservation, Start: "20:00", End: "22:00", CustomerPhone: "+79991112233", NumPeople: 5, CustomerName: "Юлия", TableID: "10"},
		{ID: "30-res-1", Status: dom.StatusReservation, Start: "19:00", End: "21:00", CustomerPhone: "+79994443332", NumPeople: 6, CustomerName: "Андрей", TableID: "11"},
		{ID: "191-res-1", Status: dom.StatusReservation, Start: "20:00", End: "23:00", CustomerPhone: "+79997776665", NumPeople: 10, CustomerName: "Екатерина", TableID: "12"},
	}
}
