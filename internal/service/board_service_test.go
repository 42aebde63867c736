package service

import (
	"context"
	"testing"

	dom "Hostess/internal/domain"
	"Hostess/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardFixture(t *testing.T, today string) (*ItemService, *BoardService) {
	t.Helper()
	items, _ := newItemFixture(t, today)
	board := NewBoardService(items, nil)
	board.now = fixedClock(today)
	return items, board
}

func tableByNumber(t *testing.T, tables []dto.TableView, number string) dto.TableView {
	t.Helper()
	for _, tv := range tables {
		if tv.Number == number {
			return tv
		}
	}
	t.Fatalf("no table with number %s", number)
	return dto.TableView{}
}

func TestBoard_TwelveTablesInCatalogOrder(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	resp := board.Board(context.Background(), "2025-06-01")
	require.Len(t, resp.Tables, 12)
	assert.Equal(t, "2025-06-01", resp.CurrentDay)
	assert.Equal(t, "Супра", resp.Restaurant.RestaurantName)

	wantNumbers := []string{"5", "6", "155", "20", "21", "22", "23", "24", "28", "29", "30", "191"}
	for i, tv := range resp.Tables {
		assert.Equal(t, wantNumbers[i], tv.Number, "position %d", i)
	}
}

func TestBoard_EmptyDateStillAllTables(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	resp := board.Board(context.Background(), "2030-01-01")
	require.Len(t, resp.Tables, 12)
	for _, tv := range resp.Tables {
		assert.NotNil(t, tv.Orders)
		assert.NotNil(t, tv.Reservations)
		assert.Empty(t, tv.Orders)
		assert.Empty(t, tv.Reservations)
	}
}

func TestBoard_SeedScenarioTable29(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	resp := board.Board(context.Background(), "2025-06-01")
	tv := tableByNumber(t, resp.Tables, "29")
	assert.Equal(t, "10", tv.ID)

	require.Len(t, tv.Orders, 3)
	assert.Equal(t, "29-1", tv.Orders[0].ID)
	assert.Equal(t, "New", tv.Orders[0].Status)
	assert.Equal(t, "2025-06-01T12:00:00+10:00", tv.Orders[0].StartTime)
	assert.Equal(t, "2025-06-01T19:00:00+10:00", tv.Orders[0].EndTime)
	assert.Equal(t, "29-2", tv.Orders[1].ID)
	assert.Equal(t, "Bill", tv.Orders[1].Status)
	assert.Equal(t, "29-3", tv.Orders[2].ID)
	assert.Equal(t, "Closed", tv.Orders[2].Status)

	require.Len(t, tv.Reservations, 1)
	res := tv.Reservations[0]
	assert.Equal(t, "29-res-1", res.ID)
	assert.Equal(t, "Юлия", res.NameForReservation)
	assert.Equal(t, 5, res.NumPeople)
	assert.Equal(t, "Reservation", res.Status)
	assert.Equal(t, "2025-06-01T20:00:00+10:00", res.SeatingTime)
	assert.Equal(t, "2025-06-01T22:00:00+10:00", res.EndTime)
}

func TestBoard_LiveQueueDisplayLabel(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	resp := board.Board(context.Background(), "2025-06-01")
	tv := tableByNumber(t, resp.Tables, "20")

	require.Len(t, tv.Reservations, 2)
	assert.Equal(t, "20-res-1", tv.Reservations[0].ID)
	assert.Equal(t, "Живая очередь", tv.Reservations[0].Status)
	assert.Equal(t, "Reservation", tv.Reservations[1].Status)
}

func TestBoard_ReservationFieldRenames(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	resp := board.Board(context.Background(), "2025-06-01")
	tv := tableByNumber(t, resp.Tables, "5")

	require.NotEmpty(t, tv.Reservations)
	res := tv.Reservations[0]
	assert.Equal(t, "Анна", res.NameForReservation)
	assert.Equal(t, "+79991234567", res.PhoneNumber)
}

func TestBoard_OffsetDerivedFromRestaurantZone(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	// Vladivostok is UTC+10 year-round, both midsummer and midwinter.
	assert.Equal(t, "+10:00", board.offsetFor("2025-06-01"))
	assert.Equal(t, "+10:00", board.offsetFor("2025-01-15"))
}

func TestBoard_InsertionOrderWithinTable(t *testing.T) {
	items, board := newBoardFixture(t, "2025-06-01")
	ctx := context.Background()

	items.Create(ctx, "2025-07-10", dom.Item{ID: "o-late", Status: dom.StatusNew, Start: "21:00", End: "22:00", TableID: "1"})
	items.Create(ctx, "2025-07-10", dom.Item{ID: "o-early", Status: dom.StatusNew, Start: "11:00", End: "12:00", TableID: "1"})

	resp := board.Board(ctx, "2025-07-10")
	tv := tableByNumber(t, resp.Tables, "5")
	require.Len(t, tv.Orders, 2)
	assert.Equal(t, "o-late", tv.Orders[0].ID)
	assert.Equal(t, "o-early", tv.Orders[1].ID)
}

func TestSearch_EmptyQueryRejected(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	_, err := board.Search(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = board.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearch_ByOrderStatus(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	// Case-insensitive substring over order statuses: "ban" hits Banquet.
	resp, err := board.Search(context.Background(), "ban")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", resp.CurrentDay, "search always runs on today")

	numbers := make([]string, 0, len(resp.Tables))
	for _, tv := range resp.Tables {
		numbers = append(numbers, tv.Number)
	}
	assert.Contains(t, numbers, "21")
	assert.Contains(t, numbers, "155")
	assert.Contains(t, numbers, "191")
	assert.Len(t, numbers, 3, "only tables with a Banquet order match")
}

func TestSearch_ByGuestName(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	resp, err := board.Search(context.Background(), "юлия")
	require.NoError(t, err)

	// Юлия has a reservation on table 29 only; her order on table 28 does
	// not match — order matching is by status, not by name.
	require.Len(t, resp.Tables, 1)
	assert.Equal(t, "29", resp.Tables[0].Number)
}

func TestSearch_NoMatches(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	resp, err := board.Search(context.Background(), "zzzzz")
	require.NoError(t, err)
	assert.NotNil(t, resp.Tables)
	assert.Empty(t, resp.Tables)
}

func TestAvailableDays_RollingWeek(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-01")

	want := []string{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04",
		"2025-06-05", "2025-06-06", "2025-06-07",
	}
	assert.Equal(t, want, board.AvailableDays())
}

func TestAvailableDays_MonthBoundary(t *testing.T) {
	_, board := newBoardFixture(t, "2025-06-28")

	days := board.AvailableDays()
	require.Len(t, days, 7)
	assert.Equal(t, "2025-06-28", days[0])
	assert.Equal(t, "2025-07-04", days[6])
}
