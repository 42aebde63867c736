package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	dom "Hostess/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory SnapshotRepo for tests.
type memRepo struct {
	loadSnap  dom.Snapshot
	saveCalls int
	failSave  bool
}

func (m *memRepo) Load(context.Context) (dom.Snapshot, error) {
	if m.loadSnap != nil {
		return m.loadSnap, nil
	}
	return dom.Snapshot{}, nil
}

func (m *memRepo) Save(_ context.Context, snap dom.Snapshot) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.saveCalls++
	return nil
}

func fixedClock(date string) func() time.Time {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newItemFixture(t *testing.T, today string) (*ItemService, *memRepo) {
	t.Helper()
	mem := &memRepo{}
	svc := NewItemService(mem, nil, nil)
	svc.now = fixedClock(today)
	require.NoError(t, svc.Load(context.Background()))
	return svc, mem
}

func TestItemService_FirstRunSeedsToday(t *testing.T) {
	svc, mem := newItemFixture(t, "2025-06-01")

	items := svc.ListByDate("2025-06-01")
	assert.Len(t, items, 31)
	assert.Equal(t, "29-1", items[0].ID, "seed keeps its declared order")
	assert.Equal(t, 1, mem.saveCalls, "seed is persisted immediately")
}

func TestItemService_LoadExistingDataSkipsSeed(t *testing.T) {
	existing := dom.NewDayBucket()
	existing.Put(dom.Item{ID: "x-1", Status: dom.StatusNew, Start: "12:00", End: "13:00", TableID: "1"})
	mem := &memRepo{loadSnap: dom.Snapshot{"2025-06-01": existing}}

	svc := NewItemService(mem, nil, nil)
	svc.now = fixedClock("2025-06-01")
	require.NoError(t, svc.Load(context.Background()))

	assert.Len(t, svc.ListByDate("2025-06-01"), 1)
	assert.Zero(t, mem.saveCalls)
}

func TestItemService_ListByDateUnknownDate(t *testing.T) {
	svc, _ := newItemFixture(t, "2025-06-01")

	items := svc.ListByDate("2030-01-01")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemService_CreateAssignsFreshID(t *testing.T) {
	svc, mem := newItemFixture(t, "2025-06-01")
	before := mem.saveCalls

	created := svc.Create(context.Background(), "2025-07-10", dom.Item{
		Status:        dom.StatusNew,
		Start:         "18:00",
		End:           "20:00",
		CustomerName:  "Олег",
		CustomerPhone: "+79990001122",
		NumPeople:     3,
		TableID:       "2",
	})

	assert.True(t, strings.HasPrefix(created.ID, "new-"), "id %q", created.ID)
	assert.Equal(t, before+1, mem.saveCalls, "create persists synchronously")

	// The bucket is created lazily and the item comes back verbatim.
	items := svc.ListByDate("2025-07-10")
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestItemService_CreateKeepsCallerID(t *testing.T) {
	svc, _ := newItemFixture(t, "2025-06-01")

	created := svc.Create(context.Background(), "2025-07-10", dom.Item{ID: "my-id", Status: dom.StatusNew, TableID: "1"})
	assert.Equal(t, "my-id", created.ID)
}

func TestItemService_CreateForTables(t *testing.T) {
	svc, mem := newItemFixture(t, "2025-06-01")
	before := mem.saveCalls

	base := dom.Item{
		Status:        dom.StatusNew,
		Start:         "18:00",
		End:           "20:00",
		CustomerName:  "Иван",
		CustomerPhone: "+79991234567",
		NumPeople:     4,
	}
	created := svc.CreateForTables(context.Background(), "2025-07-10", base, []string{"1", "2"})

	require.Len(t, created, 2)
	assert.Equal(t, "1", created[0].TableID)
	assert.Equal(t, "2", created[1].TableID)
	assert.NotEqual(t, created[0].ID, created[1].ID)

	// Everything except table and id is shared.
	a, b := created[0], created[1]
	a.ID, a.TableID = "", ""
	b.ID, b.TableID = "", ""
	assert.Equal(t, a, b)

	assert.Equal(t, before+1, mem.saveCalls, "one snapshot write for the whole batch")
}

func TestItemService_DeleteScansAllDates(t *testing.T) {
	svc, _ := newItemFixture(t, "2025-06-01")
	svc.Create(context.Background(), "2025-07-10", dom.Item{ID: "far-future", Status: dom.StatusNew, TableID: "1"})

	require.NoError(t, svc.Delete(context.Background(), "far-future"))
	assert.Empty(t, svc.ListByDate("2025-07-10"))

	// Seeded items live on another date and are found the same way.
	require.NoError(t, svc.Delete(context.Background(), "29-1"))
	for _, it := range svc.ListByDate("2025-06-01") {
		assert.NotEqual(t, "29-1", it.ID)
	}
}

func TestItemService_DeleteUnknownID(t *testing.T) {
	svc, _ := newItemFixture(t, "2025-06-01")

	require.NoError(t, svc.Delete(context.Background(), "29-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "29-1"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), ErrNotFound)
}

func TestItemService_PersistenceFailureDoesNotFailWrites(t *testing.T) {
	mem := &memRepo{}
	svc := NewItemService(mem, nil, nil)
	svc.now = fixedClock("2025-06-01")
	require.NoError(t, svc.Load(context.Background()))

	mem.failSave = true
	created := svc.Create(context.Background(), "2025-07-10", dom.Item{Status: dom.StatusNew, TableID: "1"})

	// In-memory state is authoritative; the failed save is only logged.
	items := svc.ListByDate("2025-07-10")
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)

	// Flush is the exception: shutdown must see the error.
	assert.Error(t, svc.Flush(context.Background()))
}

func TestItemService_InsertionOrderNotChronological(t *testing.T) {
	svc, _ := newItemFixture(t, "2025-06-01")
	ctx := context.Background()

	svc.Create(ctx, "2025-07-10", dom.Item{ID: "late", Start: "21:00", TableID: "1", Status: dom.StatusNew})
	svc.Create(ctx, "2025-07-10", dom.Item{ID: "early", Start: "11:00", TableID: "1", Status: dom.StatusNew})

	items := svc.ListByDate("2025-07-10")
	require.Len(t, items, 2)
	assert.Equal(t, "late", items[0].ID)
	assert.Equal(t, "early", items[1].ID)
}

func TestItemService_EndBeforeStartAccepted(t *testing.T) {
	svc, _ := newItemFixture(t, "2025-06-01")

	created := svc.Create(context.Background(), "2025-07-10", dom.Item{
		Status: dom.StatusNew, Start: "20:00", End: "12:00", TableID: "1",
	})
	assert.Equal(t, "20:00", created.Start)
	assert.Equal(t, "12:00", created.End)
}
