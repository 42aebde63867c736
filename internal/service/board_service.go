package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Hostess/internal/cache"
	dom "Hostess/internal/domain"
	"Hostess/internal/dto"

	"golang.org/x/sync/singleflight"
)

// BoardService projects the item store onto the per-table board: one view
// per catalog table, items classified into orders and reservations, times
// rendered as ISO-8601 with the restaurant's UTC offset. It never mutates
// what it reads.
type BoardService struct {
	items *ItemService
	cache *cache.BoardCache
	sf    singleflight.Group
	loc   *time.Location
	now   func() time.Time
}

// NewBoardService creates a BoardService. If c is nil, caching is disabled.
// The rendering offset is derived from the restaurant's IANA timezone, not
// hardcoded, so a zone change in the reference data follows through.
func NewBoardService(items *ItemService, c *cache.BoardCache) *BoardService {
	loc, err := time.LoadLocation(dom.DefaultRestaurant().Timezone)
	if err != nil {
		// Vladivostok is UTC+10 year-round; keep serving if tzdata is absent.
		loc = time.FixedZone("UTC+10", 10*60*60)
	}
	return &BoardService{items: items, cache: c, loc: loc, now: time.Now}
}

// Board returns the full board payload for the date.
func (s *BoardService) Board(ctx context.Context, date string) dto.BoardResponse {
	return dto.BoardResponse{
		AvailableDays: s.AvailableDays(),
		CurrentDay:    date,
		Restaurant:    dom.DefaultRestaurant(),
		Tables:        s.tables(ctx, date),
	}
}

// Search filters today's board down to tables with a case-insensitive
// substring hit on a reservation guest name or an order status.
func (s *BoardService) Search(ctx context.Context, query string) (dto.BoardResponse, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return dto.BoardResponse{}, ErrEmptyQuery
	}
	today := s.now().Format(dateLayout)

	var tables []dto.TableView
	if s.cache != nil {
		v, err, _ := s.sf.Do("search:"+strings.ToLower(q), func() (interface{}, error) {
			if tv, err := s.cache.GetSearch(ctx, q); err == nil && tv != nil {
				return tv, nil
			}
			tv := filterTables(s.project(today), q)
			_ = s.cache.SetSearch(ctx, q, tv)
			return tv, nil
		})
		if err == nil {
			tables = v.([]dto.TableView)
		}
	}
	if tables == nil {
		tables = filterTables(s.project(today), q)
	}

	return dto.BoardResponse{
		AvailableDays: s.AvailableDays(),
		CurrentDay:    today,
		Restaurant:    dom.DefaultRestaurant(),
		Tables:        tables,
	}, nil
}

// AvailableDays lists the selectable dates: today through today+6, in the
// process's local calendar. Recomputed on every call.
func (s *BoardService) AvailableDays() []string {
	today := s.now()
	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, today.AddDate(0, 0, i).Format(dateLayout))
	}
	return days
}

func (s *BoardService) tables(ctx context.Context, date string) []dto.TableView {
	if s.cache != nil {
		v, err, _ := s.sf.Do("board:"+date, func() (interface{}, error) {
			if tv, err := s.cache.GetBoard(ctx, date); err == nil && tv != nil {
				return tv, nil
			}
			tv := s.project(date)
			_ = s.cache.SetBoard(ctx, date, tv)
			return tv, nil
		})
		if err == nil {
			return v.([]dto.TableView)
		}
	}
	return s.project(date)
}

// project builds one view per catalog table, in catalog order, regardless of
// how many items the date has. Within a table the items keep the bucket's
// insertion order.
func (s *BoardService) project(date string) []dto.TableView {
	items := s.items.ListByDate(date)
	offset := s.offsetFor(date)

	catalog := dom.TableCatalog()
	out := make([]dto.TableView, 0, len(catalog))
	for _, t := range catalog {
		view := dto.TableView{
			ID:           t.ID,
			Capacity:     t.Capacity,
			Number:       t.Number,
			Zone:         t.Zone,
			Orders:       []dto.OrderView{},
			Reservations: []dto.ReservationView{},
		}
		for _, it := range items {
			if it.TableID != t.ID {
				continue
			}
			switch dom.Classify(it.Status) {
			case dom.CategoryReservation:
				status := string(it.Status)
				if it.Status == dom.StatusLiveQueue {
					status = dom.LiveQueueLabel
				}
				view.Reservations = append(view.Reservations, dto.ReservationView{
					ID:                 it.ID,
					NameForReservation: it.CustomerName,
					NumPeople:          it.NumPeople,
					PhoneNumber:        it.CustomerPhone,
					Status:             status,
					SeatingTime:        isoTimestamp(date, it.Start, offset),
					EndTime:            isoTimestamp(date, it.End, offset),
				})
			default:
				view.Orders = append(view.Orders, dto.OrderView{
					ID:            it.ID,
					Status:        string(it.Status),
					StartTime:     isoTimestamp(date, it.Start, offset),
					EndTime:       isoTimestamp(date, it.End, offset),
					CustomerPhone: it.CustomerPhone,
					NumPeople:     it.NumPeople,
					CustomerName:  it.CustomerName,
				})
			}
		}
		out = append(out, view)
	}
	return out
}

// offsetFor renders the restaurant zone's UTC offset for the given date,
// e.g. "+10:00". Dates that fail to parse fall back to the current offset.
func (s *BoardService) offsetFor(date string) string {
	t, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		t = s.now().In(s.loc)
	}
	_, secs := t.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// isoTimestamp glues a date key, a wall-clock HH:MM and an offset into the
// board's timestamp format. No range validation: end before start passes
// through unchanged.
func isoTimestamp(date, hhmm, offset string) string {
	return date + "T" + hhmm + ":00" + offset
}

func filterTables(tables []dto.TableView, q string) []dto.TableView {
	q = strings.ToLower(q)
	out := []dto.TableView{}
	for _, t := range tables {
		if tableMatches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func tableMatches(t dto.TableView, q string) bool {
	for _, r := range t.Reservations {
		if strings.Contains(strings.ToLower(r.NameForReservation), q) {
			return true
		}
	}
	for _, o := range t.Orders {
		if strings.Contains(strings.ToLower(o.Status), q) {
			return true
		}
	}
	return false
}
