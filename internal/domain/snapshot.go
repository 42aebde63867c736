package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is the whole dataset: date key "YYYY-MM-DD" -> that day's bucket.
// The date key is an opaque label chosen by the caller, no timezone math.
type Snapshot map[string]*DayBucket

// DayBucket holds one date's items keyed by id, preserving insertion order.
// Iteration order is insertion order, not chronological — callers must not
// assume the items are sorted by time.
type DayBucket struct {
	items map[string]Item
	order []string
}

// NewDayBucket returns an empty bucket.
func NewDayBucket() *DayBucket {
	return &DayBucket{items: make(map[string]Item)}
}

// Put inserts the item or replaces it in place (position is kept on replace).
func (b *DayBucket) Put(it Item) {
	if b.items == nil {
		b.items = make(map[string]Item)
	}
	if _, ok := b.items[it.ID]; !ok {
		b.order = append(b.order, it.ID)
	}
	b.items[it.ID] = it
}

// Get returns the item by id.
func (b *DayBucket) Get(id string) (Item, bool) {
	it, ok := b.items[id]
	return it, ok
}

// Delete removes the item by id. Returns false if the id is not in the bucket.
func (b *DayBucket) Delete(id string) bool {
	if _, ok := b.items[id]; !ok {
		return false
	}
	delete(b.items, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Items returns the bucket's items in insertion order.
func (b *DayBucket) Items() []Item {
	out := make([]Item, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.items[id])
	}
	return out
}

// Len returns the number of items in the bucket.
func (b *DayBucket) Len() int { return len(b.items) }

// DuplicateStarts reports, per table id, wall-clock start times shared by
// more than one item. An empty map means the "unique start per (date, table)"
// property holds for this bucket.
func (b *DayBucket) DuplicateStarts() map[string][]string {
	seen := make(map[string]map[string]int)
	for _, id := range b.order {
		it := b.items[id]
		if seen[it.TableID] == nil {
			seen[it.TableID] = make(map[string]int)
		}
		seen[it.TableID][it.Start]++
	}
	dup := make(map[string][]string)
	for tableID, starts := range seen {
		for start, n := range starts {
			if n > 1 {
				dup[tableID] = append(dup[tableID], start)
			}
		}
	}
	return dup
}

// MarshalJSON renders the bucket as a JSON object in insertion order, so a
// snapshot survives a save/load round trip with its ordering intact.
func (b *DayBucket) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(b.items[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of id -> item, keeping the key order of
// the document as the bucket's insertion order.
func (b *DayBucket) UnmarshalJSON(data []byte) error {
	b.items = make(map[string]Item)
	b.order = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("day bucket: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("day bucket: expected string key, got %v", keyTok)
		}
		var it Item
		if err := dec.Decode(&it); err != nil {
			return fmt.Errorf("day bucket: item %q: %w", id, err)
		}
		b.items[id] = it
		b.order = append(b.order, id)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
