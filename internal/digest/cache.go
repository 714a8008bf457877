package digest

import (
	"time"

	"github.com/jobtrackr/jobtrackr/internal/store"
)

const keyPrefix = "digest:"

// Cache is the date-keyed daily digest store. One record exists per local
// calendar day; once written it stays immutable for that day. Crossing
// midnight invalidates the cache naturally because the key changes.
type Cache struct {
	kv *store.KV

	// now is swapped in tests.
	now func() time.Time
}

func NewCache(kv *store.KV) *Cache {
	return &Cache{kv: kv, now: time.Now}
}

// DateKey returns the storage key for the given day.
func DateKey(t time.Time) string {
	return keyPrefix + t.Format("2006-01-02")
}

// ForToday returns the digest stored for the current calendar day, reporting
// false when none was generated yet.
func (c *Cache) ForToday() ([]Entry, bool) {
	var entries []Entry
	if !c.kv.Get(DateKey(c.now()), &entries) {
		return nil, false
	}
	return entries, true
}

// StoreForToday persists the digest under today's date key.
func (c *Cache) StoreForToday(entries []Entry) error {
	return c.kv.Set(DateKey(c.now()), entries)
}

// ClearToday drops today's record so the next read regenerates.
func (c *Cache) ClearToday() error {
	return c.kv.Delete(DateKey(c.now()))
}
