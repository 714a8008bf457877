package store

const savedKey = "saved-jobs"

// Saved persists the set of saved job ids. The stored value is a plain array
// of ids; the wrapper keeps it duplicate-free.
type Saved struct {
	kv *KV
}

func NewSaved(kv *KV) *Saved {
	return &Saved{kv: kv}
}

// IDs returns the saved job ids in insertion order.
func (s *Saved) IDs() []int {
	var ids []int
	s.kv.Get(savedKey, &ids)
	return ids
}

// Contains reports whether the given id is saved.
func (s *Saved) Contains(id int) bool {
	for _, saved := range s.IDs() {
		if saved == id {
			return true
		}
	}
	return false
}

// Save adds the id to the set. Saving an already saved id is a no-op and
// reports false.
func (s *Saved) Save(id int) (bool, error) {
	ids := s.IDs()
	for _, saved := range ids {
		if saved == id {
			return false, nil
		}
	}
	return true, s.kv.Set(savedKey, append(ids, id))
}

// Unsave removes the id from the set. Removing an absent id is a no-op and
// reports false.
func (s *Saved) Unsave(id int) (bool, error) {
	ids := s.IDs()
	for idx, saved := range ids {
		if saved == id {
			ids = append(ids[:idx], ids[idx+1:]...)
			return true, s.kv.Set(savedKey, ids)
		}
	}
	return false, nil
}

// Clear drops the whole saved set.
func (s *Saved) Clear() error {
	return s.kv.Delete(savedKey)
}
