package store

import "github.com/jobtrackr/jobtrackr/internal/matching"

const prefsKey = "preferences"

// Prefs persists the user's matching preferences singleton.
type Prefs struct {
	kv *KV
}

func NewPrefs(kv *KV) *Prefs {
	return &Prefs{kv: kv}
}

// Get returns the stored preferences. It reports false when no valid
// preferences exist, which consumers treat as "scoring disabled".
func (p *Prefs) Get() (*matching.Preferences, bool) {
	var prefs matching.Preferences
	if !p.kv.Get(prefsKey, &prefs) {
		return nil, false
	}
	return &prefs, true
}

// Set overwrites the preferences wholesale.
func (p *Prefs) Set(prefs *matching.Preferences) error {
	return p.kv.Set(prefsKey, prefs)
}

// Clear removes the preferences, returning the tool to the
// scoring-disabled state.
func (p *Prefs) Clear() error {
	return p.kv.Delete(prefsKey)
}
