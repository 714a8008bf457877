package store

const (
	checklistKey = "checklist"
	proofKey     = "proof-links"
)

// Checklist persists the self-test checklist flags by check id.
type Checklist struct {
	kv *KV
}

func NewChecklist(kv *KV) *Checklist {
	return &Checklist{kv: kv}
}

// Flags returns the persisted check results. Unknown ids default to false.
func (c *Checklist) Flags() map[string]bool {
	flags := make(map[string]bool)
	c.kv.Get(checklistKey, &flags)
	return flags
}

// SetFlag records the outcome of one check.
func (c *Checklist) SetFlag(id string, passed bool) error {
	flags := c.Flags()
	flags[id] = passed
	return c.kv.Set(checklistKey, flags)
}

// ProofLinks is the submission-proof record: the project links a user
// provides to mark the work shipped.
type ProofLinks struct {
	Repo   string `json:"repo"`
	Deploy string `json:"deploy"`
	Demo   string `json:"demo"`
}

// Proof returns the stored proof links, empty when none were saved yet.
func (c *Checklist) Proof() ProofLinks {
	var links ProofLinks
	c.kv.Get(proofKey, &links)
	return links
}

// SetProof overwrites the proof links record.
func (c *Checklist) SetProof(links ProofLinks) error {
	return c.kv.Set(proofKey, links)
}
