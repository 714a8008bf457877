package store

import (
	"fmt"
	"time"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
)

// Status is the application status tracked per job.
type Status string

const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
	StatusRejected   Status = "Rejected"
	StatusSelected   Status = "Selected"
)

const (
	statusKey    = "job-status"
	statusLogKey = "status-updates"

	// maxLogEntries caps the status-update log; the oldest entries are
	// dropped first.
	maxLogEntries = 50
)

// ParseStatus validates a user-entered status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Update is one entry of the append-only status-change log.
type Update struct {
	JobID     int    `json:"jobId"`
	JobTitle  string `json:"jobTitle"`
	Company   string `json:"company"`
	Status    Status `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// Statuses persists the per-job application status map plus the capped
// status-update log.
type Statuses struct {
	kv *KV

	// now is swapped in tests.
	now func() time.Time
}

func NewStatuses(kv *KV) *Statuses {
	return &Statuses{kv: kv, now: time.Now}
}

// Get returns the status of the given job, defaulting to StatusNotApplied
// for jobs that were never touched.
func (s *Statuses) Get(id int) Status {
	statuses := s.all()
	if status, ok := statuses[id]; ok {
		return status
	}
	return StatusNotApplied
}

// All returns the full persisted status map. Jobs absent from the map are
// StatusNotApplied.
func (s *Statuses) All() map[int]Status {
	return s.all()
}

// Set records the status of a job and appends an entry to the update log.
// Setting StatusNotApplied removes the map entry instead of persisting the
// default. Repeated identical sets still append a log entry each time.
func (s *Statuses) Set(job *catalog.Job, status Status) error {
	statuses := s.all()
	if status == StatusNotApplied {
		delete(statuses, job.ID)
	} else {
		statuses[job.ID] = status
	}
	if err := s.kv.Set(statusKey, statuses); err != nil {
		return err
	}

	return s.appendLog(Update{
		JobID:     job.ID,
		JobTitle:  job.Title,
		Company:   job.Company,
		Status:    status,
		Timestamp: s.now().UnixMilli(),
	})
}

// Updates returns the status-change log, most recent first.
func (s *Statuses) Updates() []Update {
	var log []Update
	s.kv.Get(statusLogKey, &log)

	reversed := make([]Update, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- {
		reversed = append(reversed, log[i])
	}
	return reversed
}

func (s *Statuses) all() map[int]Status {
	statuses := make(map[int]Status)
	s.kv.Get(statusKey, &statuses)
	return statuses
}

func (s *Statuses) appendLog(update Update) error {
	var log []Update
	s.kv.Get(statusLogKey, &log)

	log = append(log, update)
	if len(log) > maxLogEntries {
		log = log[len(log)-maxLogEntries:]
	}
	return s.kv.Set(statusLogKey, log)
}
