package entities

// JobStatus represents the lifecycle of a service engagement.
//
// Staff may move a job between any two statuses, including re-opening a
// COMPLETED job. Nothing records the reversal besides the notes staff add.
type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// JobStatusAll is the pseudo status accepted by list filters.
const JobStatusAll = "ALL"

var jobStatuses = []JobStatus{
	JobStatusPending,
	JobStatusInProgress,
	JobStatusCompleted,
	JobStatusCancelled,
}

// jobTransitions is the job transition table. Every status reaches every
// other one.
var jobTransitions = func() map[JobStatus]map[JobStatus]bool {
	table := make(map[JobStatus]map[JobStatus]bool, len(jobStatuses))
	for _, from := range jobStatuses {
		table[from] = make(map[JobStatus]bool, len(jobStatuses))
		for _, to := range jobStatuses {
			table[from][to] = true
		}
	}
	return table
}()

// JobStatuses returns the known job statuses in display order.
func JobStatuses() []JobStatus {
	out := make([]JobStatus, len(jobStatuses))
	copy(out, jobStatuses)
	return out
}

func (s JobStatus) IsValid() bool {
	_, ok := jobTransitions[s]
	return ok
}

// CanTransitionTo reports whether the job transition table allows s -> next.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	return jobTransitions[s][next]
}

// TransitionTo returns next when the move is allowed.
func (s JobStatus) TransitionTo(next JobStatus) (JobStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, invalidTransition("job", s, next)
	}
	return next, nil
}

// PaymentStatus is the settlement state of a job's amount.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusPartial:
		return true
	}
	return false
}
