package entities

// Note author labels shown next to each note.
const (
	NoteAuthorStaff    = "Engineer/Staff"
	NoteAuthorCustomer = "Customer"
)

// NoteAuthorFor returns the author label for notes written by role.
func NoteAuthorFor(role UserRole) string {
	if role == UserRoleAdmin {
		return NoteAuthorStaff
	}
	return NoteAuthorCustomer
}

// JobNote is an append-only entry in a job's history.
type JobNote struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Timestamp string   `json:"timestamp"`
	Author    string   `json:"author"`
	Images    []string `json:"images,omitempty"`
}

// Job is a billable service engagement tied to one customer.
//
// Storage model:
//   - the whole collection is one JSON document under the "jobs" key
//   - ID is unique and immutable after creation
//   - CustomerID groups a customer's history and stays stable across edits
//
// StartDate and WarrantyEndDate keep the ISO text captured by staff
// (YYYY-MM-DD or RFC3339). A warranty end before the start is accepted.
type Job struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	CustomerID      string        `json:"customerId"`
	CustomerName    string        `json:"customerName,omitempty"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	CustomerPhone   string        `json:"customerPhone,omitempty"`
	CustomerAddress string        `json:"customerAddress,omitempty"`
	Status          JobStatus     `json:"status"`
	StartDate       string        `json:"startDate"`
	WarrantyEndDate string        `json:"warrantyEndDate"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Amount          float64       `json:"amount"`
	Notes           []JobNote     `json:"notes,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate a stored note slice.
func (j Job) Clone() Job {
	if j.Notes != nil {
		notes := make([]JobNote, len(j.Notes))
		for i, n := range j.Notes {
			if n.Images != nil {
				n.Images = append([]string(nil), n.Images...)
			}
			notes[i] = n
		}
		j.Notes = notes
	}
	return j
}

// WithNote returns a copy of j with note placed first. Earlier notes are
// kept untouched and in order.
func (j Job) WithNote(note JobNote) Job {
	out := j.Clone()
	notes := make([]JobNote, 0, len(out.Notes)+1)
	notes = append(notes, note)
	notes = append(notes, out.Notes...)
	out.Notes = notes
	return out
}

// JobPatch holds the editable job fields. Nil fields are left untouched.
type JobPatch struct {
	Title           *string
	Description     *string
	CustomerID      *string
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	CustomerAddress *string
	Status          *JobStatus
	StartDate       *string
	WarrantyEndDate *string
	PaymentStatus   *PaymentStatus
	Amount          *float64
}

// Apply merges the patch into a copy of j. ID is never touched and a blank
// CustomerID is ignored so the grouping key survives ordinary edits.
func (p JobPatch) Apply(j Job) Job {
	out := j.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.CustomerID != nil && *p.CustomerID != "" {
		out.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		out.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		out.CustomerEmail = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		out.CustomerPhone = *p.CustomerPhone
	}
	if p.CustomerAddress != nil {
		out.CustomerAddress = *p.CustomerAddress
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.StartDate != nil {
		out.StartDate = *p.StartDate
	}
	if p.WarrantyEndDate != nil {
		out.WarrantyEndDate = *p.WarrantyEndDate
	}
	if p.PaymentStatus != nil {
		out.PaymentStatus = *p.PaymentStatus
	}
	if p.Amount != nil {
		out.Amount = *p.Amount
	}
	return out
}
