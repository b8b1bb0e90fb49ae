package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IJobUseCase exposes the job lifecycle.
//
// Every mutation loads the whole collection, changes one record and writes
// the whole collection back. Read views are recomputed from the stored
// collection on every call.

type IJobUseCase interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	Update(ctx context.Context, id string, patch entities.JobPatch) (entities.Job, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	SetStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	AppendNote(ctx context.Context, id string, note NoteInput, author entities.User) (entities.Job, error)
	SetWarrantyEndDate(ctx context.Context, id string, endDate string) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	FilterByStatus(ctx context.Context, status string) ([]entities.Job, error)
	FilterExpiringWithin(ctx context.Context, days int, now time.Time) ([]entities.Job, error)
	ListByStartDate(ctx context.Context, date string) ([]entities.Job, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Job, error)
	GenerateInviteReference(ctx context.Context, id string) (string, error)
}

// NoteInput is what a user submits when adding a note to a job.
type NoteInput struct {
	Text   string
	Images []string
}

type JobUseCase struct {
	repo          interfaces.IJobRepository
	metrics       interfaces.ILifecycleMetrics
	publicBaseURL string

	mu         sync.Mutex
	now        func() time.Time
	nextNumber numberSource
	newNoteID  func() string
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, metrics interfaces.ILifecycleMetrics, publicBaseURL string) *JobUseCase {
	return &JobUseCase{
		repo:          repo,
		metrics:       metrics,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
		now:           func() time.Time { return time.Now().UTC() },
		nextNumber:    randomFourDigits,
		newNoteID:     func() string { return "N-" + uuid.NewString() },
	}
}

// load returns the stored jobs, seeding the demo collection when nothing
// usable is stored. Callers must hold u.mu.
func (u *JobUseCase) load(ctx context.Context) ([]entities.Job, error) {
	jobs, found, err := u.repo.LoadAll(ctx)
	switch {
	case errors.Is(err, ErrCorruptCollection):
		log.Printf("[job][usecase] stored jobs unreadable; reseeding err=%v", err)
	case err != nil:
		return nil, err
	case found:
		return jobs, nil
	}

	seed := entities.DemoJobs(u.now())
	if err := u.repo.SaveAll(ctx, seed); err != nil {
		log.Printf("[job][usecase] seeding failed err=%v", err)
		return nil, err
	}
	log.Printf("[job][usecase] seeded demo jobs count=%d", len(seed))
	return seed, nil
}

func (u *JobUseCase) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	job.Title = strings.TrimSpace(job.Title)
	job.CustomerName = strings.TrimSpace(job.CustomerName)
	job.CustomerID = strings.TrimSpace(job.CustomerID)
	if job.Status == "" {
		job.Status = entities.JobStatusPending
	}
	if job.PaymentStatus == "" {
		job.PaymentStatus = entities.PaymentStatusUnpaid
	}
	if err := validateJob(job); err != nil {
		log.Printf("[job][usecase] create rejected err=%v", err)
		return entities.Job{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	jobs, err := u.load(ctx)
	if err != nil {
		return entities.Job{}, err
	}

	job.ID, err = newShortID("J", u.nextNumber, func(id string) bool { return indexOfJob(jobs, id) >= 0 })
	if err != nil {
		return entities.Job{}, err
	}
	if job.CustomerID == "" {
		job.CustomerID, err = newShortID("CUST", u.nextNumber, func(id string) bool { return hasCustomer(jobs, id) })
		if err != nil {
			return entities.Job{}, err
		}
	}
	job.Notes = nil

	if err := u.repo.SaveAll(ctx, append(jobs, job)); err != nil {
		log.Printf("[job][usecase] create persist failed job_id=%s err=%v", job.ID, err)
		return entities.Job{}, err
	}
	if u.metrics != nil {
		u.metrics.IncJobCreated()
	}
	log.Printf("[job][usecase] create success job_id=%s customer_id=%s", job.ID, job.CustomerID)
	return job, nil
}

func (u *JobUseCase) Update(ctx context.Context, id string, patch entities.JobPatch) (entities.Job, error) {
	return u.mutate(ctx, id, "update", func(j entities.Job) (entities.Job, error) {
		updated := patch.Apply(j)
		updated.Title = strings.TrimSpace(updated.Title)
		updated.CustomerName = strings.TrimSpace(updated.CustomerName)
		if err := validateJob(updated); err != nil {
			return entities.Job{}, err
		}
		if updated.Status != j.Status {
			if _, err := j.Status.TransitionTo(updated.Status); err != nil {
				return entities.Job{}, err
			}
			u.recordStatusChange(j.Status, updated.Status)
		}
		return updated, nil
	})
}

func (u *JobUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return validationError("job id is required")
	}
	if !confirmed {
		log.Printf("[job][usecase] delete not confirmed job_id=%s", id)
		return ErrDeleteNotConfirmed
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	jobs, err := u.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOfJob(jobs, id)
	if idx < 0 {
		return notFoundError("job", id)
	}

	remaining := make([]entities.Job, 0, len(jobs)-1)
	remaining = append(remaining, jobs[:idx]...)
	remaining = append(remaining, jobs[idx+1:]...)
	if err := u.repo.SaveAll(ctx, remaining); err != nil {
		log.Printf("[job][usecase] delete persist failed job_id=%s err=%v", id, err)
		return err
	}
	if u.metrics != nil {
		u.metrics.IncJobDeleted()
	}
	log.Printf("[job][usecase] delete success job_id=%s", id)
	return nil
}

func (u *JobUseCase) SetStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	if !status.IsValid() {
		return entities.Job{}, validationError("unknown job status %q", status)
	}
	return u.mutate(ctx, id, "set-status", func(j entities.Job) (entities.Job, error) {
		next, err := j.Status.TransitionTo(status)
		if err != nil {
			return entities.Job{}, err
		}
		u.recordStatusChange(j.Status, next)
		j.Status = next
		return j, nil
	})
}

func (u *JobUseCase) AppendNote(ctx context.Context, id string, note NoteInput, author entities.User) (entities.Job, error) {
	text := strings.TrimSpace(note.Text)
	images := make([]string, 0, len(note.Images))
	for _, img := range note.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	if text == "" && len(images) == 0 {
		return entities.Job{}, validationError("note needs text or an image")
	}
	if len(images) == 0 {
		images = nil
	}

	return u.mutate(ctx, id, "append-note", func(j entities.Job) (entities.Job, error) {
		return j.WithNote(entities.JobNote{
			ID:        u.newNoteID(),
			Text:      text,
			Timestamp: u.now().Format(time.RFC3339),
			Author:    entities.NoteAuthorFor(author.Role),
			Images:    images,
		}), nil
	})
}

// SetWarrantyEndDate adjusts the warranty window. An end before the job's
// start date is stored as given.
func (u *JobUseCase) SetWarrantyEndDate(ctx context.Context, id string, endDate string) (entities.Job, error) {
	endDate = strings.TrimSpace(endDate)
	if _, err := entities.ParseISODate(endDate); err != nil {
		return entities.Job{}, validationError("warranty end date %q", endDate)
	}
	return u.mutate(ctx, id, "set-warranty", func(j entities.Job) (entities.Job, error) {
		j.WarrantyEndDate = endDate
		return j, nil
	})
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, validationError("job id is required")
	}
	jobs, err := u.snapshot(ctx)
	if err != nil {
		return entities.Job{}, err
	}
	idx := indexOfJob(jobs, id)
	if idx < 0 {
		return entities.Job{}, notFoundError("job", id)
	}
	return jobs[idx], nil
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.snapshot(ctx)
}

// FilterByStatus returns jobs in the given status, or every job for "ALL".
func (u *JobUseCase) FilterByStatus(ctx context.Context, status string) ([]entities.Job, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" || status == entities.JobStatusAll {
		return u.snapshot(ctx)
	}
	want := entities.JobStatus(status)
	if !want.IsValid() {
		return nil, validationError("unknown job status %q", status)
	}
	return u.filter(ctx, func(j entities.Job) bool { return j.Status == want })
}

// FilterExpiringWithin returns jobs whose warranty ends in (now, now+days].
// Jobs with an unreadable warranty date are skipped.
func (u *JobUseCase) FilterExpiringWithin(ctx context.Context, days int, now time.Time) ([]entities.Job, error) {
	if days < 0 {
		return nil, validationError("days must not be negative")
	}
	return u.filter(ctx, func(j entities.Job) bool {
		end, err := entities.ParseISODate(j.WarrantyEndDate)
		if err != nil {
			return false
		}
		return entities.ExpiresWithin(end, now, days)
	})
}

// ListByStartDate returns jobs starting on the given calendar day.
func (u *JobUseCase) ListByStartDate(ctx context.Context, date string) ([]entities.Job, error) {
	day, err := entities.ParseISODate(date)
	if err != nil {
		return nil, validationError("start date %q", date)
	}
	want := day.Format(time.DateOnly)
	return u.filter(ctx, func(j entities.Job) bool {
		start, err := entities.ParseISODate(j.StartDate)
		return err == nil && start.Format(time.DateOnly) == want
	})
}

func (u *JobUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, validationError("customer id is required")
	}
	return u.filter(ctx, func(j entities.Job) bool { return j.CustomerID == customerID })
}

// GenerateInviteReference returns the link a customer opens to sign in as
// the owner of the job. The code is the bare job id and carries no signature.
func (u *JobUseCase) GenerateInviteReference(ctx context.Context, id string) (string, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("code", job.ID)
	ref := u.publicBaseURL + "/v1/session?" + q.Encode()
	log.Printf("[job][usecase] invite reference generated job_id=%s", job.ID)
	return ref, nil
}

func (u *JobUseCase) snapshot(ctx context.Context) ([]entities.Job, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.load(ctx)
}

func (u *JobUseCase) filter(ctx context.Context, keep func(entities.Job) bool) ([]entities.Job, error) {
	jobs, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

// mutate replaces one job with change(job) and persists the collection.
func (u *JobUseCase) mutate(ctx context.Context, id, op string, change func(entities.Job) (entities.Job, error)) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, validationError("job id is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	jobs, err := u.load(ctx)
	if err != nil {
		return entities.Job{}, err
	}
	idx := indexOfJob(jobs, id)
	if idx < 0 {
		log.Printf("[job][usecase] %s target missing job_id=%s", op, id)
		return entities.Job{}, notFoundError("job", id)
	}

	updated, err := change(jobs[idx])
	if err != nil {
		log.Printf("[job][usecase] %s rejected job_id=%s err=%v", op, id, err)
		return entities.Job{}, err
	}
	updated.ID = jobs[idx].ID

	next := make([]entities.Job, len(jobs))
	copy(next, jobs)
	next[idx] = updated
	if err := u.repo.SaveAll(ctx, next); err != nil {
		log.Printf("[job][usecase] %s persist failed job_id=%s err=%v", op, id, err)
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] %s success job_id=%s status=%s", op, id, updated.Status)
	return updated, nil
}

func (u *JobUseCase) recordStatusChange(from, to entities.JobStatus) {
	if u.metrics != nil {
		u.metrics.IncJobStatusChange(string(from), string(to))
	}
}

func validateJob(j entities.Job) error {
	if j.Title == "" {
		return validationError("title is required")
	}
	if j.CustomerName == "" {
		return validationError("customer name is required")
	}
	if j.Amount < 0 {
		return validationError("amount must not be negative")
	}
	if !j.Status.IsValid() {
		return validationError("unknown job status %q", j.Status)
	}
	if !j.PaymentStatus.IsValid() {
		return validationError("unknown payment status %q", j.PaymentStatus)
	}
	return nil
}

func indexOfJob(jobs []entities.Job, id string) int {
	for i, j := range jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}

func hasCustomer(jobs []entities.Job, customerID string) bool {
	for _, j := range jobs {
		if j.CustomerID == customerID {
			return true
		}
	}
	return false
}
