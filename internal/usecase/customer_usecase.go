package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"bengal_portal/internal/domain/entities"
)

// HistoryKind tells which collection a history entry came from.
type HistoryKind string

const (
	HistoryKindJob   HistoryKind = "job"
	HistoryKindQuote HistoryKind = "quote"
)

// HistoryEntry is one line of a customer's merged job and quote history.
type HistoryEntry struct {
	Kind   HistoryKind
	ID     string
	Title  string
	Date   string
	Status string
	Amount float64
}

// CustomerOverview is the dashboard view of one customer.
type CustomerOverview struct {
	Jobs            []entities.Job
	Quotes          []entities.QuoteRequest
	History         []HistoryEntry
	ActiveJobs      int
	PendingPayments float64
	Warranty        *entities.WarrantyStatus
}

// ICustomerUseCase exposes the read-side customer views. Nothing here is
// stored; every call recomputes from the job and quote collections.
type ICustomerUseCase interface {
	Directory(ctx context.Context) ([]entities.CustomerProfile, error)
	Overview(ctx context.Context, customer entities.User, now time.Time) (CustomerOverview, error)
}

type CustomerUseCase struct {
	jobs   IJobUseCase
	quotes IQuoteUseCase
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(jobs IJobUseCase, quotes IQuoteUseCase) *CustomerUseCase {
	return &CustomerUseCase{jobs: jobs, quotes: quotes}
}

func (u *CustomerUseCase) Directory(ctx context.Context) ([]entities.CustomerProfile, error) {
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	return entities.ProjectCustomers(jobs), nil
}

// Overview summarizes a customer's jobs and quotes. Pending payments add
// up unpaid or partially paid job amounts and quoted prices awaiting
// payment. The warranty shown is the one of the customer's first job.
func (u *CustomerUseCase) Overview(ctx context.Context, customer entities.User, now time.Time) (CustomerOverview, error) {
	id := strings.TrimSpace(customer.ID)
	if id == "" {
		return CustomerOverview{}, ErrUnauthenticated
	}

	jobs, err := u.jobs.ListByCustomer(ctx, id)
	if err != nil {
		return CustomerOverview{}, err
	}
	quotes, err := u.quotes.ListByCustomer(ctx, id)
	if err != nil {
		return CustomerOverview{}, err
	}

	out := CustomerOverview{
		Jobs:    jobs,
		Quotes:  quotes,
		History: make([]HistoryEntry, 0, len(jobs)+len(quotes)),
	}
	for _, j := range jobs {
		if j.Status != entities.JobStatusCompleted {
			out.ActiveJobs++
		}
		if j.PaymentStatus != entities.PaymentStatusPaid {
			out.PendingPayments += j.Amount
		}
		out.History = append(out.History, HistoryEntry{
			Kind:   HistoryKindJob,
			ID:     j.ID,
			Title:  j.Title,
			Date:   j.StartDate,
			Status: string(j.Status),
			Amount: j.Amount,
		})
	}
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusQuoted {
			out.PendingPayments += q.PriceValue()
		}
		out.History = append(out.History, HistoryEntry{
			Kind:   HistoryKindQuote,
			ID:     q.ID,
			Title:  q.ProductName,
			Date:   q.Date,
			Status: string(q.Status),
			Amount: q.PriceValue(),
		})
	}
	sortHistoryNewestFirst(out.History)

	if len(jobs) > 0 {
		if ws, err := entities.ClassifyWarrantyDate(jobs[0].WarrantyEndDate, now); err == nil {
			out.Warranty = &ws
		} else {
			log.Printf("[customer][usecase] warranty unreadable job_id=%s value=%q", jobs[0].ID, jobs[0].WarrantyEndDate)
		}
	}
	return out, nil
}

// sortHistoryNewestFirst orders entries by date, newest first. Entries with
// an unreadable date sink to the end in their original order.
func sortHistoryNewestFirst(entries []HistoryEntry) {
	dates := make(map[int]time.Time, len(entries))
	idx := make([]int, len(entries))
	for i, e := range entries {
		idx[i] = i
		if t, err := entities.ParseISODate(e.Date); err == nil {
			dates[i] = t
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ta, okA := dates[idx[a]]
		tb, okB := dates[idx[b]]
		if okA != okB {
			return okA
		}
		return ta.After(tb)
	})
	sorted := make([]HistoryEntry, len(entries))
	for i, j := range idx {
		sorted[i] = entries[j]
	}
	copy(entries, sorted)
}
