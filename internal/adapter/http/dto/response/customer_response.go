package response

import (
	"time"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
)

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type HistoryEntryResponse struct {
	Kind   string  `json:"kind"`
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
}

type OverviewResponse struct {
	Jobs            []JobResponse            `json:"jobs"`
	Quotes          []QuoteResponse          `json:"quotes"`
	History         []HistoryEntryResponse   `json:"history"`
	ActiveJobs      int                      `json:"activeJobs"`
	PendingPayments float64                  `json:"pendingPayments"`
	Warranty        *entities.WarrantyStatus `json:"warranty,omitempty"`
}

func FromCustomers(customers []entities.CustomerProfile) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address})
	}
	return out
}

func FromOverview(o usecase.CustomerOverview, now time.Time) OverviewResponse {
	history := make([]HistoryEntryResponse, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, HistoryEntryResponse{
			Kind:   string(h.Kind),
			ID:     h.ID,
			Title:  h.Title,
			Date:   h.Date,
			Status: h.Status,
			Amount: h.Amount,
		})
	}
	return OverviewResponse{
		Jobs:            FromJobs(o.Jobs, now),
		Quotes:          FromQuotes(o.Quotes),
		History:         history,
		ActiveJobs:      o.ActiveJobs,
		PendingPayments: o.PendingPayments,
		Warranty:        o.Warranty,
	}
}
