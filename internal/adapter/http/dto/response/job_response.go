package response

import (
	"time"

	"bengal_portal/internal/domain/entities"
)

type WarrantyResponse struct {
	EndDate       string `json:"endDate"`
	RemainingDays int    `json:"remainingDays"`
	Label         string `json:"label"`
}

type NoteResponse struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Timestamp string   `json:"timestamp"`
	Author    string   `json:"author"`
	Images    []string `json:"images"`
}

type JobResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	CustomerID      string            `json:"customerId"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerAddress string            `json:"customerAddress"`
	Status          string            `json:"status"`
	StartDate       string            `json:"startDate"`
	WarrantyEndDate string            `json:"warrantyEndDate"`
	PaymentStatus   string            `json:"paymentStatus"`
	Amount          float64           `json:"amount"`
	Notes           []NoteResponse    `json:"notes"`
	Warranty        *WarrantyResponse `json:"warranty,omitempty"`
}

// FromWarranty classifies the end date against now. It returns nil when the
// date cannot be read.
func FromWarranty(endDate string, now time.Time) *WarrantyResponse {
	status, err := entities.ClassifyWarrantyDate(endDate, now)
	if err != nil {
		return nil
	}
	return &WarrantyResponse{EndDate: endDate, RemainingDays: status.RemainingDays, Label: string(status.Label)}
}

func FromJob(j entities.Job, now time.Time) JobResponse {
	notes := make([]NoteResponse, 0, len(j.Notes))
	for _, n := range j.Notes {
		images := n.Images
		if images == nil {
			images = []string{}
		}
		notes = append(notes, NoteResponse{ID: n.ID, Text: n.Text, Timestamp: n.Timestamp, Author: n.Author, Images: images})
	}
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		CustomerID:      j.CustomerID,
		CustomerName:    j.CustomerName,
		CustomerEmail:   j.CustomerEmail,
		CustomerPhone:   j.CustomerPhone,
		CustomerAddress: j.CustomerAddress,
		Status:          string(j.Status),
		StartDate:       j.StartDate,
		WarrantyEndDate: j.WarrantyEndDate,
		PaymentStatus:   string(j.PaymentStatus),
		Amount:          j.Amount,
		Notes:           notes,
		Warranty:        FromWarranty(j.WarrantyEndDate, now),
	}
}

func FromJobs(jobs []entities.Job, now time.Time) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j, now))
	}
	return out
}

type InviteResponse struct {
	JobID string `json:"jobId"`
	URL   string `json:"url"`
}
