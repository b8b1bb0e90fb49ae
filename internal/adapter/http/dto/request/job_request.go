package request

import (
	"strings"

	"bengal_portal/internal/domain/entities"
)

// JobCreateRequest is the staff form for a new job. Blank status, payment
// status and customer id are filled with defaults.
type JobCreateRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	CustomerID      string  `json:"customerId"`
	CustomerName    string  `json:"customerName" binding:"required"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	Status          string  `json:"status"`
	StartDate       string  `json:"startDate"`
	WarrantyEndDate string  `json:"warrantyEndDate"`
	PaymentStatus   string  `json:"paymentStatus"`
	Amount          float64 `json:"amount"`
}

func (r JobCreateRequest) ToEntity() entities.Job {
	return entities.Job{
		Title:           r.Title,
		Description:     r.Description,
		CustomerID:      r.CustomerID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Status:          entities.JobStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		StartDate:       strings.TrimSpace(r.StartDate),
		WarrantyEndDate: strings.TrimSpace(r.WarrantyEndDate),
		PaymentStatus:   entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(r.PaymentStatus))),
		Amount:          r.Amount,
	}
}

// JobUpdateRequest edits an existing job; omitted fields are kept.
type JobUpdateRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	CustomerID      *string  `json:"customerId"`
	CustomerName    *string  `json:"customerName"`
	CustomerEmail   *string  `json:"customerEmail"`
	CustomerPhone   *string  `json:"customerPhone"`
	CustomerAddress *string  `json:"customerAddress"`
	Status          *string  `json:"status"`
	StartDate       *string  `json:"startDate"`
	WarrantyEndDate *string  `json:"warrantyEndDate"`
	PaymentStatus   *string  `json:"paymentStatus"`
	Amount          *float64 `json:"amount"`
}

func (r JobUpdateRequest) ToPatch() entities.JobPatch {
	p := entities.JobPatch{
		Title:           r.Title,
		Description:     r.Description,
		CustomerID:      r.CustomerID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		StartDate:       r.StartDate,
		WarrantyEndDate: r.WarrantyEndDate,
		Amount:          r.Amount,
	}
	if r.Status != nil {
		s := entities.JobStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		p.Status = &s
	}
	if r.PaymentStatus != nil {
		s := entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(*r.PaymentStatus)))
		p.PaymentStatus = &s
	}
	return p
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r JobStatusRequest) ResolveStatus() entities.JobStatus {
	return entities.JobStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

type WarrantyRequest struct {
	WarrantyEndDate string `json:"warrantyEndDate" binding:"required"`
}

// NoteRequest adds a note; images are URLs or data URIs.
type NoteRequest struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}
