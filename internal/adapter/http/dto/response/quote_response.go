package response

import "bengal_portal/internal/domain/entities"

type QuoteResponse struct {
	ID             string   `json:"id"`
	ProductName    string   `json:"productName"`
	ProductImage   string   `json:"productImage"`
	CustomerID     string   `json:"customerId"`
	CustomerName   string   `json:"customerName"`
	CustomerEmail  string   `json:"customerEmail"`
	Date           string   `json:"date"`
	Status         string   `json:"status"`
	Price          *float64 `json:"price"`
	AdminNotes     string   `json:"adminNotes,omitempty"`
	CustomerNotes  string   `json:"customerNotes,omitempty"`
	ApplianceImage string   `json:"applianceImage,omitempty"`
}

type PaymentResponse struct {
	Quote       QuoteResponse `json:"quote"`
	CheckoutURL string        `json:"checkoutUrl"`
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		ProductName:    q.ProductName,
		ProductImage:   q.ProductImage,
		CustomerID:     q.CustomerID,
		CustomerName:   q.CustomerName,
		CustomerEmail:  q.CustomerEmail,
		Date:           q.Date,
		Status:         string(q.Status),
		Price:          q.Price,
		AdminNotes:     q.AdminNotes,
		CustomerNotes:  q.CustomerNotes,
		ApplianceImage: q.ApplianceImage,
	}
}

func FromQuotes(quotes []entities.QuoteRequest) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromPayment(quote entities.QuoteRequest, checkoutURL string) PaymentResponse {
	return PaymentResponse{Quote: FromQuote(quote), CheckoutURL: checkoutURL}
}
