package entities

// QuoteRequest is a customer-initiated price inquiry for a catalog item.
//
// Storage model:
//   - the whole collection is one JSON document under the "quotes" key
//   - newest requests first
//
// The customer fields are a snapshot taken at submission time and do not
// follow later profile edits. Price is set by staff before QUOTED.
type QuoteRequest struct {
	ID             string      `json:"id"`
	ProductName    string      `json:"productName"`
	ProductImage   string      `json:"productImage"`
	CustomerID     string      `json:"customerId"`
	CustomerName   string      `json:"customerName"`
	CustomerEmail  string      `json:"customerEmail"`
	Date           string      `json:"date"`
	Status         QuoteStatus `json:"status"`
	Price          *float64    `json:"price,omitempty"`
	AdminNotes     string      `json:"adminNotes,omitempty"`
	CustomerNotes  string      `json:"customerNotes,omitempty"`
	ApplianceImage string      `json:"applianceImage,omitempty"`
}

// PriceValue returns the quoted price, or zero when none is set.
func (q QuoteRequest) PriceValue() float64 {
	if q.Price == nil {
		return 0
	}
	return *q.Price
}

// Product is the catalog selection a quote is requested for.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price,omitempty"`
}
