package request

import "bengal_portal/internal/domain/entities"

type ProductRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// QuoteCreateRequest is a customer's request for a price on a catalog item.
type QuoteCreateRequest struct {
	Product        ProductRequest `json:"product" binding:"required"`
	CustomerNotes  string         `json:"customerNotes"`
	ApplianceImage string         `json:"applianceImage"`
}

func (r QuoteCreateRequest) ToProduct() entities.Product {
	return entities.Product{
		ID:       r.Product.ID,
		Name:     r.Product.Name,
		Image:    r.Product.Image,
		Category: r.Product.Category,
		Price:    r.Product.Price,
	}
}

type QuotePriceRequest struct {
	Price      float64 `json:"price" binding:"required"`
	AdminNotes string  `json:"adminNotes"`
}
