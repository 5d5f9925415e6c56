package invoices

type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

type Sort struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

type SearchInput struct {
	Sort []Sort `json:"sort"`
}

type CreateInput struct {
	CustomerEmail string `json:"customer_email"`
	Total         string `json:"total"`
	PaymentMethod string `json:"payment_method"`
	Coupon        string `json:"coupon"`
	// Products is passed through untouched, its shape is owned by the API.
	Products any `json:"products"`
}

type ReplacementInput struct {
	Listings []any `json:"listings"`
}
