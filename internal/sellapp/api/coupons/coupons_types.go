package coupons

// Input is the body of both create and update calls. Limit and ExpiresAt are sent as null when unset.
type Input struct {
	Code      string  `json:"code"`
	Type      string  `json:"type"`
	Discount  string  `json:"discount"`
	Limit     *int    `json:"limit"`
	StoreWide bool    `json:"store_wide"`
	ExpiresAt *string `json:"expires_at"`
}
