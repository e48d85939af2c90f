package models

import "github.com/shopspring/decimal"

func init() {
	// The API exchanges monetary amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// PayRequest carries the fields shared by every payment-request family.
// Concrete request types embed it, so its fields sit at the top level of
// the payload.
type PayRequest struct {
	MerchantID    string          `json:"merchantId"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Disbursement  Disbursement    `json:"disbursement"`
	Notifications *Notifications  `json:"notifications,omitempty"`
}

// PayRequestCreated is returned when a payment request is created.
type PayRequestCreated struct {
	PrID   string `json:"prId,omitempty"`
	PrURL  string `json:"prUrl,omitempty"`
	Status string `json:"status,omitempty"`
}

// UpdateProductFields is the PATCH body for updating product fields on an
// existing payment request.
type UpdateProductFields struct {
	ProductFields []ProductField `json:"productFields"`
}
