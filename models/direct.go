package models

import "github.com/shopspring/decimal"

// DirectRequest creates a B2B funding request between an onboarded entity
// and FlipPay.
type DirectRequest struct {
	PayRequest
	Debit *Debit `json:"debit,omitempty"`
}

// RepaymentEntry is one instalment of a repayment schedule.
type RepaymentEntry struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DirectCreated is returned when a direct funding request is created. The
// repayment schedule is only present for products that define one.
type DirectCreated struct {
	PrID              string           `json:"prId,omitempty"`
	PrURL             string           `json:"prUrl,omitempty"`
	Status            string           `json:"status,omitempty"`
	RepaymentSchedule []RepaymentEntry `json:"repaymentSchedule,omitempty"`
}

// DirectDetail is a direct funding request as returned by the API.
type DirectDetail struct {
	MerchantID    string           `json:"merchantId,omitempty"`
	PrID          string           `json:"prId,omitempty"`
	Status        string           `json:"status,omitempty"`
	Reference     string           `json:"reference,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Product       []Product        `json:"product,omitempty"`
	Disbursement  *Disbursement    `json:"disbursement,omitempty"`
	Debit         *Debit           `json:"debit,omitempty"`
	Notifications *Notifications   `json:"notifications,omitempty"`
}

// DirectSummary is one row of a filtered direct funding request listing.
// Date fields are formatted as the API returns them.
type DirectSummary struct {
	Status            string           `json:"status,omitempty"`
	PrID              string           `json:"prId,omitempty"`
	ProductID         string           `json:"productId,omitempty"`
	MerchantID        string           `json:"merchantId,omitempty"`
	Created           string           `json:"created,omitempty"`
	Activated         string           `json:"activated,omitempty"`
	Due               string           `json:"due,omitempty"`
	Closed            string           `json:"closed,omitempty"`
	AmountRequested   *decimal.Decimal `json:"amountRequested,omitempty"`
	AmountDisbursed   *decimal.Decimal `json:"amountDisbursed,omitempty"`
	Fees              *decimal.Decimal `json:"fees,omitempty"`
	AmountOutstanding *decimal.Decimal `json:"amountOutstanding,omitempty"`
}

// DirectList wraps the direct funding request listing payload.
type DirectList struct {
	Records []DirectSummary `json:"records"`
}
