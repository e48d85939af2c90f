package models

import "github.com/shopspring/decimal"

// PayNowRequest creates a payment request enabled with immediate card
// payment only.
type PayNowRequest struct {
	PayRequest
	Sender      *Sender      `json:"sender,omitempty"`
	Receiver    *Receiver    `json:"receiver,omitempty"`
	PaymentPage *PaymentPage `json:"paymentPage,omitempty"`
	Files       []string     `json:"files,omitempty"`
}

// PayNowDetail is a pay-now request as returned by the API.
type PayNowDetail struct {
	MerchantID    string           `json:"merchantId,omitempty"`
	PrID          string           `json:"prId,omitempty"`
	PrURL         string           `json:"prUrl,omitempty"`
	Status        string           `json:"status,omitempty"`
	Reference     string           `json:"reference,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Disbursement  *Disbursement    `json:"disbursement,omitempty"`
	Sender        *Sender          `json:"sender,omitempty"`
	Receiver      *Receiver        `json:"receiver,omitempty"`
	PaymentPage   *PaymentPage     `json:"paymentPage,omitempty"`
	Files         []string         `json:"files,omitempty"`
	Notifications *Notifications   `json:"notifications,omitempty"`
}
