package models

import "github.com/shopspring/decimal"

// PayLaterRequest creates a payment request enabled with "pay later"
// payment options. More than one product may be offered; the customer's
// choice fixes the product on activation.
type PayLaterRequest struct {
	PayRequest
	Product     []Product    `json:"product"`
	Sender      *Sender      `json:"sender,omitempty"`
	Receiver    *Receiver    `json:"receiver,omitempty"`
	PaymentPage *PaymentPage `json:"paymentPage,omitempty"`
	Files       []string     `json:"files,omitempty"`
}

// PayLaterDetail is a pay-later request as returned by the API. Before
// activation Product lists every product offered; after activation only the
// approved product is returned.
type PayLaterDetail struct {
	MerchantID    string           `json:"merchantId,omitempty"`
	PrID          string           `json:"prId,omitempty"`
	PrURL         string           `json:"prUrl,omitempty"`
	Status        string           `json:"status,omitempty"`
	Reference     string           `json:"reference,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Product       []Product        `json:"product,omitempty"`
	Disbursement  *Disbursement    `json:"disbursement,omitempty"`
	Sender        *Sender          `json:"sender,omitempty"`
	Receiver      *Receiver        `json:"receiver,omitempty"`
	PaymentPage   *PaymentPage     `json:"paymentPage,omitempty"`
	Files         []string         `json:"files,omitempty"`
	Notifications *Notifications   `json:"notifications,omitempty"`
}
