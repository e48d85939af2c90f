package models

import "github.com/shopspring/decimal"

// Account is a bank account enabled on a merchant account.
type Account struct {
	AccountID     string `json:"accountId"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BSB           string `json:"bsb"`
}

// BankAccounts wraps the bank account listing payload.
type BankAccounts struct {
	Accounts []Account `json:"accounts"`
}

// ProductInfo describes a product enabled on a merchant account.
// MerchantFacility is only present for facility-style products.
type ProductInfo struct {
	ProductID        string           `json:"productId,omitempty"`
	MinAmount        *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount        *decimal.Decimal `json:"maxAmount,omitempty"`
	MerchantFacility *bool            `json:"merchantFacility,omitempty"`
}

// Products wraps the product listing payload.
type Products struct {
	Products []ProductInfo `json:"products"`
}
