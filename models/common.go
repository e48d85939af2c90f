// Package models defines the request and response shapes of the FlipPay v2
// API. Field names follow the wire format exactly; optional fields are
// omitted from the payload when unset, never sent as null.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AccountDisbursement pays out to a bank account already registered on the
// merchant account.
type AccountDisbursement struct {
	AccountID string `json:"accountId"`
}

// BpayDisbursement pays out to a BPAY biller.
type BpayDisbursement struct {
	BillerCode      string `json:"billerCode"`
	ReferenceNumber string `json:"referenceNumber"`
}

// BankDisbursement pays out to a bank account given in full.
type BankDisbursement struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	AccountBSB    string `json:"accountBsb"`
}

// Disbursement selects how funds are paid out to the receiving party.
// Exactly one variant must be set. The wire format carries no discriminator
// field, so decoding inspects which fields are present, in this order:
// billerCode selects BPAY, accountName or accountNumber selects a bank
// account, accountId selects a registered account.
type Disbursement struct {
	Account *AccountDisbursement
	Bpay    *BpayDisbursement
	Bank    *BankDisbursement
}

// NewAccountDisbursement builds a disbursement to a registered account.
func NewAccountDisbursement(accountID string) Disbursement {
	return Disbursement{Account: &AccountDisbursement{AccountID: accountID}}
}

// NewBpayDisbursement builds a disbursement to a BPAY biller.
func NewBpayDisbursement(billerCode, referenceNumber string) Disbursement {
	return Disbursement{Bpay: &BpayDisbursement{BillerCode: billerCode, ReferenceNumber: referenceNumber}}
}

// NewBankDisbursement builds a disbursement to an explicit bank account.
func NewBankDisbursement(accountName, accountNumber, accountBSB string) Disbursement {
	return Disbursement{Bank: &BankDisbursement{AccountName: accountName, AccountNumber: accountNumber, AccountBSB: accountBSB}}
}

// MarshalJSON emits the populated variant as a flat object.
func (d Disbursement) MarshalJSON() ([]byte, error) {
	set := 0
	for _, v := range []bool{d.Account != nil, d.Bpay != nil, d.Bank != nil} {
		if v {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("models: disbursement must have exactly one variant set")
	}
	switch {
	case d.Account != nil:
		return json.Marshal(d.Account)
	case d.Bpay != nil:
		return json.Marshal(d.Bpay)
	default:
		return json.Marshal(d.Bank)
	}
}

// UnmarshalJSON selects the variant by which fields the document carries.
func (d *Disbursement) UnmarshalJSON(data []byte) error {
	var probe struct {
		AccountID       *string `json:"accountId"`
		BillerCode      *string `json:"billerCode"`
		ReferenceNumber *string `json:"referenceNumber"`
		AccountName     *string `json:"accountName"`
		AccountNumber   *string `json:"accountNumber"`
		AccountBSB      *string `json:"accountBsb"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	d.Account, d.Bpay, d.Bank = nil, nil, nil
	switch {
	case probe.BillerCode != nil:
		d.Bpay = &BpayDisbursement{
			BillerCode:      strVal(probe.BillerCode),
			ReferenceNumber: strVal(probe.ReferenceNumber),
		}
	case probe.AccountName != nil || probe.AccountNumber != nil:
		d.Bank = &BankDisbursement{
			AccountName:   strVal(probe.AccountName),
			AccountNumber: strVal(probe.AccountNumber),
			AccountBSB:    strVal(probe.AccountBSB),
		}
	case probe.AccountID != nil:
		d.Account = &AccountDisbursement{AccountID: strVal(probe.AccountID)}
	default:
		return fmt.Errorf("models: disbursement document matches no known variant")
	}
	return nil
}

// AccountDebit draws funds from a bank account already registered on the
// merchant account.
type AccountDebit struct {
	AccountID string `json:"accountId"`
}

// BankDebit draws funds from a bank account given in full.
type BankDebit struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	AccountBSB    string `json:"accountBsb"`
}

// Debit selects how funds are drawn from the paying party. Exactly one
// variant must be set; decoding probes accountName before accountId, the
// same structural scheme as Disbursement.
type Debit struct {
	Account *AccountDebit
	Bank    *BankDebit
}

// NewAccountDebit builds a debit from a registered account.
func NewAccountDebit(accountID string) Debit {
	return Debit{Account: &AccountDebit{AccountID: accountID}}
}

// NewBankDebit builds a debit from an explicit bank account.
func NewBankDebit(accountName, accountNumber, accountBSB string) Debit {
	return Debit{Bank: &BankDebit{AccountName: accountName, AccountNumber: accountNumber, AccountBSB: accountBSB}}
}

func (d Debit) MarshalJSON() ([]byte, error) {
	switch {
	case d.Account != nil && d.Bank == nil:
		return json.Marshal(d.Account)
	case d.Bank != nil && d.Account == nil:
		return json.Marshal(d.Bank)
	default:
		return nil, errors.New("models: debit must have exactly one variant set")
	}
}

func (d *Debit) UnmarshalJSON(data []byte) error {
	var probe struct {
		AccountID     *string `json:"accountId"`
		AccountName   *string `json:"accountName"`
		AccountNumber *string `json:"accountNumber"`
		AccountBSB    *string `json:"accountBsb"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	d.Account, d.Bank = nil, nil
	switch {
	case probe.AccountName != nil || probe.AccountNumber != nil:
		d.Bank = &BankDebit{
			AccountName:   strVal(probe.AccountName),
			AccountNumber: strVal(probe.AccountNumber),
			AccountBSB:    strVal(probe.AccountBSB),
		}
	case probe.AccountID != nil:
		d.Account = &AccountDebit{AccountID: strVal(probe.AccountID)}
	default:
		return fmt.Errorf("models: debit document matches no known variant")
	}
	return nil
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Notifications configures where the API delivers status notifications for
// a request: a webhook URL, an optional shared secret echoed back on each
// delivery, and a set of email addresses.
type Notifications struct {
	Webhook string   `json:"webhook"`
	Token   string   `json:"token,omitempty"`
	Emails  []string `json:"emails"`
}

// PaymentPage carries the merchant branding shown on the customer-facing
// payment page.
type PaymentPage struct {
	Name    string   `json:"name"`
	ABN     string   `json:"abn"`
	Address string   `json:"address"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Website string   `json:"website"`
	Message string   `json:"message"`
	Logos   []string `json:"logos,omitempty"` // max 2 logo URLs
}

// Sender identifies the party initiating a request. EmailMask and SendComms
// only apply to the pay-later / pay-now families.
type Sender struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	EmailMask string `json:"emailMask,omitempty"`
	SendComms *bool  `json:"sendComms,omitempty"`
}

// Receiver identifies the party a request is addressed to. Mobile only
// applies to the pay-later / pay-now families.
type Receiver struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
}

// Product selects a FlipPay product and supplies its fields. Field meaning
// is product-specific; refer to the integration guide for the format each
// product expects.
type Product struct {
	ProductID     string         `json:"productId"`
	ProductFields []ProductField `json:"productFields"`
}

// ProductField is one key/value entry on a product.
type ProductField struct {
	FieldID string `json:"fieldId"`
	Value   string `json:"value"`
}
