package models

// Link statuses reported by the API.
const (
	LinkStatusPending   = "pending"
	LinkStatusLinked    = "linked"
	LinkStatusNotLinked = "not-linked"
)

// LinkRequest asks for a link between an integrated partner and a merchant
// account.
type LinkRequest struct {
	MerchantID    string         `json:"merchantId"`
	Notifications *Notifications `json:"notifications,omitempty"`
}

// LinkStatus is the current state of an account link.
type LinkStatus struct {
	MerchantID string `json:"merchantId"`
	Status     string `json:"status"`
}
