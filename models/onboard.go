package models

// OnboardRequest starts onboarding a merchant with FlipPay.
type OnboardRequest struct {
	SendComms     bool           `json:"sendComms"`
	Sender        *Sender        `json:"sender,omitempty"`
	Receiver      Receiver       `json:"receiver"`
	Notifications *Notifications `json:"notifications,omitempty"`
}

// OnboardCreated is returned when an onboarding request is created.
type OnboardCreated struct {
	OnboardingID  string `json:"onboardingId,omitempty"`
	OnboardingURL string `json:"onboardingUrl,omitempty"`
}

// OnboardStatus is the current state of an onboarding request. MerchantID
// is only present once the merchant has completed onboarding.
type OnboardStatus struct {
	OnboardingURL string `json:"onboardingUrl,omitempty"`
	Status        string `json:"status,omitempty"`
	MerchantID    string `json:"merchantId,omitempty"`
}
