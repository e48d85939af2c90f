package flippay

import (
	"context"

	"flippay/models"
)

// API is the full set of FlipPay v2 operations. *Client implements it;
// callers can depend on the interface to swap in a stub.
type API interface {
	CreateOnboarding(ctx context.Context, req models.OnboardRequest) (*models.OnboardCreated, error)
	GetOnboarding(ctx context.Context, onboardingID string) (*models.OnboardStatus, error)
	CancelOnboarding(ctx context.Context, onboardingID string) error

	RequestAccountLink(ctx context.Context, req models.LinkRequest) error
	GetAccountLink(ctx context.Context, merchantID string) (*models.LinkStatus, error)
	RemoveAccountLink(ctx context.Context, merchantID string) error

	CreatePayLater(ctx context.Context, req models.PayLaterRequest) (*models.PayRequestCreated, error)
	UpdatePayLater(ctx context.Context, prID string, fields []models.ProductField) error
	GetPayLater(ctx context.Context, prID string) (*models.PayLaterDetail, error)
	CancelPayLater(ctx context.Context, prID string) error

	CreatePayNow(ctx context.Context, req models.PayNowRequest) (*models.PayRequestCreated, error)
	GetPayNow(ctx context.Context, prID string) (*models.PayNowDetail, error)
	CancelPayNow(ctx context.Context, prID string) error

	CreateDirect(ctx context.Context, req models.DirectRequest) (*models.DirectCreated, error)
	UpdateDirect(ctx context.Context, prID string, fields []models.ProductField) error
	GetDirect(ctx context.Context, prID string) (*models.DirectDetail, error)
	CancelDirect(ctx context.Context, prID string) error
	ListDirect(ctx context.Context, query string) ([]models.DirectSummary, error)

	ListBankAccounts(ctx context.Context, merchantID string) ([]models.Account, error)
	ListProducts(ctx context.Context, merchantID string) ([]models.ProductInfo, error)
}

var _ API = (*Client)(nil)
