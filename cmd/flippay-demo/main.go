// Command flippay-demo wires the client against the demo host and creates a
// sample pay-later request. Configuration comes from the environment (or a
// .env file); see config.FromEnv for the variable names.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"flippay"
	"flippay/config"
	"flippay/models"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Demo = true

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client := flippay.New(cfg, logger)
	ctx := context.Background()

	merchantID := os.Getenv("FLIPPAY_MERCHANT_ID")
	if merchantID == "" {
		log.Fatal("FLIPPAY_MERCHANT_ID environment variable not set.")
	}

	products, err := client.ListProducts(ctx, merchantID)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range products {
		fmt.Printf("product %s min=%v max=%v\n", p.ProductID, p.MinAmount, p.MaxAmount)
	}

	created, err := client.CreatePayLater(ctx, models.PayLaterRequest{
		PayRequest: models.PayRequest{
			MerchantID:   merchantID,
			Reference:    "demo-" + uuid.NewString(),
			Amount:       decimal.RequireFromString("1234.56"),
			Disbursement: models.NewAccountDisbursement(os.Getenv("FLIPPAY_ACCOUNT_ID")),
		},
		Product: []models.Product{{
			ProductID: os.Getenv("FLIPPAY_PRODUCT_ID"),
			ProductFields: []models.ProductField{
				{FieldID: "invoiceNumber", Value: "INV-0001"},
			},
		}},
		Receiver: &models.Receiver{Name: "Jane Citizen", Email: "jane@example.com"},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("created %s -> %s (%s)\n", created.PrID, created.PrURL, created.Status)
}
