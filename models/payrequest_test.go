package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayLaterRequestWireShape(t *testing.T) {
	req := PayLaterRequest{
		PayRequest: PayRequest{
			MerchantID:   "m1",
			Reference:    "ref-1",
			Amount:       decimal.RequireFromString("1234.56"),
			Disbursement: NewBpayDisbursement("123", "456"),
		},
		Product: []Product{{ProductID: "p1", ProductFields: []ProductField{{FieldID: "dueDate", Value: "2024-07-01"}}}},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	// Embedded PayRequest fields sit at the top level of the document.
	assert.Equal(t, "m1", doc["merchantId"])
	assert.Equal(t, "ref-1", doc["reference"])
	assert.Equal(t, 1234.56, doc["amount"])
	assert.Equal(t, map[string]any{"billerCode": "123", "referenceNumber": "456"}, doc["disbursement"])

	// Unset optionals are omitted, not null.
	assert.NotContains(t, doc, "notifications")
	assert.NotContains(t, doc, "sender")
	assert.NotContains(t, doc, "paymentPage")
	assert.NotContains(t, doc, "files")
}

func TestOnboardRequestOmitsUnsetOptionals(t *testing.T) {
	data, err := json.Marshal(OnboardRequest{
		SendComms: true,
		Receiver:  Receiver{Name: "Jane", Email: "jane@x.com"},
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, true, doc["sendComms"])
	assert.NotContains(t, doc, "sender")
	assert.NotContains(t, doc, "notifications")
}

func TestDetailToleratesUnknownFields(t *testing.T) {
	body := `{"prId":"pr_1","status":"active","amount":"250.00","futureField":{"a":1}}`

	var detail DirectDetail
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	assert.Equal(t, "pr_1", detail.PrID)
	require.NotNil(t, detail.Amount)
	assert.True(t, detail.Amount.Equal(decimal.RequireFromString("250.00")))
	assert.Nil(t, detail.Debit)
}
