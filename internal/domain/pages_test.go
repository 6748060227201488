package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected Amount
	}{
		{
			name:     "json number",
			payload:  `1234.56`,
			expected: Amount{State: AmountPresent, Value: 1234.56},
		},
		{
			name:     "numeric string",
			payload:  `"1075.00"`,
			expected: Amount{State: AmountPresent, Value: 1075.00},
		},
		{
			name:     "signed numeric string",
			payload:  `"+300"`,
			expected: Amount{State: AmountPresent, Value: 300},
		},
		{
			name:     "negative numeric string",
			payload:  `"-200"`,
			expected: Amount{State: AmountPresent, Value: -200},
		},
		{
			name:     "unknown sentinel",
			payload:  `"unknown"`,
			expected: Amount{State: AmountAbsent},
		},
		{
			name:     "null",
			payload:  `null`,
			expected: Amount{State: AmountAbsent},
		},
		{
			name:     "empty string",
			payload:  `""`,
			expected: Amount{State: AmountAbsent},
		},
		{
			name:     "garbage string",
			payload:  `"1O75,00"`,
			expected: Amount{State: AmountInvalid, Raw: "1O75,00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Amount
			assert.NoError(t, json.Unmarshal([]byte(tt.payload), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTransactionListUnmarshalJSON(t *testing.T) {
	t.Run("array payload is valid", func(t *testing.T) {
		var list TransactionList
		payload := `[{"date": "2025-03-01", "amount": "+300"}, {"date": "unknown", "amount": "unknown"}]`
		assert.NoError(t, json.Unmarshal([]byte(payload), &list))

		assert.True(t, list.Valid)
		if assert.Len(t, list.Items, 2) {
			assert.True(t, list.Items[0].Amount.Present())
			assert.InDelta(t, 300.0, list.Items[0].Amount.Value, 1e-9)
			assert.Equal(t, AmountAbsent, list.Items[1].Amount.State)
		}
	})

	t.Run("unknown sentinel is invalid without error", func(t *testing.T) {
		var list TransactionList
		assert.NoError(t, json.Unmarshal([]byte(`"unknown"`), &list))
		assert.False(t, list.Valid)
		assert.Empty(t, list.Items)
	})
}

func TestVisionDocumentDecoding(t *testing.T) {
	payload := `{
		"pages": [
			{
				"page_number": 1,
				"classification": "bank_statement",
				"business_name": "Acme Ltd",
				"bank_name": "VeriBank",
				"page_text": "Opening balance 1000.00",
				"opening_balance": "1000.00",
				"closing_balance": "unknown",
				"transaction_count": 2,
				"transactions": [
					{"date": "2025-03-01", "amount": "+100.00"},
					{"date": "2025-03-02", "amount": "-50.00"}
				],
				"Obvious Tampering": 0
			},
			{
				"page_number": 2,
				"page_text": "unknown",
				"opening_balance": "unknown",
				"closing_balance": "unknown",
				"transactions": "unknown"
			}
		]
	}`

	var doc VisionDocument
	assert.NoError(t, json.Unmarshal([]byte(payload), &doc))

	if !assert.Len(t, doc.Pages, 2) {
		return
	}

	first := doc.Pages[0]
	assert.Equal(t, "bank_statement", first.Classification)
	assert.True(t, first.OpeningBalance.Present())
	assert.InDelta(t, 1000.00, first.OpeningBalance.Value, 1e-9)
	assert.Equal(t, AmountAbsent, first.ClosingBalance.State)
	assert.True(t, first.Transactions.Valid)
	assert.Len(t, first.Transactions.Items, 2)
	assert.True(t, first.ObviousTampering.Present())

	second := doc.Pages[1]
	assert.False(t, second.Transactions.Valid)
	assert.Equal(t, AmountAbsent, second.OpeningBalance.State)
}

func TestAmountMarshalJSON(t *testing.T) {
	present, err := json.Marshal(NewAmount(42.5))
	assert.NoError(t, err)
	assert.Equal(t, `42.5`, string(present))

	absent, err := json.Marshal(Amount{State: AmountAbsent})
	assert.NoError(t, err)
	assert.Equal(t, `null`, string(absent))

	invalid, err := json.Marshal(Amount{State: AmountInvalid, Raw: "n/a"})
	assert.NoError(t, err)
	assert.Equal(t, `null`, string(invalid))
}
