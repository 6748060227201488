package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrMalformedInput is returned when a page collection's root structure cannot
// be decoded at all. Per-page irregularities are never fatal; only a broken
// root aborts a verification pass.
var ErrMalformedInput = errors.New("malformed page collection input")

// AmountState discriminates the three states a numeric field extracted from a
// document can be in. The vision oracle mixes floats, numeric strings and the
// literal "unknown" into the same JSON fields, so a plain float64 cannot
// represent what was actually extracted.
type AmountState int

const (
	// AmountAbsent means the field was missing or carried the "unknown" sentinel.
	AmountAbsent AmountState = iota
	// AmountInvalid means a value was present but could not be parsed as a number.
	AmountInvalid
	// AmountPresent means a numeric value was extracted.
	AmountPresent
)

// Amount is a tri-state numeric field: absent, present-but-unparseable, or a
// parsed value. Raw preserves the original token for anomaly reporting.
type Amount struct {
	State AmountState
	Value float64
	Raw   string
}

// NewAmount returns a present Amount holding v.
func NewAmount(v float64) Amount {
	return Amount{State: AmountPresent, Value: v}
}

// Present reports whether the amount carries a parsed numeric value.
func (a Amount) Present() bool {
	return a.State == AmountPresent
}

// UnmarshalJSON accepts JSON numbers, numeric strings, the "unknown" sentinel
// (absent), null (absent) and anything else (invalid, raw preserved).
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = Amount{State: AmountAbsent}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount{State: AmountPresent, Value: f}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		*a = Amount{State: AmountInvalid, Raw: s}
		return nil
	}
	str = strings.TrimSpace(str)
	if str == "" || strings.EqualFold(str, "unknown") {
		*a = Amount{State: AmountAbsent}
		return nil
	}
	if v, err := strconv.ParseFloat(strings.TrimPrefix(str, "+"), 64); err == nil {
		*a = Amount{State: AmountPresent, Value: v}
		return nil
	}
	*a = Amount{State: AmountInvalid, Raw: str}
	return nil
}

// MarshalJSON renders present values as numbers and everything else as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Present() {
		return json.Marshal(a.Value)
	}
	return []byte("null"), nil
}

// Transaction is one ledger movement declared by the vision oracle. The
// amount's sign carries direction; an unparseable amount contributes zero to
// sums and is recorded as an anomaly, never an error.
type Transaction struct {
	Date   string `json:"date"`
	Amount Amount `json:"amount"`
}

// TransactionList is a transactions field that may be a JSON array or the
// "unknown" sentinel. Valid is false when the field was absent or not a list,
// which makes the whole page skippable for balance reconciliation.
type TransactionList struct {
	Valid bool
	Items []Transaction
}

// UnmarshalJSON decodes an array into Items; any non-array payload (including
// "unknown") yields an invalid list without failing the decode.
func (l *TransactionList) UnmarshalJSON(data []byte) error {
	var items []Transaction
	if err := json.Unmarshal(data, &items); err != nil {
		*l = TransactionList{}
		return nil
	}
	*l = TransactionList{Valid: true, Items: items}
	return nil
}

// MarshalJSON renders a valid list as an array and an invalid one as null.
func (l TransactionList) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.Items)
}

// VisionPage is one page of the vision oracle's structured extraction.
// Classification and business fields only appear on the first page.
type VisionPage struct {
	PageNumber       int             `json:"page_number"`
	Classification   string          `json:"classification,omitempty"`
	BusinessName     string          `json:"business_name,omitempty"`
	BusinessAddress  string          `json:"business_address,omitempty"`
	BankName         string          `json:"bank_name,omitempty"`
	PageText         string          `json:"page_text"`
	OpeningBalance   Amount          `json:"opening_balance"`
	ClosingBalance   Amount          `json:"closing_balance"`
	TransactionCount Amount          `json:"transaction_count"`
	Transactions     TransactionList `json:"transactions"`
	ObviousTampering Amount          `json:"Obvious Tampering"`
}

// SourcePage is one page of the locally parsed text extraction.
type SourcePage struct {
	PageNumber int    `json:"page_number"`
	PageText   string `json:"page_text"`
}

// VisionDocument is the vision oracle's per-document output.
type VisionDocument struct {
	Pages []VisionPage `json:"pages"`
}

// SourceDocument is the local extractor's per-document output.
type SourceDocument struct {
	Pages []SourcePage `json:"pages"`
}

// PagePair is one entry of the aligned page sequence. Either side may be nil
// when that source has no such page; the pair still participates in scoring.
type PagePair struct {
	PageNumber int
	AI         *VisionPage
	Source     *SourcePage
}

// AIText returns the vision-side page text, empty when the side is missing.
func (p PagePair) AIText() string {
	if p.AI == nil {
		return ""
	}
	return p.AI.PageText
}

// SourceText returns the local-side page text, empty when the side is missing.
func (p PagePair) SourceText() string {
	if p.Source == nil {
		return ""
	}
	return p.Source.PageText
}
