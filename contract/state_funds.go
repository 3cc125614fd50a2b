package main

import (
	"strings"

	"swipepad/sdk"
)

// Fund records are stored as codec blobs under fundKey(id); the flat id index
// under FundsIndexKey keeps listing cheap. Fund ids reject ";" at parse time
// so the joined index never needs escaping.

// saveFund persists a fund record and keeps the id index current.
func saveFund(f *Fund) {
	sdk.StateSetObject(fundKey(f.ID), string(EncodeFund(f)))
	appendFundIndex(f.ID)
}

// loadFund fetches a fund by id, nil when unknown.
func loadFund(id string) *Fund {
	raw := sdk.StateGetObject(fundKey(id))
	if raw == nil || *raw == "" {
		return nil
	}
	f, err := DecodeFund([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt fund record: " + id)
	}
	return f
}

// fundExists checks for the record without decoding it.
func fundExists(id string) bool {
	raw := sdk.StateGetObject(fundKey(id))
	return raw != nil && *raw != ""
}

// loadFundIndex returns all registered fund ids in registration order.
func loadFundIndex() []string {
	raw := sdk.StateGetObject(FundsIndexKey)
	if raw == nil || *raw == "" {
		return nil
	}
	return strings.Split(*raw, ";")
}

// appendFundIndex adds an id to the index unless it is already present, so
// re-registering an existing fund does not duplicate the entry.
func appendFundIndex(id string) {
	ids := loadFundIndex()
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	ids = append(ids, id)
	sdk.StateSetObject(FundsIndexKey, strings.Join(ids, ";"))
}
