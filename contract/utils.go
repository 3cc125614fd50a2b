package main

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"time"

	"swipepad/sdk"
)

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Proposal Identifiers
// -----------------------------------------------------------------------------

// withdrawalID derives the proposal id from its immutable parameters plus the
// creation timestamp. Identical parameters inside one block timestamp produce
// the same id and the later record overwrites the earlier one; that mirrors
// the source and is why the id must not be treated as guaranteed-unique.
func withdrawalID(fundID string, asset sdk.Asset, amount Amount, destination sdk.Address, createdAt int64) string {
	h := sha256.New()
	h.Write([]byte(fundID))
	h.Write([]byte{0})
	h.Write([]byte(asset.String()))
	h.Write([]byte{0})
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(amount))
	h.Write(buf[:])
	h.Write([]byte(destination.String()))
	h.Write([]byte{0})
	binary.BigEndian.PutUint64(buf[:], uint64(createdAt))
	h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil)[:16])
}

