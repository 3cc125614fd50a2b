package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreateFundArgs(t *testing.T) {
	payload := "relief-2025|Disaster Relief| emergency aid |hive:x, hive:y;hive:z|2"
	args := decodeCreateFundArgs(&payload)
	assert.Equal(t, "relief-2025", args.ID)
	assert.Equal(t, "Disaster Relief", args.Name)
	assert.Equal(t, "emergency aid", args.Purpose)
	require.Len(t, args.Signers, 3)
	assert.Equal(t, "hive:y", args.Signers[1].String())
	assert.Equal(t, uint32(2), args.RequiredSignatures)
}

func TestDecodeCreateFundArgsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing fields":     "id|name|purpose",
		"empty id":           " |name|purpose|hive:x|1",
		"id too long":        strings.Repeat("a", MaxFundIDLength+1) + "|n|p|hive:x|1",
		"bad threshold":      "id|n|p|hive:x|two",
		"threshold overflow": "id|n|p|hive:x|4294967297",
		"empty payload":      "",
		"quoted emptiness":   `""`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			p := payload
			assert.Panics(t, func() { decodeCreateFundArgs(&p) })
		})
	}
}

func TestDecodeProposeWithdrawalArgs(t *testing.T) {
	payload := "f1|12.345|hbd|hive:recipient"
	args := decodeProposeWithdrawalArgs(&payload)
	assert.Equal(t, "f1", args.FundID)
	assert.Equal(t, Amount(12345), args.Amount)
	assert.Equal(t, "hbd", args.Asset.String())
	assert.Equal(t, "hive:recipient", args.Destination.String())
}

func TestDecodeProposeWithdrawalArgsRejectsBadAsset(t *testing.T) {
	payload := "f1|10|dogecoin|hive:recipient"
	assert.Panics(t, func() { decodeProposeWithdrawalArgs(&payload) })
}

func TestUnwrapPayloadStripsQuotes(t *testing.T) {
	quoted := `"f1|10|hive|hive:dest"`
	assert.Equal(t, "f1|10|hive|hive:dest", unwrapPayload(&quoted, "missing"))

	plain := "  f1  "
	assert.Equal(t, "f1", unwrapPayload(&plain, "missing"))

	assert.Panics(t, func() { unwrapPayload(nil, "missing") })
}

func TestParseAddressListDedupes(t *testing.T) {
	addrs := parseAddressList("hive:a;hive:b,hive:a,\thive:c\n")
	require.Len(t, addrs, 3)
	assert.Equal(t, "hive:a", addrs[0].String())
	assert.Nil(t, parseAddressList("  "))
}

func TestDecodeSetActiveArgs(t *testing.T) {
	payload := "f1|true"
	id, active := decodeSetActiveArgs(&payload)
	assert.Equal(t, "f1", id)
	assert.True(t, active)

	payload = "f1|nonsense"
	_, active = decodeSetActiveArgs(&payload)
	assert.False(t, active)
}

func TestDecodeRoleArgs(t *testing.T) {
	payload := "Administrator|hive:deputy"
	role, addr := decodeRoleArgs(&payload)
	assert.Equal(t, RoleAdministrator, role)
	assert.Equal(t, "hive:deputy", addr.String())

	bad := "administrator|garbage"
	assert.Panics(t, func() { decodeRoleArgs(&bad) })
}
