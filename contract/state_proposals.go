package main

import (
	"strings"

	"swipepad/sdk"
)

// Proposal records are codec blobs under proposalKey(id); each fund keeps a
// ";"-joined index of its proposal ids for listing.

// saveProposal persists a proposal record and indexes it under its fund.
func saveProposal(p *WithdrawalProposal) {
	sdk.StateSetObject(proposalKey(p.ID), string(EncodeProposal(p)))
	appendProposalIndex(p.FundID, p.ID)
}

// loadProposal fetches a proposal by id, nil when unknown.
func loadProposal(id string) *WithdrawalProposal {
	raw := sdk.StateGetObject(proposalKey(id))
	if raw == nil || *raw == "" {
		return nil
	}
	p, err := DecodeProposal([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt proposal record: " + id)
	}
	return p
}

// loadProposalIndex returns the proposal ids raised against a fund.
func loadProposalIndex(fundID string) []string {
	raw := sdk.StateGetObject(fundProposalsKey(fundID))
	if raw == nil || *raw == "" {
		return nil
	}
	return strings.Split(*raw, ";")
}

// appendProposalIndex adds a proposal id once; id collisions overwrite the
// record but never duplicate the index entry.
func appendProposalIndex(fundID string, proposalID string) {
	ids := loadProposalIndex(fundID)
	for _, existing := range ids {
		if existing == proposalID {
			return
		}
	}
	ids = append(ids, proposalID)
	sdk.StateSetObject(fundProposalsKey(fundID), strings.Join(ids, ";"))
}
