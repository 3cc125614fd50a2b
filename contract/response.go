package main

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"
)

// Every entrypoint answers with a small JSON envelope so callers can branch on
// `ok` without sniffing the payload shape:
//
//	{"ok":true,"data":{...}}
//	{"ok":false,"error":"insufficient_balance","message":"..."}

// jsonObject is implemented by the response bodies below so they can be nested
// under the envelope without reflection.
type jsonObject interface {
	writeJson(w *jwriter.Writer)
}

// returnJsonResponse wraps a body into the success envelope and hands the
// bytes back to the host as a string pointer.
func returnJsonResponse(body jsonObject) *string {
	w := &jwriter.Writer{}
	w.RawString(`{"ok":true,"data":`)
	if body == nil {
		w.RawString("null")
	} else {
		body.writeJson(w)
	}
	w.RawByte('}')
	return finishWriter(w)
}

// errorResponse emits the failure envelope with a stable symbol plus a human
// readable message.
func errorResponse(symbol string, message string) *string {
	w := &jwriter.Writer{}
	w.RawString(`{"ok":false,"error":`)
	w.String(symbol)
	w.RawString(`,"message":`)
	w.String(message)
	w.RawByte('}')
	return finishWriter(w)
}

// writeAmountJson emits an Amount as a plain JSON number; the jwriter has no
// float method so the formatted text goes out raw.
func writeAmountJson(w *jwriter.Writer, v Amount) {
	w.RawString(strconv.FormatFloat(AmountToFloat(v), 'f', -1, 64))
}

// finishWriter drains the jwriter buffer into a plain string.
func finishWriter(w *jwriter.Writer) *string {
	data, err := w.BuildBytes()
	if err != nil {
		fallback := `{"ok":false,"error":"internal","message":"response encoding failed"}`
		return &fallback
	}
	out := string(data)
	return &out
}

// -----------------------------------------------------------------------------
// Response Bodies
// -----------------------------------------------------------------------------

// fundResponse carries a fund record plus its per-asset balances.
type fundResponse struct {
	Fund     *Fund
	Balances map[string]Amount
}

func (r *fundResponse) writeJson(w *jwriter.Writer) {
	f := r.Fund
	w.RawString(`{"id":`)
	w.String(f.ID)
	w.RawString(`,"name":`)
	w.String(f.Name)
	w.RawString(`,"purpose":`)
	w.String(f.Purpose)
	w.RawString(`,"signers":[`)
	for i, s := range f.Signers {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(s.String())
	}
	w.RawString(`],"requiredSignatures":`)
	w.Uint32(f.RequiredSignatures)
	w.RawString(`,"totalDonations":`)
	writeAmountJson(w, f.TotalDonations)
	w.RawString(`,"active":`)
	w.Bool(f.Active)
	w.RawString(`,"createdAt":`)
	w.Int64(f.CreatedAt)
	w.RawString(`,"createdBy":`)
	w.String(f.CreatedBy.String())
	if r.Balances != nil {
		w.RawString(`,"balances":{`)
		first := true
		for _, asset := range validAssets {
			bal, ok := r.Balances[asset]
			if !ok {
				continue
			}
			if !first {
				w.RawByte(',')
			}
			first = false
			w.String(asset)
			w.RawByte(':')
			writeAmountJson(w, bal)
		}
		w.RawByte('}')
	}
	w.RawByte('}')
}

// balanceResponse answers a single (fund, asset) balance query.
type balanceResponse struct {
	FundID  string
	Asset   string
	Balance Amount
}

func (r *balanceResponse) writeJson(w *jwriter.Writer) {
	w.RawString(`{"fundId":`)
	w.String(r.FundID)
	w.RawString(`,"asset":`)
	w.String(r.Asset)
	w.RawString(`,"balance":`)
	writeAmountJson(w, r.Balance)
	w.RawByte('}')
}

// idListResponse returns a bare id list for index queries.
type idListResponse struct {
	IDs []string
}

func (r *idListResponse) writeJson(w *jwriter.Writer) {
	w.RawString(`{"ids":[`)
	for i, id := range r.IDs {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(id)
	}
	w.RawString(`],"count":`)
	w.Int(len(r.IDs))
	w.RawByte('}')
}

// proposalResponse carries a full withdrawal proposal record.
type proposalResponse struct {
	Proposal *WithdrawalProposal
}

func (r *proposalResponse) writeJson(w *jwriter.Writer) {
	p := r.Proposal
	w.RawString(`{"id":`)
	w.String(p.ID)
	w.RawString(`,"fundId":`)
	w.String(p.FundID)
	w.RawString(`,"asset":`)
	w.String(p.Asset.String())
	w.RawString(`,"amount":`)
	writeAmountJson(w, p.Amount)
	w.RawString(`,"destination":`)
	w.String(p.Destination.String())
	w.RawString(`,"creator":`)
	w.String(p.Creator.String())
	w.RawString(`,"createdAt":`)
	w.Int64(p.CreatedAt)
	w.RawString(`,"approvedBy":[`)
	for i, a := range p.ApprovedBy {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(a.String())
	}
	w.RawString(`],"approvals":`)
	w.Uint32(p.Approvals)
	w.RawString(`,"executed":`)
	w.Bool(p.Executed)
	if p.Executed {
		w.RawString(`,"executedAt":`)
		w.Int64(p.ExecutedAt)
	}
	w.RawByte('}')
}

// donationResponse acknowledges a credited donation.
type donationResponse struct {
	FundID     string
	Asset      string
	Amount     Amount
	NewBalance Amount
}

func (r *donationResponse) writeJson(w *jwriter.Writer) {
	w.RawString(`{"fundId":`)
	w.String(r.FundID)
	w.RawString(`,"asset":`)
	w.String(r.Asset)
	w.RawString(`,"amount":`)
	writeAmountJson(w, r.Amount)
	w.RawString(`,"balance":`)
	writeAmountJson(w, r.NewBalance)
	w.RawByte('}')
}

// statusResponse is the generic ack used by admin toggles and role updates.
type statusResponse struct {
	ID     string
	Status string
}

func (r *statusResponse) writeJson(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.String(r.ID)
	w.RawString(`,"status":`)
	w.String(r.Status)
	w.RawByte('}')
}
