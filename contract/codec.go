package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"swipepad/sdk"
)

// Compact deterministic binary codec for state blobs. JSON is not byte-stable
// enough for consensus state, so records are packed field by field.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 packs fixed-width big-endian, used for counters and flags.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the unsigned path since the bit pattern round-trips.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint keeps small counts short on the wire.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount stores the scaled int64 representation.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes with a varint length so the reader knows where to stop.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress funnels through writeString keeping addresses opaque.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

type binReader struct {
	buf *bytes.Reader
}

func newReader(data []byte) *binReader {
	return &binReader{buf: bytes.NewReader(data)}
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.buf.ReadByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.buf, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	return binary.ReadUvarint(r.buf)
}

func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readInt64()
	return Amount(v), err
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if n > uint64(r.buf.Len()) {
		return "", errors.New("string length exceeds buffer")
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.buf, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

// -----------------------------------------------------------------------------
// Fund Encoding
// -----------------------------------------------------------------------------

// EncodeFund serializes a fund record for kv storage.
func EncodeFund(f *Fund) []byte {
	w := newWriter()
	w.writeString(f.ID)
	w.writeString(f.Name)
	w.writeString(f.Purpose)
	w.writeVarUint(uint64(len(f.Signers)))
	for _, s := range f.Signers {
		w.writeAddress(s)
	}
	w.writeVarUint(uint64(f.RequiredSignatures))
	w.writeAmount(f.TotalDonations)
	w.writeBool(f.Active)
	w.writeInt64(f.CreatedAt)
	w.writeAddress(f.CreatedBy)
	w.writeString(f.Tx)
	return w.bytes()
}

// DecodeFund reverses EncodeFund, erroring on any truncated field.
func DecodeFund(data []byte) (*Fund, error) {
	r := newReader(data)
	f := &Fund{}
	var err error
	if f.ID, err = r.readString(); err != nil {
		return nil, err
	}
	if f.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if f.Purpose, err = r.readString(); err != nil {
		return nil, err
	}
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	f.Signers = make([]sdk.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		addr, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		f.Signers = append(f.Signers, addr)
	}
	required, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	f.RequiredSignatures = uint32(required)
	if f.TotalDonations, err = r.readAmount(); err != nil {
		return nil, err
	}
	if f.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	if f.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if f.CreatedBy, err = r.readAddress(); err != nil {
		return nil, err
	}
	if f.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return f, nil
}

// -----------------------------------------------------------------------------
// Withdrawal Proposal Encoding
// -----------------------------------------------------------------------------

// EncodeProposal serializes a withdrawal proposal for kv storage.
func EncodeProposal(p *WithdrawalProposal) []byte {
	w := newWriter()
	w.writeString(p.ID)
	w.writeString(p.FundID)
	w.writeString(p.Asset.String())
	w.writeAmount(p.Amount)
	w.writeAddress(p.Destination)
	w.writeAddress(p.Creator)
	w.writeInt64(p.CreatedAt)
	w.writeVarUint(uint64(len(p.ApprovedBy)))
	for _, a := range p.ApprovedBy {
		w.writeAddress(a)
	}
	w.writeVarUint(uint64(p.Approvals))
	w.writeBool(p.Executed)
	w.writeInt64(p.ExecutedAt)
	w.writeString(p.Tx)
	return w.bytes()
}

// DecodeProposal reverses EncodeProposal.
func DecodeProposal(data []byte) (*WithdrawalProposal, error) {
	r := newReader(data)
	p := &WithdrawalProposal{}
	var err error
	if p.ID, err = r.readString(); err != nil {
		return nil, err
	}
	if p.FundID, err = r.readString(); err != nil {
		return nil, err
	}
	asset, err := r.readString()
	if err != nil {
		return nil, err
	}
	p.Asset = sdk.Asset(asset)
	if p.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.Destination, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	p.ApprovedBy = make([]sdk.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		addr, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		p.ApprovedBy = append(p.ApprovedBy, addr)
	}
	approvals, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	p.Approvals = uint32(approvals)
	if p.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.ExecutedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return p, nil
}
