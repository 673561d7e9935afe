// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package account

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

const (
	depositEntrySize = 3 + 8 + 8 + 1 + 8 + 8 + 8
	rateEntrySize    = registry.PubkeySize + 1 + 8 + 8 + 8 + 8

	VoterSize     = DiscriminatorSize + 2*registry.PubkeySize + registry.MaxDepositEntries*depositEntrySize
	RegistrarSize = DiscriminatorSize + 4*registry.PubkeySize + 1 + 8 + registry.MaxVotingMints*rateEntrySize
)

// reader walks a little endian buffer whose length was checked up front.
type reader struct {
	buf []byte
	pos int
	err error
}

func (r *reader) next(n int) []byte {
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) u8() uint8 {
	return r.next(1)[0]
}

func (r *reader) bool(field string) bool {
	v := r.u8()
	if v > 1 && r.err == nil {
		r.err = errors.Wrapf(registry.ErrMalformedRecord, "%s: invalid bool %d at offset %d", field, v, r.pos-1)
	}
	return v == 1
}

func (r *reader) u64() uint64 {
	return binary.LittleEndian.Uint64(r.next(8))
}

func (r *reader) i64() int64 {
	return int64(r.u64())
}

func (r *reader) key() registry.Pubkey {
	var k registry.Pubkey
	copy(k[:], r.next(registry.PubkeySize))
	return k
}

type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) bool(v bool) {
	if v {
		w.u8(1)
		return
	}
	w.u8(0)
}

func (w *writer) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) i64(v int64) {
	w.u64(uint64(v))
}

func (w *writer) key(k registry.Pubkey) {
	w.buf = append(w.buf, k[:]...)
}

func (w *writer) raw(b []byte) {
	w.buf = append(w.buf, b...)
}
