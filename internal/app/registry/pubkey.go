// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"bytes"

	base58 "github.com/jbenet/go-base58"
	"github.com/pkg/errors"
)

const PubkeySize = 32

// Pubkey identifies an account, a mint or a signer.
type Pubkey [PubkeySize]byte

func (k Pubkey) String() string {
	return base58.Encode(k[:])
}

func (k Pubkey) IsZero() bool {
	return k == Pubkey{}
}

func (k Pubkey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

func (k Pubkey) Equal(other Pubkey) bool {
	return bytes.Equal(k[:], other[:])
}

func (k Pubkey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Pubkey) UnmarshalText(text []byte) error {
	parsed, err := ParsePubkey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParsePubkey decodes the base58 form of a key.
func ParsePubkey(s string) (Pubkey, error) {
	var k Pubkey
	if s == "" {
		return k, errors.New("empty key")
	}
	raw := base58.Decode(s)
	if len(raw) != PubkeySize {
		return k, errors.Errorf("invalid key %q: decoded length %d", s, len(raw))
	}
	copy(k[:], raw)
	return k, nil
}

func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var k Pubkey
	if len(b) != PubkeySize {
		return k, errors.Errorf("invalid key length %d", len(b))
	}
	copy(k[:], b)
	return k, nil
}
