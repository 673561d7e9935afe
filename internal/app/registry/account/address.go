// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package account

import (
	"crypto/sha256"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

// Account addresses are derived from their seeds, so a client can find a
// voter knowing only its registrar and authority.

func derive(seeds ...[]byte) registry.Pubkey {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s) // nolint: errcheck
	}
	var k registry.Pubkey
	copy(k[:], h.Sum(nil))
	return k
}

func RegistrarAddress(realm, governingMint registry.Pubkey) registry.Pubkey {
	return derive(realm.Bytes(), []byte("registrar"), governingMint.Bytes())
}

func VoterAddress(registrar, voterAuthority registry.Pubkey) registry.Pubkey {
	return derive(registrar.Bytes(), []byte("voter"), voterAuthority.Bytes())
}

// VaultAddress is the token account holding a voter's deposits of one mint.
func VaultAddress(voter, mint registry.Pubkey) registry.Pubkey {
	return derive(voter.Bytes(), []byte("vault"), mint.Bytes())
}
