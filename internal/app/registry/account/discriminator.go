// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package account

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/pkg/errors"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

const DiscriminatorSize = 8

type Discriminator [DiscriminatorSize]byte

func (d Discriminator) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Kind is the type of a stored account.
type Kind string

const (
	KindVoter     Kind = "voter"
	KindRegistrar Kind = "registrar"
)

func discriminatorOf(name string) Discriminator {
	var d Discriminator
	sum := sha256.Sum256([]byte("account:" + name))
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

var (
	VoterDiscriminator     = discriminatorOf("Voter")
	RegistrarDiscriminator = discriminatorOf("Registrar")
)

// KindOf reads the discriminator prefix of raw account data.
func KindOf(data []byte) (Kind, error) {
	if len(data) < DiscriminatorSize {
		return "", errors.Wrapf(registry.ErrMalformedRecord, "data length %d too small for discriminator", len(data))
	}
	switch {
	case bytes.Equal(data[:DiscriminatorSize], VoterDiscriminator[:]):
		return KindVoter, nil
	case bytes.Equal(data[:DiscriminatorSize], RegistrarDiscriminator[:]):
		return KindRegistrar, nil
	}
	return "", errors.Wrapf(registry.ErrMalformedRecord, "discriminator %x not recognized", data[:DiscriminatorSize])
}

func expect(data []byte, want Discriminator, size int) error {
	if len(data) < DiscriminatorSize {
		return errors.Wrapf(registry.ErrMalformedRecord, "data length %d too small for discriminator", len(data))
	}
	if !bytes.Equal(data[:DiscriminatorSize], want[:]) {
		return errors.Wrapf(registry.ErrMalformedRecord, "discriminator %x not recognized", data[:DiscriminatorSize])
	}
	if len(data) < size {
		return errors.Wrapf(registry.ErrMalformedRecord, "data length %d, want at least %d", len(data), size)
	}
	return nil
}
