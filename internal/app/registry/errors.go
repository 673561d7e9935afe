// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"github.com/pkg/errors"
)

var (
	ErrUnknownMint            = errors.New("unknown voting mint")
	ErrInsufficientUnvested   = errors.New("insufficient unlocked tokens")
	ErrNotClawbackEligible    = errors.New("deposit entry does not allow clawback")
	ErrSameTimestampAsDeposit = errors.New("cannot withdraw in the same slot as a deposit")
	ErrInvalidState           = errors.New("deposit entry is not in use")
	ErrInvalidLockupChange    = errors.New("lockup change would extend the lock")
	ErrArithmeticOverflow     = errors.New("arithmetic overflow")
	ErrMalformedRecord        = errors.New("malformed record")

	ErrInvalidLockup         = errors.New("invalid lockup")
	ErrInvalidDepositIndex   = errors.New("deposit entry index out of range")
	ErrNoFreeDepositEntry    = errors.New("no free deposit entry")
	ErrMintAlreadyConfigured = errors.New("voting mint already configured")
	ErrUnauthorized          = errors.New("missing required signature")
	ErrTimeOffsetDisabled    = errors.New("time offset is disabled")
	ErrNotFound              = errors.New("account not found")
	ErrZeroAmount            = errors.New("amount must be positive")
)
