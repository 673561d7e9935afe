// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package account

import (
	"github.com/pkg/errors"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

func EncodeVoter(v *registry.Voter) []byte {
	w := &writer{buf: make([]byte, 0, VoterSize)}
	w.raw(VoterDiscriminator[:])
	w.key(v.VoterAuthority)
	w.key(v.Registrar)
	for i := range v.Deposits {
		d := &v.Deposits[i]
		w.bool(d.IsUsed)
		w.bool(d.AllowClawback)
		w.u8(d.VotingMintConfigIdx)
		w.u64(d.AmountDepositedNative)
		w.u64(d.AmountInitiallyLockedNative)
		w.u8(uint8(d.Lockup.Kind))
		w.i64(d.Lockup.StartTs)
		w.i64(d.Lockup.EndTs)
		w.u64(d.LastDepositSlot)
	}
	return w.buf
}

// DecodeVoter parses voter account data including its discriminator.
// Data longer than VoterSize is accepted, the tail is ignored.
func DecodeVoter(data []byte) (*registry.Voter, error) {
	if err := expect(data, VoterDiscriminator, VoterSize); err != nil {
		return nil, errors.Wrap(err, "voter")
	}
	r := &reader{buf: data, pos: DiscriminatorSize}
	v := &registry.Voter{
		VoterAuthority: r.key(),
		Registrar:      r.key(),
	}
	for i := range v.Deposits {
		d := &v.Deposits[i]
		d.IsUsed = r.bool("is_used")
		d.AllowClawback = r.bool("allow_clawback")
		d.VotingMintConfigIdx = r.u8()
		d.AmountDepositedNative = r.u64()
		d.AmountInitiallyLockedNative = r.u64()
		d.Lockup.Kind = registry.LockupKind(r.u8())
		d.Lockup.StartTs = r.i64()
		d.Lockup.EndTs = r.i64()
		d.LastDepositSlot = r.u64()
		if r.err != nil {
			return nil, errors.Wrapf(r.err, "voter deposit %d", i)
		}
		if !d.Lockup.Kind.Valid() {
			return nil, errors.Wrapf(registry.ErrMalformedRecord, "voter deposit %d: lockup kind %d", i, d.Lockup.Kind)
		}
		if d.Lockup.StartTs > d.Lockup.EndTs {
			return nil, errors.Wrapf(registry.ErrMalformedRecord, "voter deposit %d: lockup starts after it ends", i)
		}
	}
	return v, nil
}

func EncodeRegistrar(reg *registry.Registrar) []byte {
	w := &writer{buf: make([]byte, 0, RegistrarSize)}
	w.raw(RegistrarDiscriminator[:])
	w.key(reg.Realm)
	w.key(reg.RealmGoverningMint)
	w.key(reg.RealmAuthority)
	w.key(reg.ClawbackAuthority)
	w.u8(reg.VoteWeightDecimals)
	w.i64(reg.TimeOffset)
	for _, rate := range reg.Rates {
		w.key(rate.Mint)
		w.u8(rate.Decimals)
		w.u64(rate.RateNumerator)
		w.u64(rate.RateDenominator)
		w.u64(rate.MaxExtraLockupFactor)
		w.u64(rate.LockupSaturationSecs)
	}
	return w.buf
}

func DecodeRegistrar(data []byte) (*registry.Registrar, error) {
	if err := expect(data, RegistrarDiscriminator, RegistrarSize); err != nil {
		return nil, errors.Wrap(err, "registrar")
	}
	r := &reader{buf: data, pos: DiscriminatorSize}
	reg := &registry.Registrar{
		Realm:              r.key(),
		RealmGoverningMint: r.key(),
		RealmAuthority:     r.key(),
		ClawbackAuthority:  r.key(),
		VoteWeightDecimals: r.u8(),
		TimeOffset:         r.i64(),
	}
	for i := range reg.Rates {
		rate := &reg.Rates[i]
		rate.Mint = r.key()
		rate.Decimals = r.u8()
		rate.RateNumerator = r.u64()
		rate.RateDenominator = r.u64()
		rate.MaxExtraLockupFactor = r.u64()
		rate.LockupSaturationSecs = r.u64()
		if rate.IsConfigured() && rate.RateDenominator == 0 {
			return nil, errors.Wrapf(registry.ErrMalformedRecord, "registrar rate %d: zero denominator", i)
		}
	}
	return reg, nil
}
