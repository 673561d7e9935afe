// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	MaxVotingMints = 4

	// ScaledFactorBase is the fixed point base of MaxExtraLockupFactor:
	// a factor of ScaledFactorBase doubles the weight of a saturated lock.
	ScaledFactorBase uint64 = 1000000000
)

// ExchangeRateEntry describes how deposits of one mint turn into votes.
type ExchangeRateEntry struct {
	Mint     Pubkey
	Decimals uint8

	// Native amount * RateNumerator / RateDenominator gives vote units
	// before the decimals adjustment.
	RateNumerator   uint64
	RateDenominator uint64

	// Extra weight for locked tokens grows linearly with the remaining
	// lockup time and stops growing at LockupSaturationSecs.
	MaxExtraLockupFactor uint64
	LockupSaturationSecs uint64
}

func (e ExchangeRateEntry) IsConfigured() bool {
	return !e.Mint.IsZero()
}

func (e ExchangeRateEntry) Validate() error {
	if e.Mint.IsZero() {
		return errors.New("mint is not set")
	}
	if e.RateDenominator == 0 {
		return errors.New("rate denominator is zero")
	}
	if e.MaxExtraLockupFactor > 0 && e.LockupSaturationSecs == 0 {
		return errors.New("lockup saturation is zero while extra lockup factor is set")
	}
	return nil
}

// Registrar holds the per realm configuration: authorities and the
// exchange rate table.
type Registrar struct {
	Realm              Pubkey
	RealmGoverningMint Pubkey
	RealmAuthority     Pubkey
	ClawbackAuthority  Pubkey

	// Decimals of the vote weight unit; every mint is scaled to it.
	VoteWeightDecimals uint8

	// Shifts the clock of everything under this registrar. Test networks only.
	TimeOffset int64

	Rates [MaxVotingMints]ExchangeRateEntry
}

// ClockUnixTimestamp applies the time offset to the host wall time.
func (r *Registrar) ClockUnixTimestamp(wall int64) int64 {
	return wall + r.TimeOffset
}

// Clock applies the time offset to a host clock.
func (r *Registrar) Clock(host Clock) Clock {
	host.UnixTimestamp = r.ClockUnixTimestamp(host.UnixTimestamp)
	return host
}

func (r *Registrar) Rate(idx uint8) (ExchangeRateEntry, error) {
	if int(idx) >= len(r.Rates) {
		return ExchangeRateEntry{}, errors.Wrapf(ErrUnknownMint, "index %d out of range", idx)
	}
	rate := r.Rates[idx]
	if !rate.IsConfigured() {
		return ExchangeRateEntry{}, errors.Wrapf(ErrUnknownMint, "index %d is not configured", idx)
	}
	return rate, nil
}

func (r *Registrar) MintIndex(mint Pubkey) (uint8, error) {
	if mint.IsZero() {
		return 0, errors.Wrap(ErrUnknownMint, "zero mint")
	}
	for i, rate := range r.Rates {
		if rate.Mint == mint {
			return uint8(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMint, "mint %s", mint)
}

// ConfigureMint sets the exchange rate at idx. An index keeps its mint once
// set; calling it again only updates the rate and the bonus curve.
func (r *Registrar) ConfigureMint(idx uint8, entry ExchangeRateEntry) error {
	if int(idx) >= len(r.Rates) {
		return errors.Wrapf(ErrUnknownMint, "index %d out of range", idx)
	}
	if err := entry.Validate(); err != nil {
		return errors.Wrapf(err, "invalid exchange rate for index %d", idx)
	}
	current := r.Rates[idx]
	if current.IsConfigured() && current.Mint != entry.Mint {
		return errors.Wrapf(ErrMintAlreadyConfigured, "index %d holds mint %s", idx, current.Mint)
	}
	for i, rate := range r.Rates {
		if i != int(idx) && rate.Mint == entry.Mint {
			return errors.Wrapf(ErrMintAlreadyConfigured, "mint %s is at index %d", entry.Mint, i)
		}
	}
	if current.IsConfigured() && current.Decimals != entry.Decimals {
		return errors.Wrapf(ErrMintAlreadyConfigured, "decimals of mint %s can't change", entry.Mint)
	}
	r.Rates[idx] = entry
	return nil
}

func (r *Registrar) convert(rate ExchangeRateEntry, amount uint64) *big.Int {
	num := new(big.Int).SetUint64(amount)
	num.Mul(num, new(big.Int).SetUint64(rate.RateNumerator))
	den := new(big.Int).SetUint64(rate.RateDenominator)
	if r.VoteWeightDecimals >= rate.Decimals {
		num.Mul(num, pow10(uint(r.VoteWeightDecimals-rate.Decimals)))
	} else {
		den.Mul(den, pow10(uint(rate.Decimals-r.VoteWeightDecimals)))
	}
	return num.Quo(num, den)
}

// Convert turns a native amount of the mint at idx into vote units.
func (r *Registrar) Convert(idx uint8, amount uint64) (uint64, error) {
	rate, err := r.Rate(idx)
	if err != nil {
		return 0, err
	}
	return toUint64(r.convert(rate, amount))
}

func lockupBonus(rate ExchangeRateEntry, remaining uint64) *big.Rat {
	bonus := big.NewRat(1, 1)
	if remaining == 0 || rate.MaxExtraLockupFactor == 0 || rate.LockupSaturationSecs == 0 {
		return bonus
	}
	if remaining > rate.LockupSaturationSecs {
		remaining = rate.LockupSaturationSecs
	}
	extraNum := new(big.Int).SetUint64(rate.MaxExtraLockupFactor)
	extraNum.Mul(extraNum, new(big.Int).SetUint64(remaining))
	extraDen := new(big.Int).SetUint64(ScaledFactorBase)
	extraDen.Mul(extraDen, new(big.Int).SetUint64(rate.LockupSaturationSecs))
	return bonus.Add(bonus, new(big.Rat).SetFrac(extraNum, extraDen))
}

// LockupBonus is the multiplier applied to locked tokens of the mint at idx
// that stay locked for another remaining seconds. It is at least 1.
func (r *Registrar) LockupBonus(idx uint8, remaining uint64) (*big.Rat, error) {
	rate, err := r.Rate(idx)
	if err != nil {
		return nil, err
	}
	return lockupBonus(rate, remaining), nil
}

// depositWeight is the weight of one deposit entry before summation.
func (r *Registrar) depositWeight(d *DepositEntry, now int64) (*big.Int, error) {
	rate, err := r.Rate(d.VotingMintConfigIdx)
	if err != nil {
		return nil, err
	}
	weight := r.convert(rate, d.AmountUnlocked(now))

	locked := new(big.Rat).SetInt(r.convert(rate, d.AmountLocked(now)))
	locked.Mul(locked, lockupBonus(rate, d.Lockup.SecondsRemaining(now)))
	lockedWeight := new(big.Int).Quo(locked.Num(), locked.Denom())

	return weight.Add(weight, lockedWeight), nil
}
