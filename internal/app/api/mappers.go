// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package api

import (
	"strconv"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
	"github.com/insolar/voter-stake-registry/internal/app/registry/decode"
)

// Amounts are strings, they do not fit into a JSON number safely.
func formatAmount(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func RegistrarToAPIRegistrar(reg *registry.Registrar) ResponseRegistrar {
	res := ResponseRegistrar{
		ClawbackAuthority:  reg.ClawbackAuthority.String(),
		Rates:              []ResponseExchangeRate{},
		Realm:              reg.Realm.String(),
		RealmAuthority:     reg.RealmAuthority.String(),
		RealmGoverningMint: reg.RealmGoverningMint.String(),
		TimeOffset:         reg.TimeOffset,
		VoteWeightDecimals: int(reg.VoteWeightDecimals),
	}
	for i, rate := range reg.Rates {
		if !rate.IsConfigured() {
			continue
		}
		res.Rates = append(res.Rates, ResponseExchangeRate{
			Decimals:             int(rate.Decimals),
			Index:                i,
			LockupSaturationSecs: formatAmount(rate.LockupSaturationSecs),
			MaxExtraLockupFactor: formatAmount(rate.MaxExtraLockupFactor),
			Mint:                 rate.Mint.String(),
			RateDenominator:      formatAmount(rate.RateDenominator),
			RateNumerator:        formatAmount(rate.RateNumerator),
		})
	}
	return res
}

// VoterToAPIVoter joins the voter's slots with their report; both list the
// used entries in slot order.
func VoterToAPIVoter(v *registry.Voter, report *decode.VoterReport, weight uint64, now int64) ResponseVoter {
	res := ResponseVoter{
		DepositEntries: []ResponseDepositEntry{},
		Registrar:      report.Registrar.String(),
		Timestamp:      now,
		VoterAuthority: report.VoterAuthority.String(),
		Weight:         formatAmount(weight),
	}
	next := 0
	for i := range v.Deposits {
		d := &v.Deposits[i]
		if !d.IsUsed {
			continue
		}
		r := report.DepositEntries[next]
		next++
		res.DepositEntries = append(res.DepositEntries, ResponseDepositEntry{
			AllowClawback: r.AllowClawback,
			Index:         i,
			Kind:          d.Lockup.Kind.String(),
			Locked1y:      formatAmount(r.Locked1y),
			Locked2y:      formatAmount(r.Locked2y),
			Locked3y:      formatAmount(r.Locked3y),
			Locked4y:      formatAmount(r.Locked4y),
			Locked5y:      formatAmount(r.Locked5y),
			LockedNow:     formatAmount(r.LockedNow),
			LockupEnd:     d.Lockup.EndTs,
			LockupStart:   d.Lockup.StartTs,
			MintIndex:     int(r.MintIndex),
			UnlockedNow:   formatAmount(r.UnlockedNow),
		})
	}
	return res
}
