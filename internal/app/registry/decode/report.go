// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package decode

import (
	"time"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

// Year is the report horizon step.
const Year = registry.SecsPerYear

type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

type DepositReport struct {
	AllowClawback bool   `json:"allow_clawback"`
	MintIndex     uint8  `json:"mint_index"`
	UnlockedNow   uint64 `json:"unlocked_now"`
	LockedNow     uint64 `json:"locked_now"`
	Locked1y      uint64 `json:"locked_1y"`
	Locked2y      uint64 `json:"locked_2y"`
	Locked3y      uint64 `json:"locked_3y"`
	Locked4y      uint64 `json:"locked_4y"`
	Locked5y      uint64 `json:"locked_5y"`
}

type VoterReport struct {
	VoterAuthority registry.Pubkey `json:"voter_authority"`
	Registrar      registry.Pubkey `json:"registrar"`
	DepositEntries []DepositReport `json:"deposit_entries"`
}

func reportDeposit(d *registry.DepositEntry, now int64) DepositReport {
	return DepositReport{
		AllowClawback: d.AllowClawback,
		MintIndex:     d.VotingMintConfigIdx,
		UnlockedNow:   d.AmountUnlocked(now),
		LockedNow:     d.AmountLocked(now),
		Locked1y:      d.AmountLocked(now + Year),
		Locked2y:      d.AmountLocked(now + 2*Year),
		Locked3y:      d.AmountLocked(now + 3*Year),
		Locked4y:      d.AmountLocked(now + 4*Year),
		Locked5y:      d.AmountLocked(now + 5*Year),
	}
}

// Report describes every used deposit entry of the voter at the wall time
// now. The weight is computed on the registrar clock, time offset included.
// A weight error fails the whole report.
func Report(voter *registry.Voter, registrar *registry.Registrar, now int64) (*VoterReport, uint64, error) {
	weight, err := voter.Weight(registrar, registrar.ClockUnixTimestamp(now))
	if err != nil {
		return nil, 0, err
	}
	report := &VoterReport{
		VoterAuthority: voter.VoterAuthority,
		Registrar:      voter.Registrar,
		DepositEntries: []DepositReport{},
	}
	for i := range voter.Deposits {
		d := &voter.Deposits[i]
		if !d.IsUsed {
			continue
		}
		report.DepositEntries = append(report.DepositEntries, reportDeposit(d, now))
	}
	return report, weight, nil
}
