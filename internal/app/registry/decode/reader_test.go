// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package decode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
	"github.com/insolar/voter-stake-registry/internal/app/registry/account"
	"github.com/insolar/voter-stake-registry/observability"
)

const start int64 = 1600000000

type testClock struct {
	nowTime int64
}

func (c *testClock) Now() time.Time {
	return time.Unix(c.nowTime, 0)
}

func key(b byte) registry.Pubkey {
	var k registry.Pubkey
	for i := range k {
		k[i] = b
	}
	return k
}

func makeAccounts(t *testing.T) (*registry.Voter, *registry.Registrar) {
	reg := &registry.Registrar{
		Realm:              key(1),
		RealmGoverningMint: key(2),
		RealmAuthority:     key(3),
		VoteWeightDecimals: 6,
	}
	require.NoError(t, reg.ConfigureMint(0, registry.ExchangeRateEntry{
		Mint:            key(2),
		Decimals:        6,
		RateNumerator:   1,
		RateDenominator: 1,
	}))

	voter := &registry.Voter{VoterAuthority: key(5), Registrar: key(6)}
	clock := registry.Clock{Slot: 1, UnixTimestamp: start}
	_, err := voter.CreateDeposit(reg, 0, registry.LockupNone, 0, false, 1000, clock)
	require.NoError(t, err)
	_, err = voter.CreateDeposit(reg, 0, registry.LockupCliff, 400, true, 2000, clock)
	require.NoError(t, err)
	return voter, reg
}

func newReader() *Reader {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	metrics := observability.MakeDecodeMetrics(observability.Make(log))
	return NewReader(log, &testClock{nowTime: start}, metrics)
}

func b64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func TestReport(t *testing.T) {
	voter, reg := makeAccounts(t)

	report, weight, err := Report(voter, reg, start)
	require.NoError(t, err)
	require.Equal(t, uint64(3000), weight)
	require.Equal(t, key(5), report.VoterAuthority)
	require.Equal(t, key(6), report.Registrar)
	require.Equal(t, []DepositReport{
		{MintIndex: 0, UnlockedNow: 1000},
		{AllowClawback: true, MintIndex: 0, LockedNow: 2000, Locked1y: 2000},
	}, report.DepositEntries)

	t.Run("no deposits", func(t *testing.T) {
		report, weight, err := Report(&registry.Voter{}, reg, start)
		require.NoError(t, err)
		require.Zero(t, weight)
		require.NotNil(t, report.DepositEntries)
		require.Empty(t, report.DepositEntries)
	})

	t.Run("unknown mint", func(t *testing.T) {
		_, _, err := Report(voter, &registry.Registrar{}, start)
		require.Error(t, err)
	})
}

func TestReport_TimeOffset(t *testing.T) {
	reg := &registry.Registrar{
		RealmGoverningMint: key(2),
		VoteWeightDecimals: 6,
		TimeOffset:         2 * registry.SecsPerDay,
	}
	require.NoError(t, reg.ConfigureMint(0, registry.ExchangeRateEntry{
		Mint:                 key(2),
		Decimals:             6,
		RateNumerator:        1,
		RateDenominator:      1,
		MaxExtraLockupFactor: registry.ScaledFactorBase,
		LockupSaturationSecs: uint64(10 * registry.SecsPerDay),
	}))
	voter := &registry.Voter{VoterAuthority: key(5), Registrar: key(6)}
	_, err := voter.CreateDeposit(reg, 0, registry.LockupCliff, 1, false, 1000, registry.Clock{Slot: 1, UnixTimestamp: start})
	require.NoError(t, err)

	report, weight, err := Report(voter, reg, start)
	require.NoError(t, err)

	// the cliff has not passed on the wall clock
	require.Equal(t, uint64(1000), report.DepositEntries[0].LockedNow)
	require.Zero(t, report.DepositEntries[0].UnlockedNow)

	// but it has on the registrar clock
	shifted, err := voter.Weight(reg, start+2*registry.SecsPerDay)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), shifted)
	require.Equal(t, shifted, weight)

	atWall, err := voter.Weight(reg, start)
	require.NoError(t, err)
	require.NotEqual(t, atWall, weight)

	t.Run("reader", func(t *testing.T) {
		input := b64(account.EncodeVoter(voter)) + "\n" + b64(account.EncodeRegistrar(reg))
		out := &bytes.Buffer{}
		stats, err := newReader().Run(strings.NewReader(input), out)
		require.NoError(t, err)
		require.Equal(t, Stats{Reported: 1}, stats)
		require.Contains(t, out.String(), `"locked_now":1000`)
		require.True(t, strings.HasSuffix(out.String(), "weight: 1000\n"))
	})
}

func TestReader_Run(t *testing.T) {
	voter, reg := makeAccounts(t)
	voterLine := b64(account.EncodeVoter(voter))
	registrarLine := b64(account.EncodeRegistrar(reg))

	input := strings.Join([]string{
		"# accounts",
		voterLine,
		registrarLine,
		"",
		b64([]byte{1, 2, 3}),
		registrarLine,
		voterLine,
		registrarLine,
		voterLine,
	}, "\n")

	out := &bytes.Buffer{}
	stats, err := newReader().Run(strings.NewReader(input), out)
	require.NoError(t, err)
	require.Equal(t, Stats{Reported: 2, Malformed: 2}, stats)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "weight: 3000", lines[1])
	require.Equal(t, lines[0], lines[2])
	require.Equal(t, lines[1], lines[3])

	received := &VoterReport{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), received))
	expected, _, err := Report(voter, reg, start)
	require.NoError(t, err)
	require.Equal(t, expected, received)

	require.Contains(t, lines[0], `"voter_authority":"`+key(5).String()+`"`)
	require.Contains(t, lines[0], `"locked_1y":2000`)
}

func TestReader_Run_Malformed(t *testing.T) {
	voter, reg := makeAccounts(t)
	voterLine := b64(account.EncodeVoter(voter))
	registrarLine := b64(account.EncodeRegistrar(reg))
	unknown := b64([]byte{9, 9, 9, 9, 9, 9, 9, 9, 9})

	table := []struct {
		name  string
		lines []string
	}{
		{"swapped", []string{registrarLine, voterLine}},
		{"two voters", []string{voterLine, voterLine}},
		{"unknown discriminator", []string{unknown, registrarLine}},
		{"bad base64", []string{"not base64!", registrarLine}},
		{"truncated voter", []string{b64(account.EncodeVoter(voter)[:100]), registrarLine}},
		{"unconfigured mint", []string{voterLine, b64(account.EncodeRegistrar(&registry.Registrar{}))}},
	}
	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			lines := append(tc.lines, voterLine, registrarLine)
			out := &bytes.Buffer{}
			stats, err := newReader().Run(strings.NewReader(strings.Join(lines, "\n")), out)
			require.NoError(t, err)
			require.Equal(t, Stats{Reported: 1, Malformed: 1}, stats)
			require.True(t, strings.HasSuffix(out.String(), "weight: 3000\n"))
		})
	}
}
