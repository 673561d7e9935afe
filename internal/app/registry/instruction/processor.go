// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package instruction

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/insolar/voter-stake-registry/configuration"
	"github.com/insolar/voter-stake-registry/internal/app/registry"
	"github.com/insolar/voter-stake-registry/internal/app/registry/account"
	"github.com/insolar/voter-stake-registry/observability"
)

var ErrAccountExists = errors.New("account already exists")

// Signers are the keys that signed an instruction.
type Signers []registry.Pubkey

func (s Signers) Has(key registry.Pubkey) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

func (s Signers) require(key registry.Pubkey, role string) error {
	if key.IsZero() || !s.Has(key) {
		return errors.Wrapf(registry.ErrUnauthorized, "%s %s", role, key)
	}
	return nil
}

type CreateRegistrarArgs struct {
	Realm              registry.Pubkey
	GoverningMint      registry.Pubkey
	RealmAuthority     registry.Pubkey
	ClawbackAuthority  registry.Pubkey
	VoteWeightDecimals uint8
}

type CreateDepositArgs struct {
	Registrar      registry.Pubkey
	VoterAuthority registry.Pubkey
	// Token account the deposit is paid from.
	Source        registry.Pubkey
	Mint          registry.Pubkey
	Kind          registry.LockupKind
	Periods       uint32
	AllowClawback bool
	Amount        uint64
}

type DepositArgs struct {
	Registrar      registry.Pubkey
	VoterAuthority registry.Pubkey
	Source         registry.Pubkey
	Index          uint8
	Amount         uint64
}

type WithdrawArgs struct {
	Registrar      registry.Pubkey
	VoterAuthority registry.Pubkey
	Destination    registry.Pubkey
	Index          uint8
	Amount         uint64
}

type ClawbackArgs struct {
	Registrar      registry.Pubkey
	VoterAuthority registry.Pubkey
	Destination    registry.Pubkey
	Index          uint8
}

type ChangeLockupArgs struct {
	Registrar      registry.Pubkey
	VoterAuthority registry.Pubkey
	Index          uint8
	Kind           registry.LockupKind
	Periods        uint32
}

// Processor executes registry instructions. Every instruction works on
// copies of the accounts and stores them only when it fully succeeds, so a
// failed instruction changes nothing. Instructions on the same account run
// one at a time, from loading the account until it is saved.
type Processor struct {
	store     AccountStore
	custody   Custody
	locks     *accountLocks
	log       logrus.FieldLogger
	processed *observability.InstructionMetrics
	rejected  *observability.InstructionMetrics
	cfg       configuration.Registry
}

func NewProcessor(store AccountStore, custody Custody, obs *observability.Observability, cfg configuration.Registry) *Processor {
	return &Processor{
		store:     store,
		custody:   custody,
		locks:     newAccountLocks(),
		log:       obs.Log(),
		processed: observability.MakeInstructionMetrics(obs, "processed"),
		rejected:  observability.MakeInstructionMetrics(obs, "rejected"),
		cfg:       cfg,
	}
}

func (p *Processor) finish(name string, processed, rejected prometheus.Counter, err error) error {
	if err != nil {
		rejected.Inc()
		p.log.WithField("instruction", name).WithError(err).Warn("instruction rejected")
		return err
	}
	processed.Inc()
	p.log.WithField("instruction", name).Debug("instruction processed")
	return nil
}

func (p *Processor) CreateRegistrar(ctx context.Context, signers Signers, args CreateRegistrarArgs) (registry.Pubkey, error) {
	key, err := p.createRegistrar(ctx, signers, args)
	return key, p.finish("create_registrar", p.processed.Registrars, p.rejected.Registrars, err)
}

func (p *Processor) createRegistrar(ctx context.Context, signers Signers, args CreateRegistrarArgs) (registry.Pubkey, error) {
	if err := signers.require(args.RealmAuthority, "realm authority"); err != nil {
		return registry.Pubkey{}, err
	}
	if args.Realm.IsZero() || args.GoverningMint.IsZero() {
		return registry.Pubkey{}, errors.New("realm and governing mint are required")
	}
	key := account.RegistrarAddress(args.Realm, args.GoverningMint)
	defer p.locks.lock(key)()

	_, err := p.store.Registrar(ctx, key)
	if err == nil {
		return registry.Pubkey{}, errors.Wrapf(ErrAccountExists, "registrar %s", key)
	}
	if !errors.Is(err, registry.ErrNotFound) {
		return registry.Pubkey{}, err
	}

	reg := &registry.Registrar{
		Realm:              args.Realm,
		RealmGoverningMint: args.GoverningMint,
		RealmAuthority:     args.RealmAuthority,
		ClawbackAuthority:  args.ClawbackAuthority,
		VoteWeightDecimals: args.VoteWeightDecimals,
	}
	if err := p.store.SaveRegistrar(ctx, key, reg); err != nil {
		return registry.Pubkey{}, errors.Wrap(err, "failed to save registrar")
	}
	return key, nil
}

func (p *Processor) ConfigureExchangeRate(ctx context.Context, signers Signers, registrarKey registry.Pubkey, idx uint8, rate registry.ExchangeRateEntry) error {
	return p.finish("configure_exchange_rate", p.processed.Rates, p.rejected.Rates, p.configureExchangeRate(ctx, signers, registrarKey, idx, rate))
}

func (p *Processor) configureExchangeRate(ctx context.Context, signers Signers, registrarKey registry.Pubkey, idx uint8, rate registry.ExchangeRateEntry) error {
	defer p.locks.lock(registrarKey)()

	reg, err := p.store.Registrar(ctx, registrarKey)
	if err != nil {
		return err
	}
	if err := signers.require(reg.RealmAuthority, "realm authority"); err != nil {
		return err
	}
	if err := reg.ConfigureMint(idx, rate); err != nil {
		return err
	}
	return errors.Wrap(p.store.SaveRegistrar(ctx, registrarKey, reg), "failed to save registrar")
}

func (p *Processor) CreateVoter(ctx context.Context, signers Signers, registrarKey, voterAuthority registry.Pubkey) (registry.Pubkey, error) {
	key, err := p.createVoter(ctx, signers, registrarKey, voterAuthority)
	return key, p.finish("create_voter", p.processed.Voters, p.rejected.Voters, err)
}

func (p *Processor) createVoter(ctx context.Context, signers Signers, registrarKey, voterAuthority registry.Pubkey) (registry.Pubkey, error) {
	if err := signers.require(voterAuthority, "voter authority"); err != nil {
		return registry.Pubkey{}, err
	}
	if _, err := p.store.Registrar(ctx, registrarKey); err != nil {
		return registry.Pubkey{}, err
	}
	key := account.VoterAddress(registrarKey, voterAuthority)
	defer p.locks.lock(key)()

	_, err := p.store.Voter(ctx, key)
	if err == nil {
		return registry.Pubkey{}, errors.Wrapf(ErrAccountExists, "voter %s", key)
	}
	if !errors.Is(err, registry.ErrNotFound) {
		return registry.Pubkey{}, err
	}

	voter := &registry.Voter{VoterAuthority: voterAuthority, Registrar: registrarKey}
	if err := p.store.SaveVoter(ctx, key, voter); err != nil {
		return registry.Pubkey{}, errors.Wrap(err, "failed to save voter")
	}
	return key, nil
}

// voterAccounts loads a registrar and the voter of authority under it.
// The caller must hold the voter lock.
func (p *Processor) voterAccounts(ctx context.Context, registrarKey, authority registry.Pubkey) (*registry.Registrar, registry.Pubkey, *registry.Voter, error) {
	reg, err := p.store.Registrar(ctx, registrarKey)
	if err != nil {
		return nil, registry.Pubkey{}, nil, err
	}
	key := account.VoterAddress(registrarKey, authority)
	voter, err := p.store.Voter(ctx, key)
	if err != nil {
		return nil, registry.Pubkey{}, nil, err
	}
	return reg, key, voter, nil
}

type transfer struct {
	mint   registry.Pubkey
	from   registry.Pubkey
	to     registry.Pubkey
	amount uint64
}

// transferAndSave moves the tokens and then stores the voter. When the
// voter can't be stored the transfer is sent back.
func (p *Processor) transferAndSave(ctx context.Context, t transfer, key registry.Pubkey, voter *registry.Voter) error {
	if t.amount > 0 {
		if err := p.custody.Transfer(ctx, t.mint, t.from, t.to, t.amount); err != nil {
			return errors.Wrap(err, "failed to transfer tokens")
		}
	}
	err := p.store.SaveVoter(ctx, key, voter)
	if err == nil {
		return nil
	}
	if t.amount > 0 {
		if rerr := p.custody.Transfer(ctx, t.mint, t.to, t.from, t.amount); rerr != nil {
			p.log.WithFields(logrus.Fields{
				"mint":   t.mint,
				"from":   t.to,
				"to":     t.from,
				"amount": t.amount,
			}).WithError(rerr).Error("failed to revert transfer")
		}
	}
	return errors.Wrap(err, "failed to save voter")
}

func (p *Processor) CreateDeposit(ctx context.Context, signers Signers, host registry.Clock, args CreateDepositArgs) (uint8, error) {
	idx, err := p.createDeposit(ctx, signers, host, args)
	return idx, p.finish("create_deposit", p.processed.Deposits, p.rejected.Deposits, err)
}

func (p *Processor) createDeposit(ctx context.Context, signers Signers, host registry.Clock, args CreateDepositArgs) (uint8, error) {
	if err := signers.require(args.VoterAuthority, "voter authority"); err != nil {
		return 0, err
	}
	defer p.locks.lock(account.VoterAddress(args.Registrar, args.VoterAuthority))()

	reg, key, voter, err := p.voterAccounts(ctx, args.Registrar, args.VoterAuthority)
	if err != nil {
		return 0, err
	}
	mintIdx, err := reg.MintIndex(args.Mint)
	if err != nil {
		return 0, err
	}
	idx, err := voter.CreateDeposit(reg, mintIdx, args.Kind, args.Periods, args.AllowClawback, args.Amount, reg.Clock(host))
	if err != nil {
		return 0, err
	}
	t := transfer{mint: args.Mint, from: args.Source, to: account.VaultAddress(key, args.Mint), amount: args.Amount}
	if err := p.transferAndSave(ctx, t, key, voter); err != nil {
		return 0, err
	}
	return idx, nil
}

func (p *Processor) Deposit(ctx context.Context, signers Signers, host registry.Clock, args DepositArgs) error {
	return p.finish("deposit", p.processed.Deposits, p.rejected.Deposits, p.deposit(ctx, signers, host, args))
}

func (p *Processor) deposit(ctx context.Context, signers Signers, host registry.Clock, args DepositArgs) error {
	if err := signers.require(args.VoterAuthority, "voter authority"); err != nil {
		return err
	}
	defer p.locks.lock(account.VoterAddress(args.Registrar, args.VoterAuthority))()

	reg, key, voter, err := p.voterAccounts(ctx, args.Registrar, args.VoterAuthority)
	if err != nil {
		return err
	}
	entry, err := voter.ActiveEntry(args.Index)
	if err != nil {
		return err
	}
	rate, err := reg.Rate(entry.VotingMintConfigIdx)
	if err != nil {
		return err
	}
	if err := entry.Deposit(args.Amount, reg.Clock(host)); err != nil {
		return errors.Wrapf(err, "deposit entry %d", args.Index)
	}
	t := transfer{mint: rate.Mint, from: args.Source, to: account.VaultAddress(key, rate.Mint), amount: args.Amount}
	return p.transferAndSave(ctx, t, key, voter)
}

func (p *Processor) Withdraw(ctx context.Context, signers Signers, host registry.Clock, args WithdrawArgs) error {
	return p.finish("withdraw", p.processed.Withdrawals, p.rejected.Withdrawals, p.withdraw(ctx, signers, host, args))
}

func (p *Processor) withdraw(ctx context.Context, signers Signers, host registry.Clock, args WithdrawArgs) error {
	if err := signers.require(args.VoterAuthority, "voter authority"); err != nil {
		return err
	}
	defer p.locks.lock(account.VoterAddress(args.Registrar, args.VoterAuthority))()

	reg, key, voter, err := p.voterAccounts(ctx, args.Registrar, args.VoterAuthority)
	if err != nil {
		return err
	}
	entry, err := voter.ActiveEntry(args.Index)
	if err != nil {
		return err
	}
	rate, err := reg.Rate(entry.VotingMintConfigIdx)
	if err != nil {
		return err
	}
	if err := entry.Withdraw(args.Amount, reg.Clock(host)); err != nil {
		return errors.Wrapf(err, "deposit entry %d", args.Index)
	}
	t := transfer{mint: rate.Mint, from: account.VaultAddress(key, rate.Mint), to: args.Destination, amount: args.Amount}
	return p.transferAndSave(ctx, t, key, voter)
}

// Clawback sends everything still locked in a deposit entry to the
// destination chosen by the clawback authority.
func (p *Processor) Clawback(ctx context.Context, signers Signers, host registry.Clock, args ClawbackArgs) (uint64, error) {
	amount, err := p.clawback(ctx, signers, host, args)
	return amount, p.finish("clawback", p.processed.Clawbacks, p.rejected.Clawbacks, err)
}

func (p *Processor) clawback(ctx context.Context, signers Signers, host registry.Clock, args ClawbackArgs) (uint64, error) {
	defer p.locks.lock(account.VoterAddress(args.Registrar, args.VoterAuthority))()

	reg, key, voter, err := p.voterAccounts(ctx, args.Registrar, args.VoterAuthority)
	if err != nil {
		return 0, err
	}
	if err := signers.require(reg.ClawbackAuthority, "clawback authority"); err != nil {
		return 0, err
	}
	entry, err := voter.ActiveEntry(args.Index)
	if err != nil {
		return 0, err
	}
	rate, err := reg.Rate(entry.VotingMintConfigIdx)
	if err != nil {
		return 0, err
	}
	amount, err := entry.Clawback(reg.Clock(host))
	if err != nil {
		return 0, errors.Wrapf(err, "deposit entry %d", args.Index)
	}
	t := transfer{mint: rate.Mint, from: account.VaultAddress(key, rate.Mint), to: args.Destination, amount: amount}
	if err := p.transferAndSave(ctx, t, key, voter); err != nil {
		return 0, err
	}
	return amount, nil
}

func (p *Processor) ChangeLockup(ctx context.Context, signers Signers, host registry.Clock, args ChangeLockupArgs) error {
	return p.finish("change_lockup", p.processed.Lockups, p.rejected.Lockups, p.changeLockup(ctx, signers, host, args))
}

func (p *Processor) changeLockup(ctx context.Context, signers Signers, host registry.Clock, args ChangeLockupArgs) error {
	defer p.locks.lock(account.VoterAddress(args.Registrar, args.VoterAuthority))()

	reg, key, voter, err := p.voterAccounts(ctx, args.Registrar, args.VoterAuthority)
	if err != nil {
		return err
	}
	if err := signers.require(reg.RealmAuthority, "realm authority"); err != nil {
		return err
	}
	entry, err := voter.ActiveEntry(args.Index)
	if err != nil {
		return err
	}
	if err := entry.ChangeLockup(args.Kind, args.Periods, reg.Clock(host)); err != nil {
		return errors.Wrapf(err, "deposit entry %d", args.Index)
	}
	return errors.Wrap(p.store.SaveVoter(ctx, key, voter), "failed to save voter")
}

// SetTimeOffset shifts the clock of a registrar and all of its voters.
// It works only when enabled in the configuration.
func (p *Processor) SetTimeOffset(ctx context.Context, signers Signers, registrarKey registry.Pubkey, offset int64) error {
	return p.finish("set_time_offset", p.processed.TimeOffsets, p.rejected.TimeOffsets, p.setTimeOffset(ctx, signers, registrarKey, offset))
}

func (p *Processor) setTimeOffset(ctx context.Context, signers Signers, registrarKey registry.Pubkey, offset int64) error {
	if !p.cfg.AllowTimeOffset {
		return registry.ErrTimeOffsetDisabled
	}
	defer p.locks.lock(registrarKey)()

	reg, err := p.store.Registrar(ctx, registrarKey)
	if err != nil {
		return err
	}
	if err := signers.require(reg.RealmAuthority, "realm authority"); err != nil {
		return err
	}
	reg.TimeOffset = offset
	return errors.Wrap(p.store.SaveRegistrar(ctx, registrarKey, reg), "failed to save registrar")
}

// Weight is the vote weight of the voter stored at voterKey, measured on
// its registrar's clock.
func (p *Processor) Weight(ctx context.Context, voterKey registry.Pubkey, host registry.Clock) (uint64, error) {
	weight, err := p.weight(ctx, voterKey, host)
	return weight, p.finish("weight", p.processed.Weights, p.rejected.Weights, err)
}

func (p *Processor) weight(ctx context.Context, voterKey registry.Pubkey, host registry.Clock) (uint64, error) {
	voter, err := p.store.Voter(ctx, voterKey)
	if err != nil {
		return 0, err
	}
	reg, err := p.store.Registrar(ctx, voter.Registrar)
	if err != nil {
		return 0, err
	}
	return voter.Weight(reg, reg.ClockUnixTimestamp(host.UnixTimestamp))
}
