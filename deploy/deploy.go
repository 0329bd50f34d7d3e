/*
Package deploy provides the Meridian contract set deployment procedure.

The procedure brings a Neo blockchain network from any state to the one where
all four Meridian contracts (registry, ledger, token store, token) are on the
chain and the registry knows the logical names of the other three. Deploy is
idempotent: contracts already present on the chain are left untouched, so the
procedure can be safely re-run after a partial failure.
*/
package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/meridian-token/meridian-contract/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services of a particular Neo blockchain network that are
// required for the Meridian contract set deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose, send and await
	// transactions on the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of a smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the Meridian contract set deployment
// procedure.
type Prm struct {
	// Writes progress into the log. Defaults to a no-op logger.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Account used for transaction signing (must be unlocked). It has to
	// pass the committee witness checks of the contracts, otherwise name
	// registration fails.
	CommitteeAccount *wallet.Account

	Registry   CommonDeployPrm
	Ledger     CommonDeployPrm
	TokenStore CommonDeployPrm
	Token      CommonDeployPrm
}

// Addresses lists the on-chain addresses of the deployed contract set.
type Addresses struct {
	Registry   util.Uint160
	Ledger     util.Uint160
	TokenStore util.Uint160
	Token      util.Uint160
}

// Deploy puts the Meridian contract set represented by the given Prm onto the
// chain and binds the logical contract names in the registry. Contracts and
// name bindings that are already in place are skipped, which makes repeated
// runs cheap and safe.
//
// Deploy aborts on context cancellation or a fatal error. Deployment progress
// is logged in detail.
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	var res Addresses

	logger := prm.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.CommitteeAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from the committee account: %w", err)
	}

	mgmt := management.New(act)

	for _, c := range []struct {
		name string
		prm  CommonDeployPrm
		dst  *util.Uint160
	}{
		{name: "registry", prm: prm.Registry, dst: &res.Registry},
		{name: registry.NameLedger, prm: prm.Ledger, dst: &res.Ledger},
		{name: registry.NameTokenStore, prm: prm.TokenStore, dst: &res.TokenStore},
		{name: registry.NameToken, prm: prm.Token, dst: &res.Token},
	} {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("wait for '%s' contract deployment: %w", c.name, err)
		}

		*c.dst, err = syncContract(logger, prm.Blockchain, act, mgmt, c.name, c.prm)
		if err != nil {
			return res, fmt.Errorf("deploy '%s' contract: %w", c.name, err)
		}
	}

	err = syncRegistryRecords(logger, act, res)
	if err != nil {
		return res, fmt.Errorf("bind contract names in the registry: %w", err)
	}

	logger.Info("Meridian contract set is completely deployed")

	return res, nil
}

// syncContract deploys the contract unless it is already on the chain and
// returns its address. The address is a function of the deploying account and
// the contract itself, so presence is checked by the precalculated value.
func syncContract(logger *zap.Logger, b Blockchain, act *actor.Actor, mgmt *management.Contract, name string, prm CommonDeployPrm) (util.Uint160, error) {
	addr := state.CreateContractHash(act.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	onChainState, err := b.GetContractStateByHash(addr)
	if err != nil && !isErrContractNotFound(err) {
		return addr, fmt.Errorf("read on-chain state of the contract by address '%s': %w", addr.StringLE(), err)
	}

	if onChainState != nil {
		logger.Info("contract is already on the chain", zap.String("name", name), zap.Stringer("address", addr))
		return addr, nil
	}

	logger.Info("deploying contract...", zap.String("name", name), zap.Stringer("address", addr))

	txHash, vub, err := mgmt.Deploy(&prm.NEF, &prm.Manifest, nil)
	aer, err := act.Wait(txHash, vub, err)
	if err != nil {
		return addr, fmt.Errorf("deploy transaction: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return addr, fmt.Errorf("deploy transaction faulted: %s", aer.FaultException)
	}

	logger.Info("contract successfully deployed", zap.String("name", name), zap.Stringer("address", addr))

	return addr, nil
}

// syncRegistryRecords binds the logical names of the ledger, token store and
// token contracts in the registry. Names already pointing at the right
// addresses are skipped, a name pointing elsewhere is an error: repointing is
// an explicit administrative action, not a deployment one.
func syncRegistryRecords(logger *zap.Logger, act *actor.Actor, addrs Addresses) error {
	reg := registry.New(act, addrs.Registry)

	for _, rec := range []struct {
		name string
		addr util.Uint160
	}{
		{name: registry.NameLedger, addr: addrs.Ledger},
		{name: registry.NameTokenStore, addr: addrs.TokenStore},
		{name: registry.NameToken, addr: addrs.Token},
	} {
		cur, err := reg.Resolve(rec.name)
		if err == nil {
			if cur.Equals(rec.addr) {
				logger.Info("contract name is already bound", zap.String("name", rec.name))
				continue
			}
			return fmt.Errorf("name '%s' is bound to another contract '%s'", rec.name, cur.StringLE())
		}

		logger.Info("binding contract name...", zap.String("name", rec.name), zap.Stringer("address", rec.addr))

		txHash, vub, err := reg.Register(rec.name, rec.addr)
		aer, err := act.Wait(txHash, vub, err)
		if err != nil {
			return fmt.Errorf("register transaction for name '%s': %w", rec.name, err)
		}
		if aer.VMState != vmstate.Halt {
			return fmt.Errorf("register transaction for name '%s' faulted: %s", rec.name, aer.FaultException)
		}
	}

	return nil
}

// isErrContractNotFound checks if the error returned by
// [Blockchain.GetContractStateByHash] means that the contract is simply
// missing from the chain.
func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
