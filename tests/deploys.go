package tests

import (
	"path"
	"testing"

	"github.com/meridian-token/meridian-contract/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	registryPath   = "../contracts/registry"
	ledgerPath     = "../contracts/ledger"
	tokenStorePath = "../contracts/tokenstore"
	tokenPath      = "../contracts/token"
)

// Standard sale parameters used by most tests.
const (
	testBuyPrice       = 10
	testCirculationCap = 100_000
	testBalanceLimit   = 1_000
	testMinted         = 1_000_000
)

func deployDefaultContract(t *testing.T, e *neotest.Executor, ctrPath string, data any) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
	e.DeployContract(t, c, data)
	return c.Hash
}

// deploySpareStore deploys a second instance of the token store contract from
// a fresh account. The contract hash depends on the deploying sender, which
// makes the instance distinct from the committee-deployed one.
func deploySpareStore(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenStorePath, path.Join(tokenStorePath, "config.yml"))
	deployer := e.NewAccount(t, 1000_0000_0000)
	spare := &neotest.Contract{
		Hash:     state.CreateContractHash(deployer.ScriptHash(), c.NEF.Checksum, c.Manifest.Name),
		NEF:      c.NEF,
		Manifest: c.Manifest,
	}
	e.DeployContractBy(t, deployer, spare, nil)

	return spare.Hash
}

func registryInvoker(t *testing.T, e *neotest.Executor) *neotest.ContractInvoker {
	registryHash, err := e.Chain.GetContractScriptHash(registry.ID)
	require.NoError(t, err)

	return e.CommitteeInvoker(registryHash)
}

// RegisterContractName binds a logical contract name in the registry on
// behalf of the committee.
func RegisterContractName(t *testing.T, e *neotest.Executor, name string, hash util.Uint160) {
	registryInvoker(t, e).Invoke(t, stackitem.Null{}, "register", name, hash)
}

// tokenSystem is a fully deployed contract set: the registry (contract ID 1),
// the ledger, the token store and the token logic contract registered under
// their standard names.
type tokenSystem struct {
	token      *neotest.ContractInvoker // committee-signed token contract invoker
	tokenHash  util.Uint160
	ledgerHash util.Uint160
	storeHash  util.Uint160
	gasHash    util.Uint160
	foundation neotest.Signer
}

func newTokenSystem(t *testing.T) *tokenSystem {
	e := newExecutor(t)

	deployDefaultContract(t, e, registryPath, nil)
	ledgerHash := deployDefaultContract(t, e, ledgerPath, nil)
	storeHash := deployDefaultContract(t, e, tokenStorePath, nil)
	tokenHash := deployDefaultContract(t, e, tokenPath, nil)

	RegisterContractName(t, e, registry.NameLedger, ledgerHash)
	RegisterContractName(t, e, registry.NameTokenStore, storeHash)
	RegisterContractName(t, e, registry.NameToken, tokenHash)

	gasHash, err := e.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	return &tokenSystem{
		token:      e.CommitteeInvoker(tokenHash),
		tokenHash:  tokenHash,
		ledgerHash: ledgerHash,
		storeHash:  storeHash,
		gasHash:    gasHash,
		foundation: e.NewAccount(t),
	}
}

// newConfiguredSystem deploys the contract set, mints the initial supply and
// applies the standard sale configuration.
func newConfiguredSystem(t *testing.T) *tokenSystem {
	s := newTokenSystem(t)

	s.token.Invoke(t, stackitem.Null{}, "mintTokens", testMinted)
	s.token.Invoke(t, stackitem.Null{}, "configure",
		"Meridian", "MRD", testBuyPrice, testCirculationCap, testBalanceLimit,
		s.foundation.ScriptHash())

	return s
}

func (s *tokenSystem) ledgerInvoker(t *testing.T) *neotest.ContractInvoker {
	return s.token.Executor.CommitteeInvoker(s.ledgerHash)
}

func (s *tokenSystem) storeInvoker(t *testing.T) *neotest.ContractInvoker {
	return s.token.Executor.CommitteeInvoker(s.storeHash)
}

// pay sends GAS from the signer to the token contract, triggering the token
// sale path (nil data).
func (s *tokenSystem) pay(t *testing.T, from neotest.Signer, amount int64) {
	gasInv := s.token.Executor.NewInvoker(s.gasHash, from)
	gasInv.Invoke(t, true, "transfer", from.ScriptHash(), s.tokenHash, amount, nil)
}

// payFail sends GAS to the token contract expecting the purchase to be
// aborted (and the GAS returned to the sender).
func (s *tokenSystem) payFail(t *testing.T, from neotest.Signer, amount int64) {
	gasInv := s.token.Executor.NewInvoker(s.gasHash, from)
	gasInv.InvokeFail(t, "ABORT", "transfer", from.ScriptHash(), s.tokenHash, amount, nil)
}

// payWithData sends GAS to the token contract with an arbitrary data payload.
func (s *tokenSystem) payWithData(t *testing.T, from neotest.Signer, amount int64, data any) {
	gasInv := s.token.Executor.NewInvoker(s.gasHash, from)
	gasInv.Invoke(t, true, "transfer", from.ScriptHash(), s.tokenHash, amount, data)
}

// addBlockAt appends an empty block with the given timestamp (in
// milliseconds), moving the chain clock forward.
func (s *tokenSystem) addBlockAt(t *testing.T, timestamp uint64) {
	b := s.token.NewUnsignedBlock(t)
	b.Timestamp = timestamp
	require.NoError(t, s.token.Chain.AddBlock(s.token.SignBlock(b)))
}

// nowSec returns the chain time in seconds as the contracts see it during
// the next (test) invocation.
func (s *tokenSystem) nowSec(t *testing.T) int64 {
	return int64(s.token.TopBlock(t).Timestamp+1) / 1000
}

func (s *tokenSystem) balanceOf(t *testing.T, acc util.Uint160) int64 {
	st, err := s.token.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return st.Pop().BigInt().Int64()
}

func (s *tokenSystem) intCall(t *testing.T, method string, args ...any) int64 {
	st, err := s.token.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return st.Pop().BigInt().Int64()
}
