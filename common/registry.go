package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// TokenName is the logical name the token (logic) contract is registered
// under. Ledger and token store contracts accept mutations only from the
// contract currently resolved by this name.
const TokenName = "token"

// ResolveContractHash resolves a contract hash by its logical name through
// the registry contract. Relies on the registry being the first contract
// deployed to the chain (and therefore having `1` contract ID). Resolution
// is done on every call on purpose: repointing a name in the registry takes
// effect on the next call to whoever resolves it.
func ResolveContractHash(contractName string) interop.Hash160 {
	registry := management.GetContractByID(1)
	if registry == nil {
		panic("missing registry contract")
	}

	h := contract.Call(registry.Hash, "resolve", contract.ReadOnly, contractName).(interop.Hash160)
	if len(h) != interop.Hash160Len {
		panic("registry does not know the " + contractName + " contract")
	}

	return h
}

// CheckTokenContract panics unless the calling script hash is the contract
// currently registered under [TokenName].
func CheckTokenContract() {
	tokenHash := ResolveContractHash(TokenName)
	if !runtime.GetCallingScriptHash().Equals(tokenHash) {
		panic("caller is not the token contract")
	}
}
