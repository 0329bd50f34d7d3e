package ledger

import (
	"github.com/meridian-token/meridian-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	accPrefix = 'a'

	totalTokensKey = "totalTokens"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("ledger contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("ledger contract updated")
}

// TotalTokens returns the total amount of tokens ever minted, including the
// unissued pool held on the token contract's account.
func TotalTokens() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, totalTokensKey)
}

// BalanceOf returns the ledger balance of the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return balanceOf(ctx, account)
}

// TotalInCirculation returns the amount of tokens held outside of the
// unissued pool, i.e. totalTokens minus the token contract's own balance.
func TotalInCirculation() int {
	ctx := storage.GetReadOnlyContext()
	pool := common.ResolveContractHash(common.TokenName)

	return common.GetInt(ctx, totalTokensKey) - balanceOf(ctx, pool)
}

// MintTokens increases the total token count and credits the minted amount
// to the unissued pool. It can be invoked only by the registered token
// contract.
//
// It produces Mint and Transfer notifications.
func MintTokens(amount int) {
	common.CheckTokenContract()

	if amount <= 0 {
		panic("amount must be positive")
	}

	ctx := storage.GetContext()
	pool := runtime.GetCallingScriptHash()

	addToBalance(ctx, pool, amount)

	total := common.GetInt(ctx, totalTokensKey) + amount
	storage.Put(ctx, totalTokensKey, total)

	runtime.Notify("Mint", amount, total)
	runtime.Notify("Transfer", interop.Hash160(nil), pool, amount)
}

// Transfer moves tokens between two ledger accounts. It can be invoked only
// by the registered token contract, which is responsible for all transfer
// eligibility checks.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int) {
	common.CheckTokenContract()
	move(storage.GetContext(), from, to, amount)
}

// DebitAccount moves tokens from the unissued pool to the given account. It
// can be invoked only by the registered token contract.
//
// It produces Transfer notification.
func DebitAccount(to interop.Hash160, amount int) {
	common.CheckTokenContract()

	ctx := storage.GetContext()
	move(ctx, runtime.GetCallingScriptHash(), to, amount)
}

// CreditAccount moves tokens from the given account back to the unissued
// pool. It can be invoked only by the registered token contract.
//
// It produces Transfer notification.
func CreditAccount(from interop.Hash160, amount int) {
	common.CheckTokenContract()

	ctx := storage.GetContext()
	move(ctx, from, runtime.GetCallingScriptHash(), amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func move(ctx storage.Context, from, to interop.Hash160, amount int) {
	if amount <= 0 {
		panic("amount must be positive")
	}
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("bad script hashes")
	}

	fromBalance := balanceOf(ctx, from)
	if fromBalance < amount {
		panic("insufficient balance")
	}

	setBalance(ctx, from, fromBalance-amount)
	addToBalance(ctx, to, amount)

	runtime.Notify("Transfer", from, to, amount)
}

func balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetInt(ctx, append([]byte{accPrefix}, holder...))
}

func addToBalance(ctx storage.Context, holder interop.Hash160, amount int) {
	setBalance(ctx, holder, balanceOf(ctx, holder)+amount)
}

func setBalance(ctx storage.Context, holder interop.Hash160, amount int) {
	key := append([]byte{accPrefix}, holder...)
	if amount == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, amount)
	}
}
