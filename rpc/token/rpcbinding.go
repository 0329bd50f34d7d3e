// Package token contains RPC wrappers for Meridian Token contract.
package token

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// ConfigChangedEvent represents "ConfigChanged" event emitted by the contract.
type ConfigChangedEvent struct {
	BuyPrice       *big.Int
	CirculationCap *big.Int
	BalanceLimit   *big.Int
}

// StorageUpdatedEvent represents "StorageUpdated" event emitted by the contract.
type StorageUpdatedEvent struct {
	StorageAddr util.Uint160
	LedgerAddr  util.Uint160
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// ApprovalEvent represents "Approval" event emitted by the contract.
type ApprovalEvent struct {
	Owner   util.Uint160
	Spender util.Uint160
	Amount  *big.Int
}

// PurchaseEvent represents "Purchase" event emitted by the contract.
type PurchaseEvent struct {
	Buyer  util.Uint160
	Paid   *big.Int
	Tokens *big.Int
}

// FoundationDepositEvent represents "FoundationDeposit" event emitted by the contract.
type FoundationDepositEvent struct {
	From   util.Uint160
	Amount *big.Int
}

// FoundationWithdrawEvent represents "FoundationWithdraw" event emitted by the contract.
type FoundationWithdrawEvent struct {
	Foundation util.Uint160
	Amount     *big.Int
}

// MintEvent represents "Mint" event emitted by the contract.
type MintEvent struct {
	Amount         *big.Int
	NewTotal       *big.Int
	CirculationCap *big.Int
}

// WhitelistChangedEvent represents "WhitelistChanged" event emitted by the contract.
type WhitelistChangedEvent struct {
	Account        util.Uint160
	EffectiveLimit *big.Int
}

// VestingGrantedEvent represents "VestingGranted" event emitted by the contract.
type VestingGrantedEvent struct {
	Beneficiary util.Uint160
	StartDate   *big.Int
	CliffSec    *big.Int
	DurationSec *big.Int
	FullAmount  *big.Int
	Revocable   bool
}

// VestingReleasedEvent represents "VestingReleased" event emitted by the contract.
type VestingReleasedEvent struct {
	Beneficiary util.Uint160
	Amount      *big.Int
}

// VestingRevokedEvent represents "VestingRevoked" event emitted by the contract.
type VestingRevokedEvent struct {
	Beneficiary util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", account))
}

// BuyerAtIndex invokes `buyerAtIndex` method of contract.
func (c *ContractReader) BuyerAtIndex(index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "buyerAtIndex", index))
}

// CustomBuyerAtIndex invokes `customBuyerAtIndex` method of contract.
func (c *ContractReader) CustomBuyerAtIndex(index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "customBuyerAtIndex", index))
}

// CustomLimit invokes `customLimit` method of contract.
func (c *ContractReader) CustomLimit(buyer util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "customLimit", buyer))
}

// Decimals invokes `decimals` method of contract.
func (c *ContractReader) Decimals() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "decimals"))
}

// IsAccountFrozen invokes `isAccountFrozen` method of contract.
func (c *ContractReader) IsAccountFrozen(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAccountFrozen", account))
}

// IsBuyer invokes `isBuyer` method of contract.
func (c *ContractReader) IsBuyer(buyer util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isBuyer", buyer))
}

// IsFrozen invokes `isFrozen` method of contract.
func (c *ContractReader) IsFrozen() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isFrozen"))
}

// IsWhitelistedTransferer invokes `isWhitelistedTransferer` method of contract.
func (c *ContractReader) IsWhitelistedTransferer(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isWhitelistedTransferer", account))
}

// Name invokes `name` method of contract.
func (c *ContractReader) Name() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "name"))
}

// ReleasableAmount invokes `releasableAmount` method of contract.
func (c *ContractReader) ReleasableAmount(beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "releasableAmount", beneficiary))
}

// SupersededBy invokes `supersededBy` method of contract.
func (c *ContractReader) SupersededBy() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "supersededBy"))
}

// Symbol invokes `symbol` method of contract.
func (c *ContractReader) Symbol() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "symbol"))
}

// TokensAvailable invokes `tokensAvailable` method of contract.
func (c *ContractReader) TokensAvailable() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "tokensAvailable"))
}

// TotalBuyers invokes `totalBuyers` method of contract.
func (c *ContractReader) TotalBuyers() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalBuyers"))
}

// TotalCustomBuyers invokes `totalCustomBuyers` method of contract.
func (c *ContractReader) TotalCustomBuyers() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalCustomBuyers"))
}

// TotalInCirculation invokes `totalInCirculation` method of contract.
func (c *ContractReader) TotalInCirculation() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalInCirculation"))
}

// TotalSupply invokes `totalSupply` method of contract.
func (c *ContractReader) TotalSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalSupply"))
}

// TotalTransferers invokes `totalTransferers` method of contract.
func (c *ContractReader) TotalTransferers() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalTransferers"))
}

// TotalUnvestedAndUnreleased invokes `totalUnvestedAndUnreleased` method of contract.
func (c *ContractReader) TotalUnvestedAndUnreleased() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalUnvestedAndUnreleased"))
}

// TransfererAtIndex invokes `transfererAtIndex` method of contract.
func (c *ContractReader) TransfererAtIndex(index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "transfererAtIndex", index))
}

// TransfersAllowed invokes `transfersAllowed` method of contract.
func (c *ContractReader) TransfersAllowed() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "transfersAllowed"))
}

// VestedAmount invokes `vestedAmount` method of contract.
func (c *ContractReader) VestedAmount(beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "vestedAmount", beneficiary))
}

// VestingBeneficiaryAtIndex invokes `vestingBeneficiaryAtIndex` method of contract.
func (c *ContractReader) VestingBeneficiaryAtIndex(index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "vestingBeneficiaryAtIndex", index))
}

// VestingCount invokes `vestingCount` method of contract.
func (c *ContractReader) VestingCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "vestingCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddBuyer creates a transaction invoking `addBuyer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddBuyer(buyer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addBuyer", buyer)
}

// AddBuyerTransaction creates a transaction invoking `addBuyer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddBuyerTransaction(buyer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addBuyer", buyer)
}

// AddBuyerUnsigned creates a transaction invoking `addBuyer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddBuyerUnsigned(buyer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addBuyer", nil, buyer)
}

// AddSuperAdmin creates a transaction invoking `addSuperAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddSuperAdmin(admin util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addSuperAdmin", admin)
}

// AddSuperAdminTransaction creates a transaction invoking `addSuperAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddSuperAdminTransaction(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addSuperAdmin", admin)
}

// AddSuperAdminUnsigned creates a transaction invoking `addSuperAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddSuperAdminUnsigned(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addSuperAdmin", nil, admin)
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(owner util.Uint160, spender util.Uint160, value *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", owner, spender, value)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(owner util.Uint160, spender util.Uint160, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", owner, spender, value)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(owner util.Uint160, spender util.Uint160, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, owner, spender, value)
}

// Configure creates a transaction invoking `configure` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Configure(name string, symbol string, buyPrice *big.Int, circulationCap *big.Int, balanceLimit *big.Int, foundation util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "configure", name, symbol, buyPrice, circulationCap, balanceLimit, foundation)
}

// ConfigureTransaction creates a transaction invoking `configure` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConfigureTransaction(name string, symbol string, buyPrice *big.Int, circulationCap *big.Int, balanceLimit *big.Int, foundation util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "configure", name, symbol, buyPrice, circulationCap, balanceLimit, foundation)
}

// ConfigureUnsigned creates a transaction invoking `configure` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConfigureUnsigned(name string, symbol string, buyPrice *big.Int, circulationCap *big.Int, balanceLimit *big.Int, foundation util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "configure", nil, name, symbol, buyPrice, circulationCap, balanceLimit, foundation)
}

// ConfigureFromStorage creates a transaction invoking `configureFromStorage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ConfigureFromStorage() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "configureFromStorage")
}

// ConfigureFromStorageTransaction creates a transaction invoking `configureFromStorage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConfigureFromStorageTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "configureFromStorage")
}

// ConfigureFromStorageUnsigned creates a transaction invoking `configureFromStorage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConfigureFromStorageUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "configureFromStorage", nil)
}

// DecreaseApproval creates a transaction invoking `decreaseApproval` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DecreaseApproval(owner util.Uint160, spender util.Uint160, delta *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "decreaseApproval", owner, spender, delta)
}

// DecreaseApprovalTransaction creates a transaction invoking `decreaseApproval` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DecreaseApprovalTransaction(owner util.Uint160, spender util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "decreaseApproval", owner, spender, delta)
}

// DecreaseApprovalUnsigned creates a transaction invoking `decreaseApproval` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DecreaseApprovalUnsigned(owner util.Uint160, spender util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "decreaseApproval", nil, owner, spender, delta)
}

// FoundationWithdraw creates a transaction invoking `foundationWithdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FoundationWithdraw(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "foundationWithdraw", amount)
}

// FoundationWithdrawTransaction creates a transaction invoking `foundationWithdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FoundationWithdrawTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "foundationWithdraw", amount)
}

// FoundationWithdrawUnsigned creates a transaction invoking `foundationWithdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FoundationWithdrawUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "foundationWithdraw", nil, amount)
}

// FreezeAccount creates a transaction invoking `freezeAccount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FreezeAccount(account util.Uint160, frozen bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "freezeAccount", account, frozen)
}

// FreezeAccountTransaction creates a transaction invoking `freezeAccount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FreezeAccountTransaction(account util.Uint160, frozen bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "freezeAccount", account, frozen)
}

// FreezeAccountUnsigned creates a transaction invoking `freezeAccount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FreezeAccountUnsigned(account util.Uint160, frozen bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "freezeAccount", nil, account, frozen)
}

// FreezeToken creates a transaction invoking `freezeToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FreezeToken(frozen bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "freezeToken", frozen)
}

// FreezeTokenTransaction creates a transaction invoking `freezeToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FreezeTokenTransaction(frozen bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "freezeToken", frozen)
}

// FreezeTokenUnsigned creates a transaction invoking `freezeToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FreezeTokenUnsigned(frozen bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "freezeToken", nil, frozen)
}

// GrantVestedTokens creates a transaction invoking `grantVestedTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantVestedTokens(beneficiary util.Uint160, fullyVestedAmount *big.Int, startDate *big.Int, cliffSec *big.Int, durationSec *big.Int, isRevocable bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantVestedTokens", beneficiary, fullyVestedAmount, startDate, cliffSec, durationSec, isRevocable)
}

// GrantVestedTokensTransaction creates a transaction invoking `grantVestedTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantVestedTokensTransaction(beneficiary util.Uint160, fullyVestedAmount *big.Int, startDate *big.Int, cliffSec *big.Int, durationSec *big.Int, isRevocable bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantVestedTokens", beneficiary, fullyVestedAmount, startDate, cliffSec, durationSec, isRevocable)
}

// GrantVestedTokensUnsigned creates a transaction invoking `grantVestedTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantVestedTokensUnsigned(beneficiary util.Uint160, fullyVestedAmount *big.Int, startDate *big.Int, cliffSec *big.Int, durationSec *big.Int, isRevocable bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantVestedTokens", nil, beneficiary, fullyVestedAmount, startDate, cliffSec, durationSec, isRevocable)
}

// IncreaseApproval creates a transaction invoking `increaseApproval` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) IncreaseApproval(owner util.Uint160, spender util.Uint160, delta *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "increaseApproval", owner, spender, delta)
}

// IncreaseApprovalTransaction creates a transaction invoking `increaseApproval` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IncreaseApprovalTransaction(owner util.Uint160, spender util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "increaseApproval", owner, spender, delta)
}

// IncreaseApprovalUnsigned creates a transaction invoking `increaseApproval` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IncreaseApprovalUnsigned(owner util.Uint160, spender util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "increaseApproval", nil, owner, spender, delta)
}

// MintTokens creates a transaction invoking `mintTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MintTokens(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mintTokens", amount)
}

// MintTokensTransaction creates a transaction invoking `mintTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTokensTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mintTokens", amount)
}

// MintTokensUnsigned creates a transaction invoking `mintTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintTokensUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mintTokens", nil, amount)
}

// ReleaseVestedTokens creates a transaction invoking `releaseVestedTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleaseVestedTokens(beneficiary util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releaseVestedTokens", beneficiary)
}

// ReleaseVestedTokensTransaction creates a transaction invoking `releaseVestedTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseVestedTokensTransaction(beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releaseVestedTokens", beneficiary)
}

// ReleaseVestedTokensUnsigned creates a transaction invoking `releaseVestedTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseVestedTokensUnsigned(beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releaseVestedTokens", nil, beneficiary)
}

// RemoveBuyer creates a transaction invoking `removeBuyer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveBuyer(buyer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeBuyer", buyer)
}

// RemoveBuyerTransaction creates a transaction invoking `removeBuyer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveBuyerTransaction(buyer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeBuyer", buyer)
}

// RemoveBuyerUnsigned creates a transaction invoking `removeBuyer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveBuyerUnsigned(buyer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeBuyer", nil, buyer)
}

// RemoveSuperAdmin creates a transaction invoking `removeSuperAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveSuperAdmin(admin util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeSuperAdmin", admin)
}

// RemoveSuperAdminTransaction creates a transaction invoking `removeSuperAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveSuperAdminTransaction(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeSuperAdmin", admin)
}

// RemoveSuperAdminUnsigned creates a transaction invoking `removeSuperAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveSuperAdminUnsigned(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeSuperAdmin", nil, admin)
}

// RevokeVesting creates a transaction invoking `revokeVesting` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeVesting(beneficiary util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeVesting", beneficiary)
}

// RevokeVestingTransaction creates a transaction invoking `revokeVesting` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeVestingTransaction(beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeVesting", beneficiary)
}

// RevokeVestingUnsigned creates a transaction invoking `revokeVesting` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeVestingUnsigned(beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeVesting", nil, beneficiary)
}

// SetAllowTransfers creates a transaction invoking `setAllowTransfers` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAllowTransfers(allow bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAllowTransfers", allow)
}

// SetAllowTransfersTransaction creates a transaction invoking `setAllowTransfers` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAllowTransfersTransaction(allow bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAllowTransfers", allow)
}

// SetAllowTransfersUnsigned creates a transaction invoking `setAllowTransfers` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAllowTransfersUnsigned(allow bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAllowTransfers", nil, allow)
}

// SetContributionMinimum creates a transaction invoking `setContributionMinimum` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetContributionMinimum(value *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setContributionMinimum", value)
}

// SetContributionMinimumTransaction creates a transaction invoking `setContributionMinimum` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetContributionMinimumTransaction(value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setContributionMinimum", value)
}

// SetContributionMinimumUnsigned creates a transaction invoking `setContributionMinimum` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetContributionMinimumUnsigned(value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setContributionMinimum", nil, value)
}

// SetCustomBuyer creates a transaction invoking `setCustomBuyer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCustomBuyer(buyer util.Uint160, limit *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCustomBuyer", buyer, limit)
}

// SetCustomBuyerTransaction creates a transaction invoking `setCustomBuyer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCustomBuyerTransaction(buyer util.Uint160, limit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCustomBuyer", buyer, limit)
}

// SetCustomBuyerUnsigned creates a transaction invoking `setCustomBuyer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCustomBuyerUnsigned(buyer util.Uint160, limit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCustomBuyer", nil, buyer, limit)
}

// SetWhitelistedTransferer creates a transaction invoking `setWhitelistedTransferer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetWhitelistedTransferer(account util.Uint160, allowed bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setWhitelistedTransferer", account, allowed)
}

// SetWhitelistedTransfererTransaction creates a transaction invoking `setWhitelistedTransferer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetWhitelistedTransfererTransaction(account util.Uint160, allowed bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setWhitelistedTransferer", account, allowed)
}

// SetWhitelistedTransfererUnsigned creates a transaction invoking `setWhitelistedTransferer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetWhitelistedTransfererUnsigned(account util.Uint160, allowed bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setWhitelistedTransferer", nil, account, allowed)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, amount)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, amount)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, amount)
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, from, to, amount)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, from, to, amount)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, from, to, amount)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateStorage creates a transaction invoking `updateStorage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateStorage(newStorageName string, newLedgerName string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateStorage", newStorageName, newLedgerName)
}

// UpdateStorageTransaction creates a transaction invoking `updateStorage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateStorageTransaction(newStorageName string, newLedgerName string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateStorage", newStorageName, newLedgerName)
}

// UpdateStorageUnsigned creates a transaction invoking `updateStorage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateStorageUnsigned(newStorageName string, newLedgerName string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateStorage", nil, newStorageName, newLedgerName)
}

// UpgradeTo creates a transaction invoking `upgradeTo` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpgradeTo(successor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "upgradeTo", successor)
}

// UpgradeToTransaction creates a transaction invoking `upgradeTo` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpgradeToTransaction(successor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "upgradeTo", successor)
}

// UpgradeToUnsigned creates a transaction invoking `upgradeTo` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpgradeToUnsigned(successor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "upgradeTo", nil, successor)
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

// ConfigChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ConfigChanged" name from the provided [result.ApplicationLog].
func ConfigChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ConfigChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ConfigChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ConfigChanged" {
				continue
			}
			event := new(ConfigChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ConfigChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ConfigChangedEvent or
// returns an error if it's not possible to do to so.
func (e *ConfigChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.BuyPrice, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BuyPrice: %w", err)
	}

	index++
	e.CirculationCap, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CirculationCap: %w", err)
	}

	index++
	e.BalanceLimit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BalanceLimit: %w", err)
	}

	return nil
}

// StorageUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "StorageUpdated" name from the provided [result.ApplicationLog].
func StorageUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StorageUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StorageUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StorageUpdated" {
				continue
			}
			event := new(StorageUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StorageUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StorageUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *StorageUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.StorageAddr, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field StorageAddr: %w", err)
	}

	index++
	e.LedgerAddr, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field LedgerAddr: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.From, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ApprovalEventsFromApplicationLog retrieves a set of all emitted events
// with "Approval" name from the provided [result.ApplicationLog].
func ApprovalEventsFromApplicationLog(log *result.ApplicationLog) ([]*ApprovalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ApprovalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Approval" {
				continue
			}
			event := new(ApprovalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ApprovalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ApprovalEvent or
// returns an error if it's not possible to do to so.
func (e *ApprovalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Spender, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Spender: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// PurchaseEventsFromApplicationLog retrieves a set of all emitted events
// with "Purchase" name from the provided [result.ApplicationLog].
func PurchaseEventsFromApplicationLog(log *result.ApplicationLog) ([]*PurchaseEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PurchaseEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Purchase" {
				continue
			}
			event := new(PurchaseEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PurchaseEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PurchaseEvent or
// returns an error if it's not possible to do to so.
func (e *PurchaseEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Buyer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	index++
	e.Paid, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Paid: %w", err)
	}

	index++
	e.Tokens, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Tokens: %w", err)
	}

	return nil
}

// FoundationDepositEventsFromApplicationLog retrieves a set of all emitted events
// with "FoundationDeposit" name from the provided [result.ApplicationLog].
func FoundationDepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*FoundationDepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FoundationDepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FoundationDeposit" {
				continue
			}
			event := new(FoundationDepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FoundationDepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FoundationDepositEvent or
// returns an error if it's not possible to do to so.
func (e *FoundationDepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.From, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// FoundationWithdrawEventsFromApplicationLog retrieves a set of all emitted events
// with "FoundationWithdraw" name from the provided [result.ApplicationLog].
func FoundationWithdrawEventsFromApplicationLog(log *result.ApplicationLog) ([]*FoundationWithdrawEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FoundationWithdrawEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FoundationWithdraw" {
				continue
			}
			event := new(FoundationWithdrawEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FoundationWithdrawEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FoundationWithdrawEvent or
// returns an error if it's not possible to do to so.
func (e *FoundationWithdrawEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Foundation, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Foundation: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// MintEventsFromApplicationLog retrieves a set of all emitted events
// with "Mint" name from the provided [result.ApplicationLog].
func MintEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MintEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Mint" {
				continue
			}
			event := new(MintEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MintEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MintEvent or
// returns an error if it's not possible to do to so.
func (e *MintEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.NewTotal, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewTotal: %w", err)
	}

	index++
	e.CirculationCap, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CirculationCap: %w", err)
	}

	return nil
}

// WhitelistChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "WhitelistChanged" name from the provided [result.ApplicationLog].
func WhitelistChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WhitelistChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WhitelistChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WhitelistChanged" {
				continue
			}
			event := new(WhitelistChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WhitelistChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WhitelistChangedEvent or
// returns an error if it's not possible to do to so.
func (e *WhitelistChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Account, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.EffectiveLimit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EffectiveLimit: %w", err)
	}

	return nil
}

// VestingGrantedEventsFromApplicationLog retrieves a set of all emitted events
// with "VestingGranted" name from the provided [result.ApplicationLog].
func VestingGrantedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VestingGrantedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VestingGrantedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VestingGranted" {
				continue
			}
			event := new(VestingGrantedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VestingGrantedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VestingGrantedEvent or
// returns an error if it's not possible to do to so.
func (e *VestingGrantedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Beneficiary, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	index++
	e.StartDate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StartDate: %w", err)
	}

	index++
	e.CliffSec, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CliffSec: %w", err)
	}

	index++
	e.DurationSec, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DurationSec: %w", err)
	}

	index++
	e.FullAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FullAmount: %w", err)
	}

	index++
	e.Revocable, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Revocable: %w", err)
	}

	return nil
}

// VestingReleasedEventsFromApplicationLog retrieves a set of all emitted events
// with "VestingReleased" name from the provided [result.ApplicationLog].
func VestingReleasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VestingReleasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VestingReleasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VestingReleased" {
				continue
			}
			event := new(VestingReleasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VestingReleasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VestingReleasedEvent or
// returns an error if it's not possible to do to so.
func (e *VestingReleasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Beneficiary, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// VestingRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "VestingRevoked" name from the provided [result.ApplicationLog].
func VestingRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VestingRevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VestingRevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VestingRevoked" {
				continue
			}
			event := new(VestingRevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VestingRevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VestingRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *VestingRevokedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Beneficiary, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	return nil
}
