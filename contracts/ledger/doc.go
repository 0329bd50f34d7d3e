/*
Package ledger implements Ledger contract.

Ledger contract is the single source of truth for the total token count and
per-account Meridian balances. It deliberately contains no transfer policy:
all whitelist, freeze and cap checks live in the token (logic) contract, and
the ledger accepts mutations only from whatever contract is currently
registered under the "token" name. This split lets the logic contract be
replaced without losing account history.

The token contract's own account doubles as the unissued pool: minting
credits it, purchases and vesting releases debit it. Total tokens in
circulation is therefore total minted minus the pool balance.

# Contract notifications

Mint notification. Produced when the total token count grows.

	Mint:
	  - name: amount
	    type: Integer
	  - name: newTotal
	    type: Integer

Transfer notification. Produced on every balance move.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package ledger

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'totalTokens' -> int
   total amount of tokens ever minted
 - 'a' + interop.Hash160 -> int
   balance sheet of all Meridian accounts; zero balances are deleted

# Accounting
Contract stores information about all Meridian accounts, the invariant being
that totalTokens always equals the sum of all stored balances.
*/
