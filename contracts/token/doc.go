/*
Package token implements Token contract, the logic contract of the Meridian
regulated token.

The contract owns no balances and almost no durable token state: balances
live in the ledger contract and configuration, allowances and vesting
schedules live in the token store contract. Both collaborators are located
through the registry by logical name on every call, so repointing a name
swaps the underlying storage on the next call, and replacing this contract
(registering a successor under the "token" name and calling UpgradeTo here)
keeps the whole account history.

Every mutating entry point evaluates its guards in a fixed order: role
first, then the contract-wide freeze, then the superseded flag. A superseded
contract permanently rejects every state-changing operation, Configure
included.

The token sale is the OnNEP17Payment callback: an approved buyer sends GAS
to the contract and receives payment/buyPrice tokens, with the sub-unit
remainder of the payment retained by the contract. Purchases respect the
circulation cap, the available pool, the contribution minimum and the
per-account balance limit (a custom per-buyer limit overrides the default).

Vesting grants promise pool tokens to a beneficiary on a linear schedule.
Releases are open-access: anyone may trigger one, the tokens always go to
the beneficiary. Revocation releases what is already vested and freezes the
schedule, returning the unvested remainder to the sellable pool.

# Contract notifications

See config.yml for the full notification list; notifications are the audit
trail of the token, there is no other logging.
*/
package token
