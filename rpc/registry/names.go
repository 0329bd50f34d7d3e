package registry

// A set of standard contract names registered in the Meridian name registry.
const (
	NameLedger     = "ledger"
	NameToken      = "token"
	NameTokenStore = "tokenstore"
)
