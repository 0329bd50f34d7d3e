package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrCommitteeWitnessFailed appears when the method must be
	// called by the committee but was not.
	ErrCommitteeWitnessFailed = "committee witness check failed"
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CommitteeAddress returns multi signature address of the committee.
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	threshold := len(committee)/2 + 1

	keys := []interop.PublicKey{}
	for _, key := range committee {
		keys = append(keys, key)
	}

	return contract.CreateMultisigAccount(threshold, keys)
}

// HasUpdateAccess returns true if contract can be updated.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}

// CheckCommitteeWitness checks that the transaction is witnessed by the
// committee. It panics with ErrCommitteeWitnessFailed message on fail.
func CheckCommitteeWitness() {
	checkWitnessWithPanic(CommitteeAddress(), ErrCommitteeWitnessFailed)
}

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
