package registry

import (
	"github.com/meridian-token/meridian-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	recordPrefix = 'r'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// Register binds a logical name to a contract hash, overwriting any previous
// binding. Repointing a name is the hot-swap mechanism: consumers resolve
// names on every call and pick up the new hash on the next one. It can be
// invoked only by committee.
//
// It produces Registered notification.
func Register(name string, hash interop.Hash160) {
	common.CheckCommitteeWitness()

	if len(name) == 0 {
		panic("empty name")
	}
	if len(hash) != interop.Hash160Len {
		panic("incorrect contract script hash length")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, append([]byte{recordPrefix}, name...), hash)

	runtime.Notify("Registered", name, hash)
}

// Resolve returns the contract hash currently bound to the given logical
// name. It panics if the name is unknown.
func Resolve(name string) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{recordPrefix}, name...))
	if data == nil {
		panic("unknown name: " + name)
	}

	return data.(interop.Hash160)
}

// Records iterates over all registered name to contract hash bindings.
func Records() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{recordPrefix}, storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
