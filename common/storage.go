package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns an integer value from contract storage or zero if the key
// is missing.
func GetInt(ctx storage.Context, key interface{}) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// GetString returns a string value from contract storage or an empty string
// if the key is missing.
func GetString(ctx storage.Context, key interface{}) string {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(string)
	}

	return ""
}
