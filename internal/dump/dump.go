/*
Package dump persists collected states of the Meridian smart contracts.

A dump captures the states and storages of the deployed contract set at a
fixed blockchain height, which makes it possible to inspect a live system
offline or to seed a test environment with production data. Dumps are stored
in the file system using human-readable encoding.
*/
package dump

import (
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// ID is a unique identifier of a contract dump.
type ID struct {
	// Label of the dump source (e.g. testnet, mainnet).
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

const (
	// word separator used in dump file naming
	sep = "-"

	statesFileSuffix  = "contracts.json"
	storageFileSuffix = "storage.csv"
)

// encoding of binary keys and values in the storage CSV.
var binEncoding = base64.StdEncoding

// contractState is a JSON-encoded information about a dumped contract.
type contractState struct {
	Name  string         `json:"name"`
	State state.Contract `json:"state"`
}

// Creator dumps states of the Meridian contracts. Output file format:
//
//	'<label>-<block>-contracts.json': JSON array of contracts' states
//	'<label>-<block>-storage.csv': CSV of contracts' storages
//
// Storage CSV records are 'name,key,value' where name stands for the logical
// contract name and binary key-value are base64-encoded.
type Creator struct {
	contractsFile *os.File
	storageFile   *os.File

	contracts  []contractState
	storageCSV *csv.Writer
}

// NewCreator returns a Creator which dumps contracts into the given
// directory. The dump is identified by the specified ID. The resulting
// Creator should be closed when finished working with it.
//
// NewCreator fails if a dump with the provided ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	var (
		res Creator
		err error
	)

	pathContracts := filepath.Join(dir, strings.Join([]string{id.String(), statesFileSuffix}, sep))
	pathStorage := filepath.Join(dir, strings.Join([]string{id.String(), storageFileSuffix}, sep))

	for _, p := range []string{pathContracts, pathStorage} {
		if err = checkFileNotExists(p); err != nil {
			return nil, err
		}
	}

	res.contractsFile, err = os.OpenFile(pathContracts, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open file with contract states: %w", err)
	}

	res.storageFile, err = os.OpenFile(pathStorage, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		_ = res.contractsFile.Close()
		return nil, fmt.Errorf("open file with storage items: %w", err)
	}

	res.storageCSV = csv.NewWriter(res.storageFile)

	return &res, nil
}

// AddContract adds the given state of the named contract to the resulting
// dump and returns a StorageWriter for the contract storage. After all needed
// contracts are added, they should be flushed via the Flush method.
func (x *Creator) AddContract(name string, st state.Contract) *StorageWriter {
	x.contracts = append(x.contracts, contractState{
		Name:  name,
		State: st,
	})

	return &StorageWriter{
		name: name,
		csv:  x.storageCSV,
	}
}

// Flush flushes the accumulated dump to the file system.
func (x *Creator) Flush() error {
	jEnc := json.NewEncoder(x.contractsFile)
	jEnc.SetIndent("", " ")

	err := jEnc.Encode(x.contracts)
	if err != nil {
		return fmt.Errorf("encode contract states to JSON: %w", err)
	}

	x.storageCSV.Flush()

	err = x.storageCSV.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}

// Close releases underlying resources of the Creator and makes it unusable.
func (x *Creator) Close() {
	_ = x.storageFile.Close()
	_ = x.contractsFile.Close()
}

// StorageWriter writes data into the superior contract's storage dump.
type StorageWriter struct {
	name string
	csv  *csv.Writer
}

// Write saves the given binary key-value into the contract dump as a storage
// item.
func (x *StorageWriter) Write(key, value []byte) error {
	err := x.csv.Write([]string{
		x.name,
		binEncoding.EncodeToString(key),
		binEncoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	return nil
}

// checkFileNotExists checks that there is no file at the specified path.
func checkFileNotExists(p string) error {
	_, err := os.Stat(p)
	if !os.IsNotExist(err) {
		if err == nil {
			err = os.ErrExist
		}
		return fmt.Errorf("file '%s' absence check failed: %w", p, err)
	}
	return nil
}
