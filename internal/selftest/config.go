package selftest

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gostonefire/hashmap/hashfunc"
)

const (
	HashDefault  = "default"
	HashCRC32    = "crc32"
	HashIdentity = "identity"
)

// Config - Parameters for the hash maps exercised by the self-test suites
//   - InitialCapacity is the number of buckets each map starts with, zero gives the default of 100
//   - ProbingLoadFactor is the resize threshold for linear probing, zero gives the default of 0.5
//   - ChainingLoadFactor is the resize threshold for separate chaining, zero gives the default of 0.75
//   - Hash is one of "default", "crc32" or "identity"
type Config struct {
	InitialCapacity    int64   `toml:"initialCapacity"`
	ProbingLoadFactor  float64 `toml:"probingLoadFactor"`
	ChainingLoadFactor float64 `toml:"chainingLoadFactor"`
	Hash               string  `toml:"hash"`
}

// DefaultConfig - Returns a Config leaving every map parameter at its default
func DefaultConfig() Config {
	return Config{Hash: HashDefault}
}

// LoadConfig - Reads a TOML file on top of DefaultConfig.
//   - path is the file to read, an empty path returns DefaultConfig unchanged
//
// It returns:
//   - conf is the resulting configuration
//   - err is a standard error if the file couldn't be decoded or holds invalid values
func LoadConfig(path string) (conf Config, err error) {
	conf = DefaultConfig()
	if path == "" {
		return
	}

	_, err = toml.DecodeFile(path, &conf)
	if err != nil {
		err = fmt.Errorf("error while decoding config file %s: %w", path, err)
		return
	}

	err = conf.Validate()

	return
}

// Validate - Checks that all values are within permitted ranges
func (C Config) Validate() (err error) {
	if C.InitialCapacity < 0 {
		return fmt.Errorf("initialCapacity must be zero (for default) or a positive value")
	}
	if C.ProbingLoadFactor < 0 || C.ProbingLoadFactor >= 1 {
		return fmt.Errorf("probingLoadFactor must be zero (for default) or within (0,1), got %v", C.ProbingLoadFactor)
	}
	if C.ChainingLoadFactor < 0 {
		return fmt.Errorf("chainingLoadFactor must be zero (for default) or a positive value, got %v", C.ChainingLoadFactor)
	}
	_, err = C.hashFunc()

	return
}

// hashFunc - Returns the hash function named in Hash, nil for the map's own default
func (C Config) hashFunc() (hashFunc hashfunc.HashFunc[int], err error) {
	switch C.Hash {
	case "", HashDefault:
	case HashCRC32:
		hashFunc = hashfunc.CRC32[int]()
	case HashIdentity:
		hashFunc = hashfunc.Identity[int]()
	default:
		err = fmt.Errorf("unknown hash %q, must be one of %s, %s or %s", C.Hash, HashDefault, HashCRC32, HashIdentity)
	}

	return
}
