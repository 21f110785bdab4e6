package domain

import "time"

const (
	// DefaultPollingInterval is the default interval between RPC polls.
	DefaultPollingInterval = time.Second
	// DefaultMaxRPCRequestConcurrency is the default number of parallel RPC requests per network.
	DefaultMaxRPCRequestConcurrency = 10
	// DefaultMaxBlockRange is the default number of blocks fetched per request.
	DefaultMaxBlockRange = 10_000
	// DefaultMaxHealthcheckDuration is how long the server reports unhealthy while indexing.
	DefaultMaxHealthcheckDuration = 240 * time.Second
)

// Config is the parsed user configuration.
type Config struct {
	Networks  []Network
	Contracts []Contract
	// Sources holds one entry per (contract, network) pair after overrides are applied.
	Sources []Source
	Options Options
}

// Network is a chain the indexer reads from.
type Network struct {
	Name                     string
	ChainID                  int64
	RPCURL                   string
	PollingInterval          time.Duration
	MaxRPCRequestConcurrency int
}

// Contract is a user-declared contract with its ABI.
type Contract struct {
	Name    string
	ABIPath string
	Events  []AbiEvent
}

// AbiEvent is an event declared in a contract ABI.
type AbiEvent struct {
	Name   string
	Inputs []AbiParam
}

// AbiParam is an event parameter.
type AbiParam struct {
	Name    string
	Type    string
	Indexed bool
}

// Factory describes child contracts discovered from a factory event.
type Factory struct {
	Address   string
	Event     string
	Parameter string
}

// Source is a contract bound to one network.
type Source struct {
	Contract      string
	Network       string
	ChainID       int64
	Address       string
	Factory       *Factory
	StartBlock    uint64
	EndBlock      uint64
	MaxBlockRange uint64
	// Events is the event filter. Empty means every ABI event.
	Events []string
}

// Options holds global indexing options.
type Options struct {
	MaxHealthcheckDuration time.Duration
}

// Network returns the network with the given name.
func (c *Config) Network(name string) (Network, bool) {
	for _, n := range c.Networks {
		if n.Name == name {
			return n, true
		}
	}
	return Network{}, false
}

// Contract returns the contract with the given name.
func (c *Config) Contract(name string) (Contract, bool) {
	for _, ct := range c.Contracts {
		if ct.Name == name {
			return ct, true
		}
	}
	return Contract{}, false
}

// SourcesFor returns the sources of a contract.
func (c *Config) SourcesFor(contract string) []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Contract == contract {
			out = append(out, s)
		}
	}
	return out
}
