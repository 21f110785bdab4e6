package config

import (
	"gopkg.in/yaml.v3"
)

// File represents the structure of the ponder.yaml configuration file.
type File struct {
	Networks  []NetworkDTO  `yaml:"networks"`
	Contracts []ContractDTO `yaml:"contracts"`
	Options   OptionsDTO    `yaml:"options"`
}

// NetworkDTO represents a network definition.
type NetworkDTO struct {
	Name                     string `yaml:"name"`
	ChainID                  int64  `yaml:"chainId"`
	RPCURL                   string `yaml:"rpcUrl"`
	PollingInterval          *int64 `yaml:"pollingInterval"`
	MaxRPCRequestConcurrency *int   `yaml:"maxRpcRequestConcurrency"`
}

// ContractDTO represents a contract definition.
// Abi is either a path to a JSON file or an inline ABI.
// Network is either a network name or a list of per-network overrides.
type ContractDTO struct {
	Name      string    `yaml:"name"`
	Abi       yaml.Node `yaml:"abi"`
	Network   yaml.Node `yaml:"network"`
	SourceDTO `yaml:",inline"`
}

// SourceDTO holds the fields a network override may replace.
type SourceDTO struct {
	Address       string      `yaml:"address"`
	Factory       *FactoryDTO `yaml:"factory"`
	StartBlock    *uint64     `yaml:"startBlock"`
	EndBlock      *uint64     `yaml:"endBlock"`
	MaxBlockRange *uint64     `yaml:"maxBlockRange"`
	Filter        *FilterDTO  `yaml:"filter"`
}

// OverrideDTO is one entry of a contract network list.
type OverrideDTO struct {
	Name      string `yaml:"name"`
	SourceDTO `yaml:",inline"`
}

// FactoryDTO represents a factory definition.
type FactoryDTO struct {
	Address   string `yaml:"address"`
	Event     string `yaml:"event"`
	Parameter string `yaml:"parameter"`
}

// FilterDTO restricts the indexed events.
type FilterDTO struct {
	Event EventList `yaml:"event"`
}

// OptionsDTO represents global options.
type OptionsDTO struct {
	MaxHealthcheckDuration *int64 `yaml:"maxHealthcheckDuration"`
}

// EventList accepts a single event name or a list of names.
type EventList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *EventList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*e = EventList{value.Value}
		return nil
	}
	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}
	*e = names
	return nil
}

// abiItem is one entry of a JSON contract ABI.
type abiItem struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Anonymous bool       `json:"anonymous"`
	Inputs    []abiInput `json:"inputs"`
}

type abiInput struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed"`
}
