// Package config parses the ponder.yaml configuration file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	validNameRegex    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	validAddressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Parser implements ports.ConfigParser.
// ABI file paths are resolved against BaseDir.
type Parser struct {
	BaseDir string
}

var _ ports.ConfigParser = (*Parser)(nil)

// NewParser creates a Parser resolving ABI paths against baseDir.
func NewParser(baseDir string) *Parser {
	return &Parser{BaseDir: baseDir}
}

// ParseConfig decodes and validates raw configuration content.
func (p *Parser) ParseConfig(raw []byte) (*domain.Config, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	networks, err := buildNetworks(file.Networks)
	if err != nil {
		return nil, err
	}

	cfg := &domain.Config{
		Networks: networks,
		Options:  buildOptions(file.Options),
	}

	seen := make(map[string]bool, len(file.Contracts))
	for i := range file.Contracts {
		dto := &file.Contracts[i]
		if err := validateName(dto.Name); err != nil {
			return nil, zerr.With(err, "contract", dto.Name)
		}
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicateContract, "contract", dto.Name)
		}
		seen[dto.Name] = true

		events, abiPath, err := p.loadABI(&dto.Abi)
		if err != nil {
			return nil, zerr.With(err, "contract", dto.Name)
		}
		contract := domain.Contract{Name: dto.Name, ABIPath: abiPath, Events: events}
		cfg.Contracts = append(cfg.Contracts, contract)

		sources, err := buildSources(cfg, contract, dto)
		if err != nil {
			return nil, zerr.With(err, "contract", dto.Name)
		}
		cfg.Sources = append(cfg.Sources, sources...)
	}

	return cfg, nil
}

func buildNetworks(dtos []NetworkDTO) ([]domain.Network, error) {
	if len(dtos) == 0 {
		return nil, domain.ErrNoNetworks
	}

	networks := make([]domain.Network, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))
	for _, dto := range dtos {
		if err := validateName(dto.Name); err != nil {
			return nil, zerr.With(err, "network", dto.Name)
		}
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicateNetwork, "network", dto.Name)
		}
		seen[dto.Name] = true

		n := domain.Network{
			Name:                     dto.Name,
			ChainID:                  dto.ChainID,
			RPCURL:                   os.ExpandEnv(dto.RPCURL),
			PollingInterval:          domain.DefaultPollingInterval,
			MaxRPCRequestConcurrency: domain.DefaultMaxRPCRequestConcurrency,
		}
		if dto.PollingInterval != nil {
			n.PollingInterval = time.Duration(*dto.PollingInterval) * time.Millisecond
		}
		if dto.MaxRPCRequestConcurrency != nil {
			n.MaxRPCRequestConcurrency = *dto.MaxRPCRequestConcurrency
		}
		networks = append(networks, n)
	}
	return networks, nil
}

func buildOptions(dto OptionsDTO) domain.Options {
	opts := domain.Options{MaxHealthcheckDuration: domain.DefaultMaxHealthcheckDuration}
	if dto.MaxHealthcheckDuration != nil {
		opts.MaxHealthcheckDuration = time.Duration(*dto.MaxHealthcheckDuration) * time.Second
	}
	return opts
}

// buildSources resolves the network overrides of a contract into one source per network.
// Override fields win over the contract-level ones.
func buildSources(cfg *domain.Config, contract domain.Contract, dto *ContractDTO) ([]domain.Source, error) {
	overrides, err := decodeOverrides(&dto.Network)
	if err != nil {
		return nil, err
	}

	sources := make([]domain.Source, 0, len(overrides))
	for _, o := range overrides {
		network, ok := cfg.Network(o.Name)
		if !ok {
			return nil, zerr.With(domain.ErrUnknownNetwork, "network", o.Name)
		}

		src, err := resolveSource(contract, network, dto.SourceDTO, o.SourceDTO)
		if err != nil {
			return nil, zerr.With(err, "network", o.Name)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func decodeOverrides(node *yaml.Node) ([]OverrideDTO, error) {
	switch node.Kind {
	case 0:
		return nil, zerr.With(domain.ErrUnknownNetwork, "network", "")
	case yaml.ScalarNode:
		return []OverrideDTO{{Name: node.Value}}, nil
	default:
		var overrides []OverrideDTO
		if err := node.Decode(&overrides); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		return overrides, nil
	}
}

func resolveSource(contract domain.Contract, network domain.Network, base, override SourceDTO) (domain.Source, error) {
	address := firstNonEmpty(override.Address, base.Address)
	factory := override.Factory
	if factory == nil {
		factory = base.Factory
	}

	switch {
	case address != "" && factory != nil:
		return domain.Source{}, domain.ErrAddressAndFactory
	case address == "" && factory == nil:
		return domain.Source{}, domain.ErrMissingAddress
	}

	src := domain.Source{
		Contract:      contract.Name,
		Network:       network.Name,
		ChainID:       network.ChainID,
		Address:       address,
		StartBlock:    pick(override.StartBlock, base.StartBlock, 0),
		EndBlock:      pick(override.EndBlock, base.EndBlock, 0),
		MaxBlockRange: pick(override.MaxBlockRange, base.MaxBlockRange, domain.DefaultMaxBlockRange),
	}

	if factory != nil {
		src.Factory = &domain.Factory{Address: factory.Address, Event: factory.Event, Parameter: factory.Parameter}
		if err := validateAddress(factory.Address); err != nil {
			return domain.Source{}, err
		}
	} else if err := validateAddress(address); err != nil {
		return domain.Source{}, err
	}

	if src.EndBlock != 0 && src.EndBlock < src.StartBlock {
		return domain.Source{}, zerr.With(domain.ErrInvalidBlockRange, "startBlock", src.StartBlock)
	}

	filter := override.Filter
	if filter == nil {
		filter = base.Filter
	}
	if filter != nil {
		for _, name := range filter.Event {
			if !slices.ContainsFunc(contract.Events, func(e domain.AbiEvent) bool { return e.Name == name }) {
				return domain.Source{}, zerr.With(domain.ErrUnknownFilterEvent, "event", name)
			}
		}
		src.Events = slices.Clone([]string(filter.Event))
	}

	return src, nil
}

// loadABI reads the events of an ABI given inline or as a path.
func (p *Parser) loadABI(node *yaml.Node) ([]domain.AbiEvent, string, error) {
	var (
		raw  []byte
		path string
	)

	switch node.Kind {
	case yaml.ScalarNode:
		path = node.Value
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.BaseDir, path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, "", zerr.With(zerr.Wrap(err, domain.ErrABIReadFailed.Error()), "path", path)
		}
		raw = content
	case yaml.SequenceNode:
		var items []any
		if err := node.Decode(&items); err != nil {
			return nil, "", zerr.Wrap(err, domain.ErrABIParseFailed.Error())
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return nil, "", zerr.Wrap(err, domain.ErrABIParseFailed.Error())
		}
		raw = encoded
	default:
		return nil, "", zerr.Wrap(zerr.New("abi must be a path or a list"), domain.ErrABIParseFailed.Error())
	}

	var items []abiItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, "", zerr.Wrap(err, domain.ErrABIParseFailed.Error())
	}

	var events []domain.AbiEvent
	for _, item := range items {
		if item.Type != "event" {
			continue
		}
		ev := domain.AbiEvent{Name: item.Name}
		for _, in := range item.Inputs {
			ev.Inputs = append(ev.Inputs, domain.AbiParam{Name: in.Name, Type: in.Type, Indexed: in.Indexed})
		}
		events = append(events, ev)
	}
	return events, path, nil
}

func validateName(name string) error {
	if !validNameRegex.MatchString(name) {
		return domain.ErrInvalidName
	}
	return nil
}

func validateAddress(address string) error {
	if !validAddressRegex.MatchString(address) {
		return zerr.With(domain.ErrInvalidAddress, "address", address)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func pick(override, base *uint64, fallback uint64) uint64 {
	switch {
	case override != nil:
		return *override
	case base != nil:
		return *base
	default:
		return fallback
	}
}
