package oracle

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"coffee-verifier/internal/usecase/commands"

	"github.com/BurntSushi/toml"
)

//go:embed default_profile.toml
var defaultProfile string

// Profile describes the oracle job a verification request triggers.
type Profile struct {
	Name             string            `toml:"Name"`
	DonID            string            `toml:"DonID"`
	SubscriptionID   uint64            `toml:"SubscriptionID"`
	CallbackGasLimit uint32            `toml:"CallbackGasLimit"`
	Source           string            `toml:"Source"`
	Args             map[string]string `toml:"Args"`
}

// LoadProfile decodes the profile at path, or the embedded default when path is empty.
func LoadProfile(path string) (*Profile, error) {
	var (
		p   Profile
		md  toml.MetaData
		err error
	)
	if path == "" {
		md, err = toml.Decode(defaultProfile, &p)
	} else {
		md, err = toml.DecodeFile(path, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode oracle profile: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown oracle profile keys: %s", strings.Join(keys, ", "))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("oracle profile: Name is required")
	}
	if strings.TrimSpace(p.DonID) == "" {
		return fmt.Errorf("oracle profile %s: DonID is required", p.Name)
	}
	if strings.TrimSpace(p.Source) == "" {
		return fmt.Errorf("oracle profile %s: Source is required", p.Name)
	}
	if p.CallbackGasLimit == 0 {
		return fmt.Errorf("oracle profile %s: CallbackGasLimit must be positive", p.Name)
	}
	return nil
}

func (p *Profile) Job() commands.OracleJob {
	args := make(map[string]string, len(p.Args))
	for k, v := range p.Args {
		args[k] = v
	}
	return commands.OracleJob{
		Name:             p.Name,
		Source:           p.Source,
		DonID:            p.DonID,
		SubscriptionID:   p.SubscriptionID,
		CallbackGasLimit: p.CallbackGasLimit,
		Args:             args,
	}
}
