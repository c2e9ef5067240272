package sortbench

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ToolConfig controls a benchmark run. Sequence length and element type
// are fixed at compile time and cannot be configured.
type ToolConfig struct {
	Seed      int64    `toml:"seed"`
	Methods   []string `toml:"methods"`
	Snapshots bool     `toml:"snapshots"`
	Verify    bool     `toml:"verify"`
}

// DefaultConfig runs every algorithm with a time seeded random sequence,
// printing snapshots and verifying each result.
func DefaultConfig() *ToolConfig {
	return &ToolConfig{
		Snapshots: true,
		Verify:    true,
	}
}

// DecodeConfig reads TOML from r on top of DefaultConfig.
func DecodeConfig(r io.Reader) (*ToolConfig, error) {
	config := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(config)
	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown tool config key %q", undecoded[0].String())
	}
	return config, nil
}

// LoadConfig reads the TOML file at path. An empty path yields DefaultConfig.
func LoadConfig(path string) (*ToolConfig, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	conffile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to load sortbench config: %w", err)
	}
	defer conffile.Close()
	return DecodeConfig(conffile)
}
