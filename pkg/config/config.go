package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"

	"github.com/birdayz/b64/pkg/alphabet"
)

// Alphabet names accepted in Profile.Alphabet besides 64 literal symbols.
const (
	AlphabetStandard = "standard"
	AlphabetURLSafe  = "url-safe"
)

// Profile describes one codec variant.
type Profile struct {
	Name string `yaml:"name" json:"name"`
	// Alphabet is "standard", "url-safe" or the 64 data symbols in order.
	// Empty means standard.
	Alphabet string `yaml:"alphabet,omitempty" json:"alphabet,omitempty"`
	// Padding is the padding symbol. Empty means "=".
	Padding      string `yaml:"padding,omitempty" json:"padding,omitempty"`
	Padded       *bool  `yaml:"padded,omitempty" json:"padded,omitempty"`
	StrictFiller *bool  `yaml:"strict-filler,omitempty" json:"strict-filler,omitempty"`
}

// IsPadded defaults to true.
func (p *Profile) IsPadded() bool {
	return p.Padded == nil || *p.Padded
}

// IsStrict defaults to true.
func (p *Profile) IsStrict() bool {
	return p.StrictFiller == nil || *p.StrictFiller
}

// BuildAlphabet returns the alphabet the profile names.
func (p *Profile) BuildAlphabet() (*alphabet.Alphabet, error) {
	pad := alphabet.StdPadding
	switch len(p.Padding) {
	case 0:
	case 1:
		pad = p.Padding[0]
	default:
		return nil, fmt.Errorf("profile %q: padding must be a single byte, got %q", p.Name, p.Padding)
	}

	var symbols string
	switch p.Alphabet {
	case "", AlphabetStandard:
		symbols = alphabet.Standard.Symbols()
	case AlphabetURLSafe:
		symbols = alphabet.URLSafe.Symbols()
	default:
		symbols = p.Alphabet
	}

	if pad == alphabet.StdPadding && symbols == alphabet.Standard.Symbols() {
		return alphabet.Standard, nil
	}
	if pad == alphabet.StdPadding && symbols == alphabet.URLSafe.Symbols() {
		return alphabet.URLSafe, nil
	}

	a, err := alphabet.New(symbols, pad)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return a, nil
}

// Validate checks the profile has a name and a usable alphabet.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	_, err := p.BuildAlphabet()
	return err
}

type Config struct {
	CurrentProfile  string     `yaml:"current-profile"`
	ProfileOverride string     `yaml:"-"`
	Profiles        []*Profile `yaml:"profiles"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

func (c *Config) HasProfile(name string) bool {
	for _, profile := range c.Profiles {
		if profile.Name == name {
			return true
		}
	}
	return false
}

// AddProfile validates and appends a profile. Names must be unique.
func (c *Config) AddProfile(p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c.HasProfile(p.Name) {
		return fmt.Errorf("profile %q already exists", p.Name)
	}
	c.Profiles = append(c.Profiles, p)
	return nil
}

func (c *Config) SetCurrentProfile(name string) error {
	oldProfile := c.CurrentProfile
	for _, profile := range c.Profiles {
		if profile.Name == name {
			c.CurrentProfile = name

			if err := c.Write(); err != nil {
				// "Revert" change to the profile selection, either
				// everything is successful or nothing.
				c.CurrentProfile = oldProfile
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("could not find profile with name %v", name)
}

// Profile returns a copy of the named profile, or nil.
func (c *Config) Profile(name string) *Profile {
	if c == nil {
		return nil
	}
	for _, profile := range c.Profiles {
		if profile.Name == name {
			// Copy, so callers cannot modify the config through it.
			p := *profile
			return &p
		}
	}
	return nil
}

func (c *Config) ActiveProfile() *Profile {
	if c == nil {
		return nil
	}

	toSearch := c.ProfileOverride
	if c.ProfileOverride == "" {
		toSearch = c.CurrentProfile
	}

	if toSearch == "" {
		return nil
	}
	return c.Profile(toSearch)
}

// Path returns the file this config is read from and written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flush config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	return nil
}

// ReadConfig reads the config at cfgPath, or at ~/.b64/config if cfgPath is
// empty. A missing default file yields an empty config.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	c, err = Parse(file)
	if err != nil {
		return Config{}, err
	}
	c.configPath = resolvedPath
	return c, nil
}

// Parse decodes and validates a YAML config.
func Parse(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Profiles))
	for _, profile := range c.Profiles {
		if err := profile.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
		if _, ok := seen[profile.Name]; ok {
			return Config{}, fmt.Errorf("invalid config: duplicate profile %q", profile.Name)
		}
		seen[profile.Name] = struct{}{}
	}
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".b64", "config"), nil
}
