package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadProfile reads a single profile from a standalone YAML file, for
// sharing one codec variant without a whole config.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.UnmarshalStrict(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

func SaveProfile(profile *Profile, path string) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile to %s: %w", path, err)
	}

	return nil
}
