// Package format names the text representations a payload can be read from
// or rendered to. A Format satisfies the pflag.Value interface so callers
// can bind it to a flag directly.
package format

import (
	"fmt"
	"strings"

	"github.com/birdayz/b64/pkg/encoding"
	"github.com/birdayz/b64/pkg/registry"
)

// Format selects a text representation.
type Format string

const (
	Std    Format = registry.Std
	URL    Format = registry.URL
	RawStd Format = registry.RawStd
	RawURL Format = registry.RawURL
	Hex    Format = "hex"
	Raw    Format = "raw"
)

// ProfilePrefix marks a format that refers to a config profile, as in
// "profile:tokens".
const ProfilePrefix = "profile:"

// Formats lists the fixed formats.
func Formats() []string {
	return []string{string(Std), string(URL), string(RawStd), string(RawURL), string(Hex), string(Raw)}
}

func (e *Format) String() string {
	return string(*e)
}

func (e *Format) Set(v string) error {
	switch {
	case isFixed(v):
		*e = Format(v)
		return nil
	case strings.HasPrefix(v, ProfilePrefix) && len(v) > len(ProfilePrefix):
		*e = Format(v)
		return nil
	default:
		return fmt.Errorf("must be one of: %s, or %s<name>", strings.Join(Formats(), ", "), ProfilePrefix)
	}
}

func (e *Format) Type() string {
	return "Format"
}

// Profile returns the profile name for a profile format.
func (f Format) Profile() (string, bool) {
	if !strings.HasPrefix(string(f), ProfilePrefix) {
		return "", false
	}
	return strings.TrimPrefix(string(f), ProfilePrefix), true
}

// Resolve returns the serde for f. Base64 formats are looked up in reg; a
// nil reg only knows the builtin engines.
func Resolve(f Format, reg *registry.Registry) (encoding.Encoder, encoding.Decoder, error) {
	switch f {
	case Hex:
		return encoding.HexSerde{}, encoding.HexSerde{}, nil
	case Raw:
		return encoding.BypassSerde{}, encoding.BypassSerde{}, nil
	case "":
		f = Std
	}

	name := string(f)
	if profile, ok := f.Profile(); ok {
		name = profile
	} else if !isFixed(name) {
		return nil, nil, fmt.Errorf("unknown format %q", f)
	}

	if reg == nil {
		reg = registry.New(nil)
	}
	engine, err := reg.Engine(name)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve format %q: %w", f, err)
	}
	serde := encoding.Base64Serde{Engine: engine}
	return serde, serde, nil
}

func isFixed(v string) bool {
	for _, f := range Formats() {
		if v == f {
			return true
		}
	}
	return false
}
