package config

import (
	"errors"

	"github.com/magiconair/properties"
)

// Keys read by ImportProperties.
const (
	propName         = "b64.name"
	propAlphabet     = "b64.alphabet"
	propPadding      = "b64.padding"
	propPadded       = "b64.padded"
	propStrictFiller = "b64.strict-filler"
)

// ImportProperties builds a profile from a Java style .properties file, so
// JVM services and this module can share one codec definition.
func ImportProperties(path string) (*Profile, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, err
	}
	return profileFromProperties(p)
}

func profileFromProperties(p *properties.Properties) (*Profile, error) {
	name, ok := p.Get(propName)
	if !ok {
		return nil, errors.New("invalid or unsupported properties file: missing " + propName)
	}

	profile := &Profile{
		Name:     name,
		Alphabet: p.GetString(propAlphabet, ""),
		Padding:  p.GetString(propPadding, ""),
	}
	if _, ok := p.Get(propPadded); ok {
		padded := p.GetBool(propPadded, true)
		profile.Padded = &padded
	}
	if _, ok := p.Get(propStrictFiller); ok {
		strict := p.GetBool(propStrictFiller, true)
		profile.StrictFiller = &strict
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}
