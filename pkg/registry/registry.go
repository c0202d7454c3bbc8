// Package registry resolves engine names to codec engines. Builtin names
// map to the predefined engines; every other name is looked up as a config
// profile and built on first use.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/birdayz/b64/pkg/codec"
	"github.com/birdayz/b64/pkg/config"
)

// Builtin engine names.
const (
	Std    = "std"
	URL    = "url"
	RawStd = "raw-std"
	RawURL = "raw-url"
)

var builtins = map[string]*codec.Engine{
	Std:    codec.Std,
	URL:    codec.URL,
	RawStd: codec.RawStd,
	RawURL: codec.RawURL,
}

// ErrUnknownEngine is returned for names that are neither builtin nor a
// config profile.
var ErrUnknownEngine = errors.New("unknown engine")

// BuiltinNames lists the builtin engines in a stable order.
func BuiltinNames() []string {
	return []string{Std, URL, RawStd, RawURL}
}

type cachedEngine struct {
	done   chan struct{}
	engine *codec.Engine
	err    error
}

// Registry maintains engines built from config profiles. It is safe for
// concurrent use.
type Registry struct {
	cfg *config.Config
	log *zap.SugaredLogger

	mu            sync.RWMutex
	enginesByName map[string]*cachedEngine
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// New returns a registry over cfg. A nil cfg only serves builtins.
func New(cfg *config.Config, opts ...Option) *Registry {
	r := &Registry{
		cfg:           cfg,
		log:           zap.NewNop().Sugar(),
		enginesByName: make(map[string]*cachedEngine),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Engine returns the engine registered under name. Profile builds, failed
// ones included, are cached. An unknown name is not, so a profile added to
// the config later becomes resolvable.
func (r *Registry) Engine(name string) (engine *codec.Engine, err error) {
	if e, ok := builtins[name]; ok {
		return e, nil
	}

	r.mu.RLock()
	ce, ok := r.enginesByName[name]
	r.mu.RUnlock()
	if ok {
		<-ce.done
		return ce.engine, ce.err
	}

	// Engine is not cached, grab exclusive lock and ensure no other
	// goroutine started building it in-between.
	r.mu.Lock()
	ce, ok = r.enginesByName[name]
	if ok {
		r.mu.Unlock()
		<-ce.done
		return ce.engine, ce.err
	}

	ce = &cachedEngine{done: make(chan struct{})}
	r.enginesByName[name] = ce
	r.mu.Unlock()

	defer func() {
		ce.engine = engine
		ce.err = err
		if errors.Is(err, ErrUnknownEngine) {
			r.mu.Lock()
			delete(r.enginesByName, name)
			r.mu.Unlock()
		}
		close(ce.done) // Promise fulfilled.
	}()

	profile := r.cfg.Profile(name)
	if profile == nil {
		r.log.Debugw("unknown engine", "name", name)
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, name)
	}

	engine, err = build(profile)
	if err != nil {
		r.log.Warnw("could not build engine from profile", "name", name, "error", err)
		return nil, err
	}

	r.log.Debugw("built engine from profile",
		"name", name,
		"padding", engine.Padding().String(),
		"filler", engine.FillerBits().String(),
	)
	return engine, nil
}

// Active returns the engine of the config's active profile, falling back to
// Std when no profile is selected.
func (r *Registry) Active() (*codec.Engine, error) {
	profile := r.cfg.ActiveProfile()
	if profile == nil {
		return codec.Std, nil
	}
	return r.Engine(profile.Name)
}

// Names lists builtin engines followed by config profiles. Profiles that
// shadow a builtin name are skipped, builtins always win.
func (r *Registry) Names() []string {
	names := BuiltinNames()
	if r.cfg == nil {
		return names
	}
	for _, profile := range r.cfg.Profiles {
		if _, ok := builtins[profile.Name]; ok {
			r.log.Warnw("profile shadows builtin engine and is ignored", "name", profile.Name)
			continue
		}
		names = append(names, profile.Name)
	}
	return names
}

func build(profile *config.Profile) (*codec.Engine, error) {
	a, err := profile.BuildAlphabet()
	if err != nil {
		return nil, err
	}

	var opts []codec.Option
	if !profile.IsPadded() {
		opts = append(opts, codec.WithPadding(codec.Unpadded))
	}
	if !profile.IsStrict() {
		opts = append(opts, codec.WithFillerBits(codec.Lenient))
	}
	return codec.New(a, opts...), nil
}
