// Package theme manages the light/dark display preference. Persistence is an
// injected key-value Store so the logic runs without a real backend.
package theme

import (
	"context"
	"errors"
	"fmt"
)

// Theme is a display preference.
type Theme string

// Supported themes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// storageKey is the key the preference lives under in a client's namespace.
const storageKey = "theme"

// Sentinel errors.
var (
	ErrInvalidTheme = errors.New("invalid theme")
	ErrNotFound     = errors.New("preference not found")
)

// Parse validates s as a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Store persists string values per key. Get returns ErrNotFound for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Preference reads and writes one theme preference per client.
type Preference struct {
	store    Store
	fallback Theme
}

// NewPreference creates a Preference over store. fallback is used when nothing
// valid is stored; an invalid fallback is replaced by Light.
func NewPreference(store Store, fallback Theme) *Preference {
	if _, err := Parse(string(fallback)); err != nil {
		fallback = Light
	}
	return &Preference{store: store, fallback: fallback}
}

// Load returns the client's theme. Missing or unrecognised stored values load
// as the fallback; other store failures are returned with the fallback.
func (p *Preference) Load(ctx context.Context, client string) (Theme, error) {
	raw, err := p.store.Get(ctx, key(client))
	if errors.Is(err, ErrNotFound) {
		return p.fallback, nil
	}
	if err != nil {
		return p.fallback, fmt.Errorf("load theme: %w", err)
	}
	t, err := Parse(raw)
	if err != nil {
		return p.fallback, nil
	}
	return t, nil
}

// Set stores t for client.
func (p *Preference) Set(ctx context.Context, client string, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	if err := p.store.Set(ctx, key(client), string(t)); err != nil {
		return fmt.Errorf("store theme: %w", err)
	}
	return nil
}

// Toggle flips the client's theme, persists it and returns the new value.
func (p *Preference) Toggle(ctx context.Context, client string) (Theme, error) {
	current, err := p.Load(ctx, client)
	if err != nil {
		return current, err
	}
	next := current.Opposite()
	if err := p.Set(ctx, client, next); err != nil {
		return current, err
	}
	return next, nil
}

func key(client string) string {
	return client + "/" + storageKey
}
