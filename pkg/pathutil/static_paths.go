package pathutil

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MacroPower/pathkit/pkg/paths"
)

// ErrInvalidEncodedName is returned when a [PathEncoder] produces a name that
// is not a valid basename on the target platform.
var ErrInvalidEncodedName = errors.New("encoded key is not a valid file name")

type PathEncoder interface {
	Encode(key string) string
	Decode(key string) (string, error)
}

// StaticTempPaths provides a way to generate paths for keys such that the same
// key always maps to the same path. Rather than storing a mapping of key->path
// in memory, this implementation uses very simple bijective encoding/decoding
// functions to convert keys to paths, so paths are stable across processes.
//
// Encoded names are checked with [paths.Platform.IsValidBasename], so an
// encoder that produces e.g. `:` will be rejected on Windows.
type StaticTempPaths struct {
	pe       PathEncoder
	added    *pathTable
	root     string
	platform paths.Platform
}

func NewStaticTempPaths(root string, pe PathEncoder, p paths.Platform) *StaticTempPaths {
	return &StaticTempPaths{
		root:     root,
		pe:       pe,
		platform: p,
		added:    newPathTable(),
	}
}

func (p *StaticTempPaths) keyToPath(key string) (string, error) {
	name := p.pe.Encode(key)
	if !p.platform.IsValidBasename(name) {
		return "", fmt.Errorf("%w: %q (platform %s)", ErrInvalidEncodedName, name, p.platform)
	}

	return paths.Join(p.root, name), nil
}

// Add records a path for key that was not produced by the encoder.
func (p *StaticTempPaths) Add(key, value string) {
	p.added.set(key, value)
}

// GetPath returns the path for the given key.
func (p *StaticTempPaths) GetPath(key string) (string, error) {
	if val, ok := p.added.get(key); ok {
		return val, nil
	}

	return p.keyToPath(key)
}

// GetKey decodes the key for a path that was returned by [StaticTempPaths.GetPath].
func (p *StaticTempPaths) GetKey(path string) (string, error) {
	key, err := p.pe.Decode(paths.Basename(path))
	if err != nil {
		return "", fmt.Errorf("failed to decode key for %s: %w", path, err)
	}

	return key, nil
}

// GetPathIfExists returns the path for key if one was added with
// [StaticTempPaths.Add]. Otherwise, returns an empty string.
func (p *StaticTempPaths) GetPathIfExists(key string) string {
	val, _ := p.added.get(key)

	return val
}

// GetPaths gets a copy of the map of added paths.
func (p *StaticTempPaths) GetPaths() map[string]string {
	return p.added.snapshot()
}

type Base64PathEncoder struct{}

func NewBase64PathEncoder() *Base64PathEncoder {
	return &Base64PathEncoder{}
}

func (*Base64PathEncoder) Encode(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func (*Base64PathEncoder) Decode(s string) (string, error) {
	d, err := base64.URLEncoding.DecodeString(s)

	return string(d), err
}
