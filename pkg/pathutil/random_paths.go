// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathutil

import (
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/MacroPower/pathkit/pkg/paths"
)

// TempPaths maps keys to child paths of a root. Implementations only compute
// path strings; nothing is created on disk.
type TempPaths interface {
	Add(key, value string)
	GetPath(key string) (string, error)
	GetPathIfExists(key string) string
	GetPaths() map[string]string
}

// pathTable is a key to path map that is safe for concurrent use.
type pathTable struct {
	entries map[string]string
	mu      sync.RWMutex
}

func newPathTable() *pathTable {
	return &pathTable{entries: map[string]string{}}
}

func (t *pathTable) set(key, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[key] = path
}

func (t *pathTable) get(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	path, ok := t.entries[key]

	return path, ok
}

// getOrCreate returns the path stored for key, or stores and returns the
// result of create. create runs at most once per key.
func (t *pathTable) getOrCreate(key string, create func() (string, error)) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if path, ok := t.entries[key]; ok {
		return path, nil
	}

	path, err := create()
	if err != nil {
		return "", err
	}

	t.entries[key] = path

	return path, nil
}

func (t *pathTable) snapshot() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return maps.Clone(t.entries)
}

// RandomizedTempPaths names the path of each key with a random UUID beneath
// root. A key keeps its path for the lifetime of the [RandomizedTempPaths], but
// two instances give the same key different paths.
type RandomizedTempPaths struct {
	table *pathTable
	root  string
}

func NewRandomizedTempPaths(root string) *RandomizedTempPaths {
	return &RandomizedTempPaths{
		table: newPathTable(),
		root:  root,
	}
}

// Add records value as the path of key, replacing any generated path.
func (r *RandomizedTempPaths) Add(key, value string) {
	r.table.set(key, value)
}

// GetPath returns the path of key, generating it on first use.
func (r *RandomizedTempPaths) GetPath(key string) (string, error) {
	return r.table.getOrCreate(key, func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("failed to generate uuid: %w", err)
		}

		return paths.Join(r.root, id.String()), nil
	})
}

// GetPathIfExists returns the path of key if it was generated or added, and
// an empty string otherwise.
func (r *RandomizedTempPaths) GetPathIfExists(key string) string {
	path, _ := r.table.get(key)

	return path
}

// GetPaths returns a copy of all generated and added paths, keyed by key.
func (r *RandomizedTempPaths) GetPaths() map[string]string {
	return r.table.snapshot()
}
