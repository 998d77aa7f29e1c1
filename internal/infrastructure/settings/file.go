// Package settings stores SettingsArray records in a TOML file through viper.
package settings

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/logging"
)

const (
	dirPerm = 0o750

	// Binary values are written as strings with this prefix.
	bytesPrefix = "base64:"
)

type record map[string]any

// File is a port.SettingsArray backed by a TOML file. Writes are buffered
// until Sync, which holds an exclusive lock on the file while writing.
type File struct {
	mu     sync.Mutex
	path   string
	arrays map[string][]record
	dirty  bool

	array   string
	index   int
	writing bool
}

var (
	_ port.SettingsArray  = (*File)(nil)
	_ port.SettingsSyncer = (*File)(nil)
)

// Open loads path if it exists. A missing file yields an empty store.
func Open(ctx context.Context, path string) (*File, error) {
	if path == "" {
		return nil, errors.New("settings path cannot be empty")
	}
	f := &File{path: path, arrays: make(map[string][]record)}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logging.FromContext(ctx).Debug().Str("path", path).Msg("settings file not found, starting empty")
		return f, nil
	}

	unlock, err := lockFile(path, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		name := strings.SplitN(key, ".", 2)[0]
		if _, seen := f.arrays[name]; seen {
			continue
		}
		if recs, ok := decodeArray(v.Get(name)); ok {
			f.arrays[name] = recs
		}
	}
	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("arrays", len(f.arrays)).
		Msg("settings file loaded")
	return f, nil
}

func decodeArray(raw any) ([]record, bool) {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	default:
		return nil, false
	}
	out := make([]record, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		rec := make(record, len(m))
		for k, val := range m {
			rec[strings.ToLower(k)] = decodeValue(val)
		}
		out = append(out, rec)
	}
	return out, true
}

func decodeValue(v any) any {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, bytesPrefix) {
		return v
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, bytesPrefix))
	if err != nil {
		return v
	}
	return b
}

func encodeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return bytesPrefix + base64.StdEncoding.EncodeToString(b)
	}
	return v
}

// Path returns the backing file.
func (f *File) Path() string { return f.path }

// Arrays lists the stored array names.
func (f *File) Arrays() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.arrays))
	for name := range f.arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BeginWriteArray replaces the array with size empty records.
func (f *File) BeginWriteArray(name string, size int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.array = strings.ToLower(name)
	f.index = 0
	f.writing = true
	recs := make([]record, max(size, 0))
	for i := range recs {
		recs[i] = make(record)
	}
	f.arrays[f.array] = recs
	f.dirty = true
}

func (f *File) SetArrayIndex(i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.index = i
	if f.writing {
		for len(f.arrays[f.array]) <= i {
			f.arrays[f.array] = append(f.arrays[f.array], make(record))
		}
	}
}

func (f *File) SetValue(key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.writing || f.index < 0 {
		return
	}
	f.arrays[f.array][f.index][strings.ToLower(key)] = value
	f.dirty = true
}

// BeginReadArray returns the size of the array, zero when missing.
func (f *File) BeginReadArray(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.array = strings.ToLower(name)
	f.index = 0
	f.writing = false
	return len(f.arrays[f.array])
}

func (f *File) Value(key string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	recs := f.arrays[f.array]
	if f.index < 0 || f.index >= len(recs) {
		return nil
	}
	return recs[f.index][strings.ToLower(key)]
}

func (f *File) EndArray() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.array = ""
	f.index = 0
	f.writing = false
}

// Sync writes buffered changes to disk.
func (f *File) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.dirty {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	unlock, err := lockFile(f.path, true)
	if err != nil {
		return err
	}
	defer unlock()

	v := viper.New()
	v.SetConfigType("toml")
	for name, recs := range f.arrays {
		out := make([]map[string]any, 0, len(recs))
		for _, rec := range recs {
			m := make(map[string]any, len(rec))
			for k, val := range rec {
				m[k] = encodeValue(val)
			}
			out = append(out, m)
		}
		v.Set(name, out)
	}
	if err := v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", f.path, err)
	}
	f.dirty = false
	return nil
}
