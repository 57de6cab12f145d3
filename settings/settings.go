// Package settings persists user preferences as key=value lines.
//
// Each line holds one setting; the value is a TOML literal (quoted string,
// integer, boolean or array). Lines that do not parse are skipped on load,
// and keys are written in sorted order on save.
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotFound is returned by typed getters for keys that were never set
	ErrNotFound = errors.New("settings: key not found")

	// ErrType is returned by typed getters when the stored value has another kind
	ErrType = errors.New("settings: value has a different type")
)

var settingLine = regexp.MustCompile(`^\s*(\w+)\s*=\s*(.*?)\s*$`)

// Settings is an in-memory settings map bound to a file, with per-key observers
type Settings struct {
	path      string
	values    map[string]any
	observers map[string][]func(any)
}

// New creates an empty settings store that loads from and saves to path
func New(path string) *Settings {
	return &Settings{
		path:      path,
		values:    make(map[string]any),
		observers: make(map[string][]func(any)),
	}
}

// Path returns the backing file path
func (s *Settings) Path() string { return s.path }

// SetDefaults stores each value whose key is not set yet. Observers are not notified.
func (s *Settings) SetDefaults(defaults map[string]any) {
	for key, value := range defaults {
		if _, ok := s.values[key]; !ok {
			s.values[key] = value
		}
	}
}

// Get returns the raw value stored under key
func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and notifies the key's observers
func (s *Settings) Set(key string, value any) {
	s.values[key] = value
	for _, fn := range s.observers[key] {
		fn(value)
	}
}

// Subscribe registers fn for changes to key and immediately calls it with the current value, if any
func (s *Settings) Subscribe(key string, fn func(any)) {
	if v, ok := s.values[key]; ok {
		fn(v)
	}
	s.observers[key] = append(s.observers[key], fn)
}

// Len returns the number of stored settings
func (s *Settings) Len() int { return len(s.values) }

// String returns the string stored under key
func (s *Settings) String(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", ErrType, key, v)
	}
	return str, nil
}

// Int returns the integer stored under key
func (s *Settings) Int(key string) (int, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T", ErrType, key, v)
	}
	return n, nil
}

// Bool returns the boolean stored under key
func (s *Settings) Bool(key string) (bool, error) {
	v, ok := s.values[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T", ErrType, key, v)
	}
	return b, nil
}

// Ints returns the integer array stored under key
func (s *Settings) Ints(key string) ([]int, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	switch arr := v.(type) {
	case []int:
		return append([]int(nil), arr...), nil
	case []int64:
		out := make([]int, len(arr))
		for i, n := range arr {
			out[i] = int(n)
		}
		return out, nil
	case []any:
		out := make([]int, len(arr))
		for i, elem := range arr {
			n, ok := toInt(elem)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] is %T", ErrType, key, i, elem)
			}
			out[i] = n
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s is %T", ErrType, key, v)
}

// Load merges the settings file into the store. A missing file is not an error.
func (s *Settings) Load() error {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return fmt.Errorf("read settings %s: %w", s.path, err)
	}
	for key, value := range values {
		s.Set(key, value)
	}
	return nil
}

// Save writes every setting to the file, replacing its contents
func (s *Settings) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	if err := Write(f, s.values); err != nil {
		f.Close()
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return f.Close()
}

// Parse reads key=value lines. Each line is decoded on its own; lines that do
// not look like a setting or whose value is not a valid literal are skipped.
func Parse(r io.Reader) (map[string]any, error) {
	values := make(map[string]any)
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		match := settingLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		value, err := decodeValue(match[2])
		if err != nil {
			log.Printf("settings: skipping line %d: %v", lineNo, err)
			continue
		}
		values[match[1]] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Write emits one key=value line per setting, keys in sorted order
func Write(w io.Writer, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bw := bufio.NewWriter(w)
	for _, key := range keys {
		literal, err := encodeValue(values[key])
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		fmt.Fprintf(bw, "%s=%s\n", key, literal)
	}
	return bw.Flush()
}

func encodeValue(value any) (string, error) {
	out, err := toml.Marshal(map[string]any{"value": value})
	if err != nil {
		return "", err
	}
	literal := strings.TrimSpace(string(out))
	return strings.TrimPrefix(literal, "value = "), nil
}

func decodeValue(literal string) (any, error) {
	if strings.TrimSpace(literal) == "" {
		return nil, errors.New("empty value")
	}
	var doc map[string]any
	if _, err := toml.Decode("value = "+literal, &doc); err != nil {
		return nil, err
	}
	return doc["value"], nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	}
	return 0, false
}
