package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/scribe/internal/logging"
	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/prompt"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Kind names the domain value a document describes.
type Kind string

const (
	KindAuthor  Kind = "author"
	KindContent Kind = "content"
	KindFeed    Kind = "feed"
)

// KeyKind is the optional document key that selects the Kind explicitly.
const KeyKind = "kind"

// Loader reads author, content and feed documents from a filesystem.
type Loader struct {
	fs     afero.Fs
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New creates a Loader over fs.
func New(fs afero.Fs, opts ...Option) *Loader {
	l := &Loader{
		fs:     fs,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the document at path and returns the renderable value it describes.
// YAML (.yaml, .yml) and JSON (.json) files are supported.
func (l *Loader) Load(path string) (prompt.Renderable, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	raw, err := parse(path, data)
	if err != nil {
		return nil, err
	}

	r, kind, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	l.logger.Debug("document loaded", "path", path, "kind", kind)
	return r, nil
}

func parse(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyDocument)
	}
	return raw, nil
}

// Decode converts a generic document into an Author, Content or Feed.
// The kind comes from the "kind" key when present, otherwise it is inferred from
// the fields: "items" means feed, "author" means content, "handle" means author.
// Unknown keys and fractional numbers for integer fields are rejected.
func Decode(raw map[string]any) (prompt.Renderable, Kind, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, "", err
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != KeyKind {
			fields[k] = v
		}
	}
	raw = fields

	switch kind {
	case KindAuthor:
		var a domain.Author
		err = decode(raw, &a)
		return a, kind, err
	case KindContent:
		var c domain.Content
		err = decode(raw, &c)
		return c, kind, err
	default:
		var f domain.Feed
		err = decode(raw, &f)
		return f, kind, err
	}
}

func kindOf(raw map[string]any) (Kind, error) {
	if v, ok := raw[KeyKind]; ok {
		s, _ := v.(string)
		switch k := Kind(strings.ToLower(s)); k {
		case KindAuthor, KindContent, KindFeed:
			return k, nil
		default:
			return "", fmt.Errorf("%w: %v", domain.ErrUnknownKind, v)
		}
	}

	switch {
	case has(raw, domain.KeyItems):
		return KindFeed, nil
	case has(raw, domain.KeyAuthor):
		return KindContent, nil
	case has(raw, domain.KeyHandle):
		return KindAuthor, nil
	}
	return "", domain.ErrEmptyDocument
}

func has(raw map[string]any, key string) bool {
	_, ok := raw[key]
	return ok
}

// integralHook refuses to truncate fractional numbers into integer fields.
func integralHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f := reflect.ValueOf(data).Float(); f != math.Trunc(f) {
			return nil, fmt.Errorf("%w: %v", domain.ErrNonIntegral, f)
		}
	}
	return data, nil
}

func decode(input any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			integralHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		),
		ErrorUnused: true,
		Result:      target,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
