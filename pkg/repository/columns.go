package repository

import (
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// ColumnType is how a board column stores its value.
type ColumnType string

const (
	ColumnTypeText   ColumnType = "text"
	ColumnTypeStatus ColumnType = "status"
	ColumnTypeLink   ColumnType = "link"
	ColumnTypeDate   ColumnType = "date"
)

func (x ColumnType) valid() bool {
	switch x {
	case ColumnTypeText, ColumnTypeStatus, ColumnTypeLink, ColumnTypeDate:
		return true
	}
	return false
}

// ColumnSpec is the board column a semantic key is written to. An empty Type is
// inferred from the column ID, then from the written value.
type ColumnSpec struct {
	ID   types.ColumnID `yaml:"id"`
	Type ColumnType     `yaml:"type"`
}

// UnmarshalYAML accepts either a bare column ID or a mapping with id and type.
func (x *ColumnSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		x.ID = types.ColumnID(node.Value)
		return nil
	}

	type raw ColumnSpec
	var r raw
	if err := node.Decode(&r); err != nil {
		return goerr.Wrap(ErrInvalidInput.Wrap(err), "invalid column spec", goerr.V("line", node.Line))
	}
	*x = ColumnSpec(r)
	return nil
}

// ColumnMap maps semantic column keys to board columns. Keys absent from the map
// are written to a column of the same ID.
type ColumnMap map[types.ColumnKey]ColumnSpec

// LoadColumnMap reads a YAML document of semantic key to column spec.
func LoadColumnMap(r io.Reader) (ColumnMap, error) {
	var m ColumnMap
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return nil, goerr.Wrap(ErrInvalidInput.Wrap(err), "failed to decode column map")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (x ColumnMap) Validate() error {
	known := make(map[types.ColumnKey]struct{})
	for _, key := range types.AllColumnKeys() {
		known[key] = struct{}{}
	}

	seen := make(map[types.ColumnID]types.ColumnKey)
	for key, spec := range x {
		if _, ok := known[key]; !ok {
			return goerr.Wrap(ErrInvalidInput, "unknown column key", goerr.V("key", key))
		}
		if spec.ID == "" {
			return goerr.Wrap(ErrInvalidInput, "column ID is empty", goerr.V("key", key))
		}
		if spec.Type != "" && !spec.Type.valid() {
			return goerr.Wrap(ErrInvalidInput, "unknown column type", goerr.V("key", key), goerr.V("type", spec.Type))
		}
		if other, ok := seen[spec.ID]; ok {
			return goerr.Wrap(ErrInvalidInput, "column ID is mapped twice", goerr.V("id", spec.ID), goerr.V("keys", []types.ColumnKey{other, key}))
		}
		seen[spec.ID] = key
	}
	return nil
}

// Spec returns the column of key with its type resolved for value v.
func (x ColumnMap) Spec(key types.ColumnKey, v model.ColumnValue) ColumnSpec {
	spec, ok := x[key]
	if !ok {
		spec = ColumnSpec{ID: types.ColumnID(key)}
	}
	if spec.Type == "" {
		spec.Type = inferType(spec.ID, v.Kind)
	}
	return spec
}

// Key returns the semantic key written to column id.
func (x ColumnMap) Key(id types.ColumnID) (types.ColumnKey, bool) {
	for key, spec := range x {
		if spec.ID == id {
			return key, true
		}
	}
	for _, key := range types.AllColumnKeys() {
		if _, mapped := x[key]; !mapped && types.ColumnID(key) == id {
			return key, true
		}
	}
	return "", false
}

// inferType follows monday.com column ID prefixes, then the kind of the written value.
func inferType(id types.ColumnID, kind model.ColumnKind) ColumnType {
	switch s := string(id); {
	case strings.HasPrefix(s, "color_"), strings.HasPrefix(s, "status"):
		return ColumnTypeStatus
	case strings.HasPrefix(s, "link_"):
		return ColumnTypeLink
	case strings.HasPrefix(s, "date_"):
		return ColumnTypeDate
	case strings.HasPrefix(s, "text_"):
		return ColumnTypeText
	}

	switch kind {
	case model.ColumnLabel:
		return ColumnTypeStatus
	case model.ColumnLink:
		return ColumnTypeLink
	case model.ColumnDate:
		return ColumnTypeDate
	default:
		return ColumnTypeText
	}
}
