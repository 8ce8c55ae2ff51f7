package model

import (
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

type ColumnKind string

const (
	ColumnText  ColumnKind = "text"
	ColumnLabel ColumnKind = "label"
	ColumnLink  ColumnKind = "link"
	ColumnDate  ColumnKind = "date"
)

// ColumnValue is a typed board cell. Link uses both Text and URL, others use Text only.
type ColumnValue struct {
	Kind ColumnKind `json:"kind"`
	Text string     `json:"text,omitempty"`
	URL  string     `json:"url,omitempty"`
}

func Text(v string) ColumnValue  { return ColumnValue{Kind: ColumnText, Text: v} }
func Label(v string) ColumnValue { return ColumnValue{Kind: ColumnLabel, Text: v} }
func Date(v string) ColumnValue  { return ColumnValue{Kind: ColumnDate, Text: v} }

func Link(url, text string) ColumnValue {
	return ColumnValue{Kind: ColumnLink, Text: text, URL: url}
}

func (x ColumnValue) IsEmpty() bool {
	if x.Kind == ColumnLink {
		return x.URL == ""
	}
	return x.Text == ""
}

type ColumnValues map[types.ColumnKey]ColumnValue

// Compact returns a copy without empty values.
func (x ColumnValues) Compact() ColumnValues {
	out := make(ColumnValues, len(x))
	for k, v := range x {
		if !v.IsEmpty() {
			out[k] = v
		}
	}
	return out
}

// Merge returns existing values overwritten by update. Columns absent from update are kept.
func (x ColumnValues) Merge(update ColumnValues) ColumnValues {
	out := make(ColumnValues, len(x)+len(update))
	for k, v := range x {
		out[k] = v
	}
	for k, v := range update.Compact() {
		out[k] = v
	}
	return out
}

func (x ColumnValues) Copy() ColumnValues {
	if x == nil {
		return nil
	}
	out := make(ColumnValues, len(x))
	for k, v := range x {
		out[k] = v
	}
	return out
}

type BoardItem struct {
	ID      types.ItemID `json:"id"`
	Name    string       `json:"name"`
	Columns ColumnValues `json:"columns"`
}

type BoardComment struct {
	ItemID types.ItemID `json:"item_id"`
	Body   string       `json:"body"`
}

type UpsertAction string

const (
	UpsertCreated UpsertAction = "created"
	UpsertUpdated UpsertAction = "updated"
	UpsertSkipped UpsertAction = "skipped"
)

type UpsertResult struct {
	Action UpsertAction `json:"action"`
	ItemID types.ItemID `json:"item_id,omitempty"`
}

func (x UpsertResult) Skipped() bool {
	return x.Action == UpsertSkipped
}

// CommitRef is the commit that caused an upsert. An empty ref makes event-driven upserts a no-op.
type CommitRef struct {
	ID      types.CommitSHA
	Message string
}
