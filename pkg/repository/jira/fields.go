package jira

import (
	"fmt"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
)

// encodeFields converts values to Jira field values. Status columns are select
// lists, the others are plain strings.
func encodeFields(columns repository.ColumnMap, values model.ColumnValues) map[string]any {
	out := make(map[string]any)
	for key, v := range values.Compact() {
		spec := columns.Spec(key, v)
		switch spec.Type {
		case repository.ColumnTypeStatus:
			out[string(spec.ID)] = map[string]string{"value": v.Text}
		case repository.ColumnTypeLink:
			out[string(spec.ID)] = v.URL
		case repository.ColumnTypeDate:
			date := v.Text
			if len(date) > 10 {
				date = date[:10]
			}
			out[string(spec.ID)] = date
		default:
			text := v.Text
			if v.Kind == model.ColumnLink {
				text = v.URL
			}
			out[string(spec.ID)] = text
		}
	}
	return out
}

func decodeFields(columns repository.ColumnMap, fields map[string]any) model.ColumnValues {
	out := make(model.ColumnValues)
	for id, raw := range fields {
		key, ok := columns.Key(types.ColumnID(id))
		if !ok || raw == nil {
			continue
		}

		var v model.ColumnValue
		switch value := raw.(type) {
		case map[string]any:
			label, _ := value["value"].(string)
			v = model.Label(label)
		case string:
			switch columns.Spec(key, model.Text(value)).Type {
			case repository.ColumnTypeLink:
				v = model.Link(value, value)
			case repository.ColumnTypeDate:
				v = model.Date(value)
			default:
				v = model.Text(value)
			}
		default:
			v = model.Text(fmt.Sprint(value))
		}

		if !v.IsEmpty() {
			out[key] = v
		}
	}
	return out
}
