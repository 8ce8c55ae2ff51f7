package monday

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
)

type columnValue struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	Text  *string `json:"text"`
	Value *string `json:"value"`
}

type linkValue struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type dateValue struct {
	Date string `json:"date"`
}

type statusValue struct {
	Label string `json:"label"`
}

// encodeColumns builds the column_values JSON string of create_item and
// change_multiple_column_values.
func encodeColumns(columns repository.ColumnMap, values model.ColumnValues) (string, error) {
	out := make(map[types.ColumnID]any)
	for key, v := range values.Compact() {
		spec := columns.Spec(key, v)

		switch spec.Type {
		case repository.ColumnTypeStatus:
			out[spec.ID] = statusValue{Label: v.Text}
		case repository.ColumnTypeLink:
			text := v.Text
			if text == "" {
				text = v.URL
			}
			out[spec.ID] = linkValue{URL: v.URL, Text: text}
		case repository.ColumnTypeDate:
			date := v.Text
			// date columns take YYYY-MM-DD only
			if len(date) > 10 {
				date = date[:10]
			}
			out[spec.ID] = dateValue{Date: date}
		default:
			text := v.Text
			if v.Kind == model.ColumnLink {
				text = v.URL
			}
			out[spec.ID] = text
		}
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", goerr.Wrap(repository.ErrInvalidInput.Wrap(err), "failed to encode column values")
	}
	return string(raw), nil
}

func decodeColumns(columns repository.ColumnMap, raw []columnValue) model.ColumnValues {
	out := make(model.ColumnValues)
	for _, c := range raw {
		key, ok := columns.Key(types.ColumnID(c.ID))
		if !ok {
			continue
		}

		var text string
		if c.Text != nil {
			text = *c.Text
		}

		var v model.ColumnValue
		switch c.Type {
		case "status", "color":
			v = model.Label(text)
		case "link":
			var link linkValue
			if c.Value != nil {
				_ = json.Unmarshal([]byte(*c.Value), &link)
			}
			v = model.Link(link.URL, link.Text)
		case "date":
			var date dateValue
			if c.Value != nil {
				_ = json.Unmarshal([]byte(*c.Value), &date)
			}
			v = model.Date(date.Date)
		default:
			v = model.Text(text)
		}

		if !v.IsEmpty() {
			out[key] = v
		}
	}
	return out
}
