package demo

import (
	"github.com/mitchellh/mapstructure"

	"github.com/monejava/neptune-demo/internal/types"
)

// unknown is shown for a missing string column.
const unknown = "Unknown"

// Greeting is the row of a hello query.
type Greeting struct {
	Message string `mapstructure:"message"`
}

// CreatedSample is the row returned by the Bolt create statement.
type CreatedSample struct {
	Person1 string `mapstructure:"person1"`
	Person2 string `mapstructure:"person2"`
	Company string `mapstructure:"company"`
}

// Person is a row of the persons queries.
type Person struct {
	Name string `mapstructure:"name"`
	Age  int64  `mapstructure:"age"`
}

// Employment is a row of the Bolt relationships query.
type Employment struct {
	Person       string `mapstructure:"person"`
	Relationship string `mapstructure:"relationship"`
	Company      string `mapstructure:"company"`
}

// Relationship is a row of the Data API relationships query.
type Relationship struct {
	Person1      string `mapstructure:"person1"`
	Relationship string `mapstructure:"relationship"`
	Person2      string `mapstructure:"person2"`
}

// decodeRow decodes a record into out. Values are converted weakly (a float age
// becomes an integer); fields whose column is missing or null keep their current value.
func decodeRow(record map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return types.WrapError(ErrCodeRowDecoding, "failed to create row decoder", err)
	}

	if err := decoder.Decode(record); err != nil {
		return types.WrapError(ErrCodeRowDecoding, "failed to decode row", err)
	}
	return nil
}

// decodeRows decodes every record, starting each row from zero.
func decodeRows[T any](records []map[string]any, zero T) ([]T, error) {
	rows := make([]T, 0, len(records))
	for _, record := range records {
		row := zero
		if err := decodeRow(record, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
