package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/yvinc/203-proj1/internal/analysis"
)

// ListSeparator joins slice values inside a single CSV cell.
const ListSeparator = ";"

// CSV writes rows with a header taken from the csv struct tags.
func CSV(w io.Writer, rows []analysis.Row) error {
	return WriteCSV(w, rows)
}

// WriteCSV writes a slice of structs as CSV. Headers come from the `csv`
// tag of each exported field; slice fields are joined with ListSeparator.
func WriteCSV[T any](w io.Writer, data []T) error {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("data must be a slice of structs")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(analysis.TagNames(t, "csv")); err != nil {
		return err
	}

	for _, item := range data {
		v := reflect.ValueOf(item)
		if v.Kind() == reflect.Pointer {
			v = v.Elem()
		}

		record := make([]string, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Tag.Get("csv") == "-" {
				continue
			}
			record = append(record, formatValue(v.Field(i)))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, ListSeparator)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
