package router

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// bindQuery fills the json-tagged fields of req from url query values.
// Only flat string, integer, float and bool fields are supported, which is
// all a GET endpoint here ever takes.
func bindQuery(values url.Values, req any) error {
	v := reflect.ValueOf(req).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		raw := values.Get(name)
		if raw == "" {
			continue
		}

		target := v.Field(i)
		switch target.Kind() {
		case reflect.String:
			target.SetString(raw)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value of %s: %w", name, err)
			}
			target.SetInt(n)

		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("invalid value of %s: %w", name, err)
			}
			target.SetFloat(f)

		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("invalid value of %s: %w", name, err)
			}
			target.SetBool(b)

		default:
			return fmt.Errorf("unsupported field type of %s", name)
		}
	}

	return nil
}
