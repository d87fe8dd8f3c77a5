package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const masked = "********"

// MarshalEnv renders the non-zero env-tagged fields of the struct c points
// to as .env lines, in field order. Fields tagged `mask:"true"` are printed
// with their value hidden.
func MarshalEnv(c any) (string, error) {
	rv := reflect.ValueOf(c)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("env: expected pointer to struct, got %T", c)
	}
	v := rv.Elem()
	t := v.Type()

	var sb strings.Builder
	for i := range v.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		val := v.Field(i)
		if val.IsZero() {
			continue
		}

		text := masked
		if field.Tag.Get("mask") != "true" {
			text = quote(formatValue(val))
		}
		fmt.Fprintf(&sb, "%s=%s\n", key, text)
	}
	return sb.String(), nil
}

// formatValue renders v the way caarlos0/env parses it back: Stringers such
// as time.Duration use their own text form and slices are comma joined.
func formatValue(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Slice:
		items := make([]string, v.Len())
		for i := range items {
			items[i] = formatValue(v.Index(i))
		}
		return strings.Join(items, ",")
	default:
		return fmt.Sprint(v.Interface())
	}
}

// quote wraps values godotenv would otherwise split or truncate.
func quote(s string) string {
	if strings.ContainsAny(s, " \t#\"'\n") {
		return strconv.Quote(s)
	}
	return s
}
