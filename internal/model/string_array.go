package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringArray maps a Postgres text[] column. GORM's datatypes package only
// covers JSON, so scanning/valuing the array literal is done here.
type StringArray []string

func (StringArray) GormDataType() string {
	return "text[]"
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	parts := make([]string, len(a))
	for i, s := range a {
		escaped := strings.ReplaceAll(s, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		parts[i] = `"` + escaped + `"`
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}

	var literal string
	switch v := src.(type) {
	case string:
		literal = v
	case []byte:
		literal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", src)
	}

	parsed, err := parseArrayLiteral(literal)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// parseArrayLiteral decodes a Postgres array literal like {a,"b c",d}.
func parseArrayLiteral(literal string) ([]string, error) {
	literal = strings.TrimSpace(literal)
	if len(literal) < 2 || literal[0] != '{' || literal[len(literal)-1] != '}' {
		return nil, fmt.Errorf("invalid array literal: %q", literal)
	}
	inner := literal[1 : len(literal)-1]
	if inner == "" {
		return []string{}, nil
	}

	var (
		out      []string
		current  strings.Builder
		inQuotes bool
		escaped  bool
	)
	flush := func() {
		val := current.String()
		if !inQuotes && val == "NULL" {
			val = ""
		}
		out = append(out, val)
		current.Reset()
	}
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case escaped:
			current.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()
	return out, nil
}
