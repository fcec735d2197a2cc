// Package filter runs JMESPath expressions against a mapping.
//
// The mapping is queried in its JSON export form, an array of
// {"from": ..., "to": ...} objects in file order:
//
//	[?from=='ب'].to | [0]       the English key for ب
//	[?to=='q'].from             Persian characters typed with q
//	length(@)                   number of entries
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// Apply evaluates expression against the mapping and returns indented JSON.
// A single string result is returned without quotes.
func Apply(m *keymap.Mapping, expression string) (string, error) {
	data, err := keymap.EncodeJSON(m)
	if err != nil {
		return "", err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(doc)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	switch v := result.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}
