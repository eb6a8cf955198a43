package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
)

// toFields turns a result struct into its JSON object form.
func toFields(result any) (map[string]any, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return fields, nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case nil:
		return ""
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}

// markdownTable lays the fields out as a two-column table sorted by name.
// The explanation, when present, follows the table as a paragraph.
func markdownTable(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != "explanation" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString("| Field | Value |\n|---|---:|\n")
	for _, k := range keys {
		value := strings.ReplaceAll(formatValue(fields[k]), "|", `\|`)
		fmt.Fprintf(&b, "| %s | %s |\n", k, value)
	}

	if explanation, ok := fields["explanation"].(string); ok && explanation != "" {
		b.WriteString("\n")
		b.WriteString(explanation)
		b.WriteString("\n")
	}
	return b.String()
}

func renderTable(fields map[string]any, style string) (string, error) {
	out, err := glamour.Render(markdownTable(fields), style)
	if err != nil {
		return "", fmt.Errorf("rendering result: %w", err)
	}
	return out, nil
}
