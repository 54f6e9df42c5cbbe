// Package schema extracts JSON-Schema-shaped tool input descriptors from
// structured docstrings. The parser is a forgiving line scanner: malformed
// declarations are skipped and unrecognized type tokens degrade to the
// permissive "object" type, so extraction always yields a usable schema.
package schema

import (
	"strconv"
	"strings"

	"github.com/mcpkit/mcp-http-go/mcp"
)

const argumentsHeading = "# Arguments"

// FromDocstring parses a documentation block into a tool input schema.
//
// The expected format is an "# Arguments" section whose parameter lines look
// like:
//
//	* `name` - Description of the parameter (type: string, default: "anon")
//
// The section ends at the first blank line. A parameter with no default
// annotation is required. Absent or empty sections produce an empty object
// schema.
func FromDocstring(doc string) mcp.ToolInputSchema {
	out := mcp.ToolInputSchema{
		Type:       "object",
		Properties: map[string]mcp.SchemaProperty{},
		Required:   []string{},
	}

	start := strings.Index(doc, argumentsHeading)
	if start < 0 {
		return out
	}
	section := doc[start:]
	if end := strings.Index(section, "\n\n"); end >= 0 {
		section = section[:end]
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "*") {
			continue
		}

		nameStart := strings.Index(line, "`")
		if nameStart < 0 {
			continue
		}
		nameEnd := strings.Index(line[nameStart+1:], "`")
		if nameEnd < 0 {
			continue
		}
		name := line[nameStart+1 : nameStart+1+nameEnd]
		rest := line[nameStart+1+nameEnd+1:]

		prop := mcp.SchemaProperty{Type: "object"}
		hasDefault := false

		if parenStart := strings.Index(rest, "("); parenStart >= 0 {
			if parenEnd := strings.Index(rest[parenStart:], ")"); parenEnd >= 0 {
				annotations := rest[parenStart+1 : parenStart+parenEnd]

				if i := strings.Index(annotations, "type:"); i >= 0 {
					token := annotations[i+len("type:"):]
					if comma := strings.Index(token, ","); comma >= 0 {
						token = token[:comma]
					}
					prop.Type = TypeOf(strings.TrimSpace(token))
				}

				if i := strings.Index(annotations, "default:"); i >= 0 {
					raw := annotations[i+len("default:"):]
					if comma := strings.Index(raw, ","); comma >= 0 {
						raw = raw[:comma]
					}
					prop.Default = parseDefault(strings.TrimSpace(raw))
					hasDefault = true
				}
			}
		}

		if !hasDefault {
			out.Required = append(out.Required, name)
		}

		if dash := strings.Index(rest, "-"); dash >= 0 {
			desc := strings.TrimSpace(rest[dash+1:])
			desc = strings.SplitN(desc, "(type:", 2)[0]
			desc = strings.SplitN(desc, "(default:", 2)[0]
			if desc = strings.TrimSpace(desc); desc != "" {
				prop.Description = desc
			}
		}

		out.Properties[name] = prop
	}

	return out
}

// TypeOf maps a type token from a docstring annotation to its JSON-Schema
// type name. Matching is case-sensitive; unrecognized tokens map to "object".
func TypeOf(token string) string {
	switch token {
	case "string", "String", "&str":
		return "string"
	case "number", "f32", "f64":
		return "number"
	case "integer", "usize", "u32", "u64", "i32", "i64":
		return "integer"
	case "boolean", "bool":
		return "boolean"
	default:
		return "object"
	}
}

// ForType builds a single-property schema node for the given type token,
// using the same mapping as TypeOf.
func ForType(token string) mcp.SchemaProperty {
	return mcp.SchemaProperty{Type: TypeOf(token)}
}

// parseDefault interprets a default annotation value, trying integer, float,
// and boolean literals before falling back to a quote-stripped string.
func parseDefault(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if raw == "true" || raw == "false" {
		return raw == "true"
	}
	return strings.Trim(strings.Trim(raw, `"`), "'")
}
