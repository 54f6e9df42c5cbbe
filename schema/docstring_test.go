package schema

import (
	"encoding/json"
	"testing"
)

func TestFromDocstring_FullAnnotations(t *testing.T) {
	doc := "Echoes a message back to the caller.\n" +
		"\n" +
		"# Arguments\n" +
		"* `message` - The message to echo (type: string)\n" +
		"* `count` - Repeat count (type: integer, default: 1)\n" +
		"* `loud` - Uppercase the output (type: boolean, default: false)\n"

	s := FromDocstring(doc)
	if s.Type != "object" {
		t.Fatalf("type = %q", s.Type)
	}
	if len(s.Properties) != 3 {
		dump, _ := json.Marshal(s)
		t.Fatalf("got %d properties: %s", len(s.Properties), dump)
	}

	msg := s.Properties["message"]
	if msg.Type != "string" || msg.Description != "The message to echo" || msg.Default != nil {
		t.Fatalf("message = %+v", msg)
	}
	count := s.Properties["count"]
	if count.Type != "integer" || count.Default != int64(1) {
		t.Fatalf("count = %+v", count)
	}
	loud := s.Properties["loud"]
	if loud.Type != "boolean" || loud.Default != false {
		t.Fatalf("loud = %+v", loud)
	}

	if len(s.Required) != 1 || s.Required[0] != "message" {
		t.Fatalf("required = %v, want [message]", s.Required)
	}
}

func TestFromDocstring_DefaultImpliesOptional(t *testing.T) {
	s := FromDocstring("# Arguments\n* `x` - A number (type: integer, default: 10)\n")

	x := s.Properties["x"]
	if x.Type != "integer" {
		t.Fatalf("type = %q", x.Type)
	}
	if x.Default != int64(10) {
		t.Fatalf("default = %v (%T)", x.Default, x.Default)
	}
	for _, name := range s.Required {
		if name == "x" {
			t.Fatal("parameter with default must not be required")
		}
	}
}

func TestFromDocstring_NoArgumentsSection(t *testing.T) {
	s := FromDocstring("Does something useful.\n\nNo parameters here.")

	if s.Type != "object" {
		t.Fatalf("type = %q", s.Type)
	}
	if s.Properties == nil || len(s.Properties) != 0 {
		t.Fatalf("properties = %v", s.Properties)
	}
	if s.Required == nil || len(s.Required) != 0 {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestFromDocstring_SectionEndsAtBlankLine(t *testing.T) {
	doc := "# Arguments\n" +
		"* `kept` - Inside the section (type: string)\n" +
		"\n" +
		"# Returns\n" +
		"* `dropped` - Outside the section (type: string)\n"

	s := FromDocstring(doc)
	if _, ok := s.Properties["kept"]; !ok {
		t.Fatal("parameter before blank line missing")
	}
	if _, ok := s.Properties["dropped"]; ok {
		t.Fatal("parameter after blank line should be ignored")
	}
}

func TestFromDocstring_SkipsMalformedLines(t *testing.T) {
	doc := "# Arguments\n" +
		"* no backticks at all\n" +
		"* `half backticked\n" +
		"not a bullet `x`\n" +
		"* `good` - Survives (type: string)\n"

	s := FromDocstring(doc)
	if len(s.Properties) != 1 {
		dump, _ := json.Marshal(s)
		t.Fatalf("got %d properties: %s", len(s.Properties), dump)
	}
	if _, ok := s.Properties["good"]; !ok {
		t.Fatal("well-formed line missing")
	}
}

func TestFromDocstring_MissingTypeDefaultsToObject(t *testing.T) {
	s := FromDocstring("# Arguments\n* `blob` - Anything goes\n")

	if got := s.Properties["blob"].Type; got != "object" {
		t.Fatalf("type = %q, want object", got)
	}
	if len(s.Required) != 1 || s.Required[0] != "blob" {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestFromDocstring_DefaultParsing(t *testing.T) {
	cases := []struct {
		name string
		line string
		want any
	}{
		{"integer", "* `v` - (default: 42)", int64(42)},
		{"float", "* `v` - (default: 3.14)", 3.14},
		{"true", "* `v` - (default: true)", true},
		{"false", "* `v` - (default: false)", false},
		{"double_quoted", "* `v` - (default: \"anon\")", "anon"},
		{"single_quoted", "* `v` - (default: 'world')", "world"},
		{"bare_string", "* `v` - (default: hello)", "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := FromDocstring("# Arguments\n" + tc.line + "\n")
			if got := s.Properties["v"].Default; got != tc.want {
				t.Fatalf("default = %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestFromDocstring_DescriptionStripsAnnotations(t *testing.T) {
	s := FromDocstring("# Arguments\n* `city` - City name to look up (type: string, default: \"Berlin\")\n")

	city := s.Properties["city"]
	if city.Description != "City name to look up" {
		t.Fatalf("description = %q", city.Description)
	}
	if city.Default != "Berlin" {
		t.Fatalf("default = %v", city.Default)
	}
}

func TestTypeOf(t *testing.T) {
	cases := map[string]string{
		"string":  "string",
		"String":  "string",
		"&str":    "string",
		"number":  "number",
		"f32":     "number",
		"f64":     "number",
		"integer": "integer",
		"usize":   "integer",
		"u32":     "integer",
		"u64":     "integer",
		"i32":     "integer",
		"i64":     "integer",
		"boolean": "boolean",
		"bool":    "boolean",
		"Vec<u8>": "object",
		"STRING":  "object",
		"":        "object",
	}
	for token, want := range cases {
		if got := TypeOf(token); got != want {
			t.Fatalf("TypeOf(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestForType(t *testing.T) {
	if got := ForType("u64"); got.Type != "integer" {
		t.Fatalf("ForType(u64) = %+v", got)
	}
	if got := ForType("HashMap"); got.Type != "object" {
		t.Fatalf("ForType(HashMap) = %+v", got)
	}
}
