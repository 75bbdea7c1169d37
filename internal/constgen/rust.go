package constgen

import (
	"fmt"
	"strings"
)

// rustHeader suppresses the unused-constant and naming-convention lints for
// the whole generated file.
const rustHeader = "#![allow(dead_code)]\n#![allow(non_upper_case_globals)]\n"

// RenderRust emits the records as Rust const declarations. This is pure
// string concatenation: names, types, and values land in the output exactly
// as configured, with no escaping or validation.
func RenderRust(consts []Const) []byte {
	var b strings.Builder
	b.WriteString(rustHeader)
	for _, c := range consts {
		fmt.Fprintf(&b, "pub const %s: %s = %s;\n", c.Name, c.Type, c.Value)
	}
	return []byte(b.String())
}
