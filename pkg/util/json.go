package util

import (
	"encoding/json"
	"io"

	"github.com/tidwall/pretty"
)

// prettyOptions indents with two spaces and keeps the original key order.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// PrettyJSON re-indents a JSON document without reordering its keys.
// The result always ends with a newline.
func PrettyJSON(raw []byte) []byte {
	return pretty.PrettyOptions(raw, prettyOptions)
}

// WriteIndentedJSON encodes v to w with two-space indentation.
func WriteIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
