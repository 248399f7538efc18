// Package utils extracts structured data from LLM reply text.
package utils

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// fenced markdown code block, optionally tagged ```json
	codeBlockRE = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9_+-]*\\n)?(.*?)\\n?```")
	// first object or array span in free text
	jsonSpanRE = regexp.MustCompile(`(?s)\{.*\}|\[.*\]`)
)

// ErrNoJSON is returned when no parsable JSON value is found in a reply.
var ErrNoJSON = errors.New("no JSON value found in response")

// ExtractJSON pulls a JSON value out of reply text and unmarshals it
// into v. Candidates are tried in order: the contents of a fenced code
// block, the first object/array span, then the raw text. Only the first
// matched candidate is parsed; if it is not valid JSON the whole
// extraction fails rather than falling through.
func ExtractJSON(text string, v any) error {
	candidate := strings.TrimSpace(text)
	if m := codeBlockRE.FindStringSubmatch(text); m != nil {
		candidate = strings.TrimSpace(m[1])
	} else if m := jsonSpanRE.FindString(text); m != "" {
		candidate = m
	}

	if !gjson.Valid(candidate) {
		return ErrNoJSON
	}
	return json.Unmarshal([]byte(candidate), v)
}
