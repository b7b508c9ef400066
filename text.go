package textmcp

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	// ProcessTextToolName is the name process_text is registered under
	ProcessTextToolName = "process_text"

	// ProcessTextToolDescription is shown to clients listing tools
	ProcessTextToolDescription = "Process text: return the original text, its uppercase form and its length in Unicode code points"
)

// TextInput is the argument object of the process_text tool
type TextInput struct {
	Text string `json:"text" jsonschema:"Text to process"`
}

// TextRecord holds the derived views of one input text.
//
// Length counts Unicode code points, not bytes. Uppercase is produced by the
// simple one-to-one case mapping, so it always has Length code points too.
type TextRecord struct {
	Original  string `json:"original"  jsonschema:"The input text, unmodified"`
	Uppercase string `json:"uppercase" jsonschema:"The input text mapped to uppercase"`
	Length    int    `json:"length"    jsonschema:"Number of Unicode code points in the input"`
}

// ProcessText derives a TextRecord from text.
// Text that is not valid UTF-8 is rejected with an error matching ErrInvalidInput.
func ProcessText(text string) (TextRecord, error) {
	if !utf8.ValidString(text) {
		return TextRecord{}, InvalidInputError("text is not valid UTF-8")
	}

	return TextRecord{
		Original:  text,
		Uppercase: strings.ToUpper(text),
		Length:    utf8.RuneCountInString(text),
	}, nil
}

// processText is the ToolFunc behind process_text
func processText(_ context.Context, input TextInput) (TextRecord, error) {
	return ProcessText(input.Text)
}
