package trail

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ALT-F4-LLC/trailkit/internal/model"
)

// indent matches the layout the trail documents are published with.
const indent = "    "

// DecodeDocument parses a single-language trail document. Any failure is
// reported as a *model.MalformedDocumentError naming lang.
func DecodeDocument(lang model.Lang, data []byte) (*model.TrailDocument, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &model.MalformedDocumentError{Lang: lang, Err: errors.New("empty document")}
	}
	if trimmed[0] != '{' {
		return nil, &model.MalformedDocumentError{Lang: lang, Err: errors.New("document must be a JSON object")}
	}

	var doc model.TrailDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &model.MalformedDocumentError{Lang: lang, Err: err}
	}
	return &doc, nil
}

// EncodeDocument renders a trail document as indented JSON with non-ASCII
// text and HTML-significant characters written literally.
func EncodeDocument(doc *model.TrailDocument) ([]byte, error) {
	out := *doc
	if out.Media == nil {
		out.Media = []model.MediaRef{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", doc.TrailID, err)
	}
	return unescapeLineSeparators(buf.Bytes()), nil
}

// unescapeLineSeparators rewrites the \u2028 and \u2029 escapes that
// encoding/json always emits into the literal characters. An escaped
// backslash followed by "u2028" is text, not an escape, and is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if seq := b[i:min(i+6, len(b))]; string(seq) == `\u2028` || string(seq) == `\u2029` {
			if seq[5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// OutputFileName returns the download name for a trail document, e.g.
// "carmel-01_he.json".
func OutputFileName(trailID string, lang model.Lang) string {
	return fmt.Sprintf("%s_%s.json", strings.TrimSpace(trailID), lang)
}
