package llm

import "fmt"

// withInlineDocumentRef prepends a source-document reference line to the
// first user message. Used by providers without native file-part support;
// the Gemini provider attaches the document as a real part instead.
func withInlineDocumentRef(msgs []Message, ref string) []Message {
	if ref == "" {
		return msgs
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	for i := range out {
		if out[i].Role == RoleUser {
			out[i].Content = fmt.Sprintf("[source document: %s]\n\n%s", ref, out[i].Content)
			return out
		}
	}
	return out
}
