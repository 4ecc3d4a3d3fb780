package sessions

import (
	"fmt"
	"strings"

	"github.com/ongiao-ai/tutorchat/models"
)

// MergeCitations appends grounding sources to the first text part of a model
// message, as a "references" block of one markdown link per line. Sources
// missing either title or uri are skipped; the rest keep their order and are
// not deduplicated. The input message is never mutated: callers get a fresh
// value, applied exactly once before the store append.
func MergeCitations(msg models.Message, sources []models.Source) models.Message {
	var links []string
	for _, src := range sources {
		if src.Title == "" || src.URI == "" {
			continue
		}
		links = append(links, fmt.Sprintf("[%s](%s)", src.Title, src.URI))
	}
	if len(links) == 0 {
		return msg
	}

	out := models.Message{Role: msg.Role, Parts: make([]models.Part, len(msg.Parts))}
	copy(out.Parts, msg.Parts)
	for i, p := range out.Parts {
		if tp, ok := p.(models.TextPart); ok {
			tp.Text += SourcesHeader + strings.Join(links, "\n")
			out.Parts[i] = tp
			break
		}
	}
	return out
}
