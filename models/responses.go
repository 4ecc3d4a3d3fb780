package models

// Source is one grounding citation attached to a model reply.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Reply is what the model client hands back to the orchestrator: the reply
// text plus whatever grounding sources the upstream response carried, in
// chunk order and without deduplication.
type Reply struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}
