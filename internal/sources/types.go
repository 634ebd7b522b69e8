// Package sources models the loosely-typed "sources" payload attached to
// assistant responses and turns it into something renderable. The backend
// emits up to four independent channels (knowledge base, web search,
// professor record, school records); each may be missing, empty, or
// malformed, and none of that is allowed to surface as an error.
package sources

import "encoding/json"

// KnowledgeBaseEntry is a citation into an ingested handbook document.
type KnowledgeBaseEntry struct {
	Metadata KnowledgeBaseMetadata `json:"metadata"`
}

// KnowledgeBaseMetadata carries the document filename and optional page.
type KnowledgeBaseMetadata struct {
	Source string `json:"source"`
	Page   *int   `json:"page,omitempty"`
}

// WebSearchEntry is a single web search hit. Every field is optional.
type WebSearchEntry struct {
	Title   string `json:"title,omitempty"`
	Source  string `json:"source,omitempty"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
}

// SchoolRecord is a school database hit.
type SchoolRecord struct {
	Name string     `json:"name,omitempty"`
	URLs SchoolURLs `json:"urls,omitempty"`
}

// SchoolURLs holds the known links for a school.
type SchoolURLs struct {
	Website string `json:"website,omitempty"`
}

// SourcesPayload is the tagged union of the four source channels. The
// professor channel stays loosely typed; its shape varies by backend version
// and is resolved by package professor.
type SourcesPayload struct {
	KnowledgeBase []KnowledgeBaseEntry `json:"knowledge_base,omitempty"`
	Search        []WebSearchEntry     `json:"search,omitempty"`
	ProfessorDB   map[string]any       `json:"professor_db,omitempty"`
	Schools       []SchoolRecord       `json:"school_db,omitempty"`
}

// UnmarshalJSON decodes each channel independently so one malformed channel
// does not take down the rest. It is total over any JSON value: non-object
// payloads and undecodable channels come back as absent, never as an error.
func (p *SourcesPayload) UnmarshalJSON(data []byte) error {
	*p = SourcesPayload{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	if ch, ok := raw["knowledge_base"]; ok {
		var entries []KnowledgeBaseEntry
		if err := json.Unmarshal(ch, &entries); err == nil {
			p.KnowledgeBase = entries
		}
	}
	if ch, ok := raw["search"]; ok {
		var entries []WebSearchEntry
		if err := json.Unmarshal(ch, &entries); err == nil {
			p.Search = entries
		}
	}
	if ch, ok := raw["professor_db"]; ok {
		var record map[string]any
		if err := json.Unmarshal(ch, &record); err == nil {
			p.ProfessorDB = record
		}
	}
	if ch, ok := raw["school_db"]; ok {
		var schools []SchoolRecord
		if err := json.Unmarshal(ch, &schools); err == nil {
			p.Schools = schools
		}
	}
	return nil
}
