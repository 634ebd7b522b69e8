package sources

// Summary reports which source channels a response actually carries. The
// four flags are computed independently; an absent channel and an empty
// channel both read as not present.
type Summary struct {
	HasKnowledgeBase bool
	HasSearch        bool
	HasProfessor     bool
	HasSchools       bool
}

// HasAny reports whether the response cited anything at all. When false the
// UI renders an explicit no-sources line rather than omitting the region.
func (s Summary) HasAny() bool {
	return s.HasKnowledgeBase || s.HasSearch || s.HasProfessor || s.HasSchools
}

// Normalize classifies a payload into its channel-presence summary. It is a
// pure function and safe on a nil payload. The professor channel is a single
// record, not a list, so presence is existence rather than a length check:
// an empty record is still present and renders the limited-information
// fallback.
func Normalize(p *SourcesPayload) Summary {
	if p == nil {
		return Summary{}
	}
	return Summary{
		HasKnowledgeBase: len(p.KnowledgeBase) > 0,
		HasSearch:        len(p.Search) > 0,
		HasProfessor:     p.ProfessorDB != nil,
		HasSchools:       len(p.Schools) > 0,
	}
}
