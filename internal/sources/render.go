package sources

import (
	"fmt"
	"strings"

	"campusmind/internal/professor"
)

// snippetLimit caps web-search snippets, counted in runes on the raw text
// with no word-boundary handling.
const snippetLimit = 150

// noSourcesLine is rendered whenever a response cites nothing; the sources
// region is never silently omitted.
const noSourcesLine = "_No specific sources cited for this response._"

// AgentTypeLabel maps a backend agent_type to its display name.
func AgentTypeLabel(agentType string) string {
	switch agentType {
	case "professor":
		return "Professor Information System"
	case "transfer":
		return "Transfer Knowledge Base"
	case "recommendation":
		return "Program Recommendation Engine"
	case "browser":
		return "Web Search Engine"
	case "error":
		return "Error Handling System"
	default:
		return "General Knowledge Base"
	}
}

// RenderMarkdown projects a payload into a markdown sources block, one
// section per present channel. Safe on a nil payload.
func RenderMarkdown(p *SourcesPayload) string {
	summary := Normalize(p)
	if !summary.HasAny() {
		return noSourcesLine
	}

	var sb strings.Builder

	if summary.HasKnowledgeBase {
		sb.WriteString("**From Official Handbooks:**\n\n")
		for _, entry := range p.KnowledgeBase {
			sb.WriteString("- " + renderKnowledgeBaseEntry(entry) + "\n")
		}
		sb.WriteString("\n")
	}

	if summary.HasSearch {
		sb.WriteString("**From Web Search:**\n\n")
		for _, entry := range p.Search {
			sb.WriteString(renderSearchEntry(entry))
		}
	}

	if summary.HasProfessor {
		sb.WriteString("**Professor Information:**\n\n")
		sb.WriteString(renderProfessorCard(professor.Extract(p.ProfessorDB)))
	}

	if summary.HasSchools {
		sb.WriteString("**School Information:**\n\n")
		for _, school := range p.Schools {
			sb.WriteString("- " + renderSchoolRecord(school) + "\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func renderKnowledgeBaseEntry(entry KnowledgeBaseEntry) string {
	hb, known := LookupHandbook(entry.Metadata.Source)
	ref := "(General Reference)"
	if entry.Metadata.Page != nil {
		ref = fmt.Sprintf("(Page %d)", *entry.Metadata.Page)
	}
	if known {
		return fmt.Sprintf("[%s](%s) %s", hb.Label, hb.URL, ref)
	}
	return fmt.Sprintf("%s %s", hb.Label, ref)
}

func renderSearchEntry(entry WebSearchEntry) string {
	var sb strings.Builder

	label := entry.Source
	if label == "" {
		label = "Web Source"
	}
	sb.WriteString("- **" + label + "**\n")

	if entry.Content != "" {
		sb.WriteString("  _" + Truncate(entry.Content, snippetLimit) + "_\n")
	} else {
		sb.WriteString("  _Content details not available_\n")
	}

	if entry.URL != "" {
		sb.WriteString("  [View Source](" + entry.URL + ")\n")
	} else {
		sb.WriteString("  Source link unavailable\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderSchoolRecord(school SchoolRecord) string {
	name := school.Name
	if name == "" {
		name = "School"
	}
	if school.URLs.Website != "" {
		return fmt.Sprintf("%s [(Visit Website)](%s)", name, school.URLs.Website)
	}
	return name + " (Website unavailable)"
}

func renderProfessorCard(info professor.Info) string {
	if info.IsEmpty() {
		return fmt.Sprintf("_Limited information available from [Rate My Professors](%s)_\n\n",
			professor.RateMyProfessorsURL)
	}

	var sb strings.Builder

	if info.HasBasicInfo() {
		writeField(&sb, "Name", info.Name)
		writeField(&sb, "Department", info.Department)
		writeField(&sb, "School", info.School)
	}
	if info.HasRatings() {
		writeNumber(&sb, "Rating", info.Rating, "%.1f/5")
		writeNumber(&sb, "Difficulty", info.Difficulty, "%.1f/5")
		writeNumber(&sb, "Would Take Again", info.WouldTakeAgain, "%.0f%%")
		writeNumber(&sb, "Reviews", info.NumRatings, "%.0f")
	}
	if info.HasContactInfo() {
		writeField(&sb, "Office", info.Office)
		writeField(&sb, "Office Hours", info.OfficeHours)
		writeField(&sb, "Email", info.Email)
		writeField(&sb, "Phone", info.Phone)
	}
	if info.HasAcademicInfo() {
		writeField(&sb, "Expertise", info.Expertise)
		if len(info.Courses) > 0 {
			writeField(&sb, "Courses", strings.Join(info.Courses, ", "))
		}
	}
	if info.HasTags() {
		writeField(&sb, "Tags", strings.Join(info.Tags, ", "))
	}

	sb.WriteString(fmt.Sprintf("\n_Data from [Rate My Professors](%s)_\n\n",
		professor.RateMyProfessorsURL))
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	if value != "" {
		sb.WriteString(fmt.Sprintf("- **%s:** %s\n", label, value))
	}
}

func writeNumber(sb *strings.Builder, label string, value *float64, format string) {
	if value != nil {
		sb.WriteString(fmt.Sprintf("- **%s:** "+format+"\n", label, *value))
	}
}

// Truncate cuts s to at most limit runes, appending an ellipsis when
// anything was removed.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
