// Package professor resolves canonical fields from the backend's professor
// records. The record shape drifts between backend versions: canonical data
// may sit flat on the record, one level down under "professor_info", or two
// levels down under "data.professor_info", and individual fields arrive
// under several alias keys. Extraction tries every known shape in order and
// degrades field-by-field; it never fails.
package professor

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Info is a professor record with every canonical field resolved. Pointer
// fields are nil when no alias carried a usable value.
type Info struct {
	Name       string
	Department string
	School     string

	Rating         *float64
	Difficulty     *float64
	WouldTakeAgain *float64
	NumRatings     *float64

	Office      string
	OfficeHours string
	Email       string
	Phone       string

	Expertise string
	Courses   []string
	Tags      []string
}

// Alias chains per canonical field, ordered by how recent backend versions
// name them. The first alias whose value is usable wins.
var (
	nameAliases       = []string{"name", "professor_name", "full_name"}
	departmentAliases = []string{"department", "dept", "department_name"}
	schoolAliases     = []string{"school", "school_name", "college", "university"}

	ratingAliases     = []string{"avg_rating", "rating", "overall_rating", "score"}
	difficultyAliases = []string{"avg_difficulty", "difficulty", "difficulty_rating"}
	takeAgainAliases  = []string{"would_take_again_percent", "would_take_again", "take_again_percent"}
	numRatingsAliases = []string{"num_ratings", "review_count", "ratings_count", "num_reviews"}

	officeAliases      = []string{"office", "office_location"}
	officeHoursAliases = []string{"office_hours", "hours"}
	emailAliases       = []string{"email", "email_address", "contact_email"}
	phoneAliases       = []string{"phone", "phone_number", "contact_phone"}

	expertiseAliases = []string{"expertise", "specialization", "research_interests"}
	coursesAliases   = []string{"courses", "classes", "courses_taught"}
	tagsAliases      = []string{"tags", "top_tags"}
)

// Extract resolves an Info from a raw professor record. It is pure and
// idempotent: the same record always yields the same Info.
func Extract(record map[string]any) Info {
	base := selectBase(record)
	return Info{
		Name:       stringField(base, nameAliases),
		Department: stringField(base, departmentAliases),
		School:     stringField(base, schoolAliases),

		Rating:         numberField(base, ratingAliases),
		Difficulty:     numberField(base, difficultyAliases),
		WouldTakeAgain: numberField(base, takeAgainAliases),
		NumRatings:     numberField(base, numRatingsAliases),

		Office:      stringField(base, officeAliases),
		OfficeHours: stringField(base, officeHoursAliases),
		Email:       stringField(base, emailAliases),
		Phone:       stringField(base, phoneAliases),

		Expertise: stringField(base, expertiseAliases),
		Courses:   listField(base, coursesAliases),
		Tags:      listField(base, tagsAliases),
	}
}

// selectBase picks the object canonical fields live on: nested
// professor_info shapes first, then the record itself.
func selectBase(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}
	if nested, ok := record["professor_info"].(map[string]any); ok {
		return nested
	}
	if data, ok := record["data"].(map[string]any); ok {
		if nested, ok := data["professor_info"].(map[string]any); ok {
			return nested
		}
	}
	return record
}

// usable filters the sentinel non-values the backend emits in place of
// missing data: nil, blank strings, and the literal "N/A".
func usable(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" || strings.EqualFold(trimmed, "N/A") {
			return false
		}
	}
	return true
}

func firstAlias(base map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := base[key]; ok && usable(v) {
			return v, true
		}
	}
	return nil, false
}

func stringField(base map[string]any, aliases []string) string {
	v, ok := firstAlias(base, aliases)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// numberField coerces the first usable alias to a number. A value that does
// not coerce is treated as absent, not as an error.
func numberField(base map[string]any, aliases []string) *float64 {
	for _, key := range aliases {
		v, ok := base[key]
		if !ok || !usable(v) {
			continue
		}
		if n, ok := coerceNumber(v); ok {
			return &n
		}
	}
	return nil
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// listField accepts either a JSON array of strings or a single
// comma-separated string.
func listField(base map[string]any, aliases []string) []string {
	v, ok := firstAlias(base, aliases)
	if !ok {
		return nil
	}
	switch items := v.(type) {
	case []any:
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok && usable(s) {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return items
	case string:
		var out []string
		for _, part := range strings.Split(items, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}
