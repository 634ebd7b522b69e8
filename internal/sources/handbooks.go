package sources

// Handbook is the resolved identity of a known handbook document.
type Handbook struct {
	URL   string
	Label string
}

// handbooks maps the exact filenames the ingestion pipeline produces to
// their canonical public URLs and display labels. Lookup is exact-string
// only; anything unknown renders under its raw filename with no link.
var handbooks = map[string]Handbook{
	"hbson-student-handbook.pdf": {
		URL:   "https://www.hunter.cuny.edu/pending-migration/nursing/hbson-student-handbook.pdf",
		Label: "Hunter College - Nursing Student Handbook",
	},
	"Student_Handbook (1).pdf": {
		URL:   "https://www.brooklyn.edu/wp-content/uploads/Student_Handbook.pdf",
		Label: "Brooklyn College - Student Handbook",
	},
	"StudentHandbook.pdf": {
		URL:   "https://www.citytech.cuny.edu/current-student/docs/StudentHandbook.pdf",
		Label: "City Tech - Student Handbook",
	},
	"StudentHandbook (1).pdf": {
		URL:   "https://www.citytech.cuny.edu/current-student/docs/StudentHandbook.pdf",
		Label: "City Tech - Student Handbook",
	},
}

// LookupHandbook resolves a citation filename. On a miss the filename itself
// becomes the label and ok is false, meaning no link should be rendered.
func LookupHandbook(filename string) (Handbook, bool) {
	if hb, ok := handbooks[filename]; ok {
		return hb, true
	}
	return Handbook{Label: filename}, false
}
