package sources

import "testing"

func TestLookupHandbookKnownFilenames(t *testing.T) {
	cases := []struct {
		filename string
		url      string
		label    string
	}{
		{
			"hbson-student-handbook.pdf",
			"https://www.hunter.cuny.edu/pending-migration/nursing/hbson-student-handbook.pdf",
			"Hunter College - Nursing Student Handbook",
		},
		{
			"Student_Handbook (1).pdf",
			"https://www.brooklyn.edu/wp-content/uploads/Student_Handbook.pdf",
			"Brooklyn College - Student Handbook",
		},
		{
			"StudentHandbook.pdf",
			"https://www.citytech.cuny.edu/current-student/docs/StudentHandbook.pdf",
			"City Tech - Student Handbook",
		},
		{
			"StudentHandbook (1).pdf",
			"https://www.citytech.cuny.edu/current-student/docs/StudentHandbook.pdf",
			"City Tech - Student Handbook",
		},
	}
	for _, tc := range cases {
		hb, ok := LookupHandbook(tc.filename)
		if !ok {
			t.Fatalf("%s: expected a known handbook", tc.filename)
		}
		if hb.URL != tc.url || hb.Label != tc.label {
			t.Fatalf("%s: got (%q, %q)", tc.filename, hb.URL, hb.Label)
		}
	}
}

func TestLookupHandbookMissUsesRawFilename(t *testing.T) {
	hb, ok := LookupHandbook("mystery-doc.pdf")
	if ok {
		t.Fatal("unknown filename must not resolve")
	}
	if hb.URL != "" {
		t.Fatalf("unknown filename must carry no link, got %q", hb.URL)
	}
	if hb.Label != "mystery-doc.pdf" {
		t.Fatalf("unknown filename must render literally, got %q", hb.Label)
	}
}

func TestLookupHandbookIsExactMatchOnly(t *testing.T) {
	// No normalization or fuzzy matching: case and spacing are significant.
	for _, name := range []string{"studenthandbook.pdf", "StudentHandbook.pdf ", "StudentHandbook"} {
		if _, ok := LookupHandbook(name); ok {
			t.Fatalf("%q should not match", name)
		}
	}
}
