package professor

// Section grouping for display. Each display section renders only when at
// least one of its constituent fields resolved; a record where no section
// has data renders the limited-information fallback instead.

// RateMyProfessorsURL is the external lookup offered when a record resolves
// nothing useful.
const RateMyProfessorsURL = "https://www.ratemyprofessors.com"

// HasBasicInfo reports whether the name/department/school section has data.
func (i Info) HasBasicInfo() bool {
	return i.Name != "" || i.Department != "" || i.School != ""
}

// HasRatings reports whether any of the four numeric fields resolved.
func (i Info) HasRatings() bool {
	return i.Rating != nil || i.Difficulty != nil || i.WouldTakeAgain != nil || i.NumRatings != nil
}

// HasContactInfo reports whether the contact section has data.
func (i Info) HasContactInfo() bool {
	return i.Office != "" || i.OfficeHours != "" || i.Email != "" || i.Phone != ""
}

// HasAcademicInfo reports whether the expertise/courses section has data.
func (i Info) HasAcademicInfo() bool {
	return i.Expertise != "" || len(i.Courses) > 0
}

// HasTags reports whether any student tags resolved.
func (i Info) HasTags() bool {
	return len(i.Tags) > 0
}

// IsEmpty reports whether no section resolved anything.
func (i Info) IsEmpty() bool {
	return !i.HasBasicInfo() && !i.HasRatings() && !i.HasContactInfo() &&
		!i.HasAcademicInfo() && !i.HasTags()
}
