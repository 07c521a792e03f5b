package ats

import (
	"regexp"
	"strings"
)

// Experience is one parsed work-history entry.
type Experience struct {
	Position string
	Company  string
	Period   string
}

// Education is one parsed education-history entry.
type Education struct {
	Degree      string
	Institution string
	Period      string
}

// CVDetail is the detail-view shape produced by field extraction. It is
// never consumed by the ranking path, only by a per-applicant detail
// handler, per spec §6.
type CVDetail struct {
	Summary    string
	Skills     []string
	Experience []Experience
	Education  []Education
}

var (
	bulletNormalizer = regexp.MustCompile(`\s*[•●]\s*`)

	summaryPattern = regexp.MustCompile(`(?is)(?:summary|profile|objective|ringkasan)\s*:?\s*\n?(.*?)(?:\n\n|\n\s*(?:skills|experience|education|keahlian|pengalaman|pendidikan))`)

	skillsPattern = regexp.MustCompile(`(?i)(?:skills|keahlian)\s*:?\s*\n?([\s\S]*?)(?:\n\n|\n\s*(?:experience|education|projects|pengalaman|pendidikan))`)
	skillsSplit   = regexp.MustCompile(`[\n,•-]\s*`)

	experiencePattern = regexp.MustCompile(`(?im)([A-Z][a-zA-Z\s,.-]+(?:developer|engineer|manager|analyst|intern|specialist|scientist))\s*(?:at|@|di)?\s*\n?([A-Z][a-zA-Z\s,.]+ Inc\.|Corp\.|Solutions|Agency|Net)\s*\n?\((.*?)\)`)

	educationPattern = regexp.MustCompile(`(?im)(B\.?Sc\.?|M\.?Sc\.?|Bachelor|Master|Sarjana|Ph\.?D)\s(?:of|in)?\s(.*?)\n(.*?University|.*?Institute of Technology|.*?Institut Teknologi.*?)\s*\n?\((.*?)\)`)
)

// CVFieldExtractor parses summary/skills/experience/education sections out
// of plain CV text using the same heuristic regex rules as the reference
// implementation it was ported from.
type CVFieldExtractor struct{}

// NewCVFieldExtractor returns a ready-to-use CVFieldExtractor. It holds no
// state, so a single instance may be shared freely.
func NewCVFieldExtractor() *CVFieldExtractor {
	return &CVFieldExtractor{}
}

// Extract parses text into a CVDetail. An empty text yields an explanatory
// placeholder summary and empty lists rather than an error.
func (CVFieldExtractor) Extract(text string) CVDetail {
	if text == "" {
		return CVDetail{Summary: "CV text is empty or unavailable."}
	}

	normalized := bulletNormalizer.ReplaceAllString(text, "\n- ")

	return CVDetail{
		Summary:    extractSummary(normalized),
		Skills:     extractSkills(normalized),
		Experience: extractExperience(normalized),
		Education:  extractEducation(normalized),
	}
}

func extractSummary(text string) string {
	m := summaryPattern.FindStringSubmatch(text)
	if m == nil {
		return "Summary not found."
	}
	return strings.ReplaceAll(strings.TrimSpace(m[1]), "\n", " ")
}

func extractSkills(text string) []string {
	m := skillsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var skills []string
	for _, s := range skillsSplit.Split(strings.TrimSpace(m[1]), -1) {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func extractExperience(text string) []Experience {
	matches := experiencePattern.FindAllStringSubmatch(text, -1)
	experiences := make([]Experience, 0, len(matches))
	for _, m := range matches {
		experiences = append(experiences, Experience{
			Position: strings.TrimSpace(m[1]),
			Company:  strings.TrimSpace(m[2]),
			Period:   strings.TrimSpace(m[3]),
		})
	}
	return experiences
}

func extractEducation(text string) []Education {
	matches := educationPattern.FindAllStringSubmatch(text, -1)
	educations := make([]Education, 0, len(matches))
	for _, m := range matches {
		educations = append(educations, Education{
			Degree:      strings.TrimSpace(m[1]) + " in " + strings.TrimSpace(m[2]),
			Institution: strings.TrimSpace(m[3]),
			Period:      strings.TrimSpace(m[4]),
		})
	}
	return educations
}
