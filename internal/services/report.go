package services

import (
	"fmt"
	"strings"

	"github.com/tarun0648/Resume-Analyser/internal/models"
)

// GenerateHiringReport renders a markdown hiring report from a completed match
// analysis.
func GenerateHiringReport(analysis *models.MatchAnalysis, jobTitle string) string {
	if analysis == nil {
		return "Unable to generate report due to analysis errors."
	}
	if jobTitle == "" {
		jobTitle = "Position"
	}

	var b strings.Builder

	fmt.Fprintf(&b, `
# HIRING ANALYSIS REPORT
## Position: %s

### OVERALL MATCH ASSESSMENT
- **Match Score**: %d/100
- **Match Level**: %s
- **Overall Assessment**: %s

### KEY STRENGTHS
`, jobTitle, analysis.MatchScore, analysis.MatchLabel, analysis.Summary)

	for i, strength := range analysis.Strengths {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strength)
	}

	b.WriteString("\n### AREAS OF CONCERN\n")
	for i, gap := range analysis.Gaps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, gap)
	}

	b.WriteString("\n### DETAILED BREAKDOWN\n")
	writeDimension(&b, "Technical Skills", analysis.DetailedAnalysis.TechnicalSkills)
	writeDimension(&b, "Experience Relevance", analysis.DetailedAnalysis.ExperienceRelevance)
	writeDimension(&b, "Education Alignment", analysis.DetailedAnalysis.EducationAlignment)
	writeDimension(&b, "Seniority Match", analysis.DetailedAnalysis.SeniorityMatch)

	if len(analysis.Recommendations) > 0 {
		b.WriteString("\n### RECOMMENDATIONS\n")
		for i, rec := range analysis.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	if len(analysis.InterviewFocusAreas) > 0 {
		b.WriteString("\n### INTERVIEW FOCUS AREAS\n")
		for i, area := range analysis.InterviewFocusAreas {
			fmt.Fprintf(&b, "%d. %s\n", i+1, area)
		}
	}

	return b.String()
}

func writeDimension(b *strings.Builder, name string, dim models.DimensionScore) {
	assessment := dim.Assessment
	if assessment == "" {
		assessment = "No assessment"
	}
	fmt.Fprintf(b, "- **%s**: %d/100 - %s\n", name, dim.Score, assessment)
}
