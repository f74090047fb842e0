package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tarun0648/Resume-Analyser/internal/config"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

// Offline batch analyzer: runs every PDF in a directory through the analysis
// services against a job description file and prints a ranked summary, no
// server or database required.
//
//	go run scripts/analyze_resumes.go ./resumes job_description.txt
func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <resume-dir> <job-description-file>", os.Args[0])
	}
	resumeDir := os.Args[1]
	jobDescriptionPath := os.Args[2]

	log.Println("🚀 Starting offline resume analysis...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	jobDescriptionBytes, err := os.ReadFile(jobDescriptionPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}
	jobDescription := strings.TrimSpace(string(jobDescriptionBytes))

	client := services.NewClaudeClient(cfg.Claude.APIKey, cfg.Claude.BaseURL, cfg.Claude.Timeout)
	pdfParser := services.NewPDFParserService()
	verifier := services.NewDocumentVerifier(client)
	extractor := services.NewStructuredExtractor(client)
	matcher := services.NewMatchScorer(client)

	entries, err := os.ReadDir(resumeDir)
	if err != nil {
		log.Fatalf("❌ Failed to read resume directory: %v", err)
	}

	type ranked struct {
		Filename string
		Name     string
		Score    int
		Label    string
	}

	ctx := context.Background()
	var results []ranked
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(resumeDir, entry.Name())
		log.Printf("\n📄 Processing: %s", entry.Name())

		text, err := pdfParser.ExtractPlainText(path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}
		text = services.CleanText(text)

		verification := verifier.Verify(ctx, text)
		if services.ConfidentlyNotResume(verification) {
			log.Printf("   ❌ Not a resume: %s", verification.Reason)
			failCount++
			continue
		}

		profile, err := extractor.Extract(ctx, text)
		if err != nil {
			log.Printf("   ❌ Extraction failed: %v", err)
			failCount++
			continue
		}
		log.Printf("   ✅ Extracted profile for %s", profile.PersonalInformation.Name)

		analysis, err := matcher.Match(ctx, profile, jobDescription)
		if err != nil {
			log.Printf("   ❌ Match analysis failed: %v", err)
			failCount++
			continue
		}
		log.Printf("   📊 Score: %d (%s)", analysis.MatchScore, analysis.MatchLabel)

		results = append(results, ranked{
			Filename: entry.Name(),
			Name:     profile.PersonalInformation.Name,
			Score:    analysis.MatchScore,
			Label:    analysis.MatchLabel,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Analysis Summary:")
	log.Printf("   ✅ Analyzed: %d resumes", len(results))
	log.Printf("   ❌ Failed: %d resumes", failCount)
	for i, r := range results {
		log.Printf("   %d. %s (%s): %d/100 %s", i+1, r.Name, r.Filename, r.Score, r.Label)
	}
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
