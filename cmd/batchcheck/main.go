// batchcheck runs a list of claims through the fact check aggregator and
// prints a report summary for each one. Claims come from a file (one per
// line) or from a built-in sample list.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"clarifai/internal/factcheck"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

var sampleClaims = []string{
	"Drinking bleach can cure COVID-19.",
	"Vaccines cause autism in children.",
	"You should never use seat belts in a car because they're dangerous.",
	"Microwaving plastic containers can release toxic chemicals.",
	"Climate change is a hoax invented by scientists.",
	"The 2020 US Presidential Election was rigged and stolen.",
	"The moon landing was faked by NASA.",
	"Cryptocurrency is a guaranteed way to get rich quickly.",
	"Student loans are completely forgivable if you claim bankruptcy.",
	"Tom Hanks was arrested for child trafficking.",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		file     = flag.String("file", "", "file with one claim per line (default: built-in samples)")
		interval = flag.Duration("interval", time.Second, "minimum delay between upstream queries")
	)
	flag.Parse()

	apiKey := os.Getenv("FACTCHECK_API_KEY")
	if apiKey == "" {
		log.Fatal("FACTCHECK_API_KEY not set")
	}

	claims := sampleClaims
	if *file != "" {
		var err error
		claims, err = readClaims(*file)
		if err != nil {
			log.Fatal("Failed to read claims file:", err)
		}
	}

	client := factcheck.NewClient(os.Getenv("FACTCHECK_BASE_URL"), apiKey)
	limiter := rate.NewLimiter(rate.Every(*interval), 1)
	ctx := context.Background()

	for _, claim := range claims {
		if err := limiter.Wait(ctx); err != nil {
			log.Fatal(err)
		}

		reviews, err := client.Search(ctx, claim)
		if err != nil {
			log.Printf("Query failed for %q: %v", claim, err)
			continue
		}

		report := factcheck.Aggregate(claim, reviews)
		printReport(report)
	}
}

func readClaims(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var claims []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			claims = append(claims, line)
		}
	}
	return claims, scanner.Err()
}

func printReport(report factcheck.Report) {
	fmt.Printf("\nClaim: %s\n", report.Query)
	fmt.Printf("  Overall: %s (severity %.1f/10, %d reviews, %.0f%% false)\n",
		report.OverallLabel, report.AverageSeverity, report.CredibilityScore, report.FalsePercentage)
	for _, r := range report.Reviews {
		fmt.Printf("  - %s: %s (%s)\n", r.FactChecker, r.Rating, r.URL)
	}
}
