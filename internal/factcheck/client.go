package factcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Google Fact Check Tools API endpoint.
const DefaultBaseURL = "https://factchecktools.googleapis.com/v1alpha1"

// ErrUpstream reports that the fact check search itself could not complete.
// A successful response with zero claims is not an error.
var ErrUpstream = errors.New("fact check upstream unavailable")

// ClaimReview is one externally sourced assessment of a claim. Missing
// upstream fields are defaulted ("N/A", "#") rather than dropped so partial
// data still renders.
type ClaimReview struct {
	Claim         string `json:"claim"`
	FactChecker   string `json:"fact_checker"`
	Rating        string `json:"verdict"`
	URL           string `json:"url"`
	ReviewDate    string `json:"review_date,omitempty"`
	SeverityScore int    `json:"severity_score"`
}

// Client queries the claims:search endpoint of a fact check provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a fact check client. baseURL may be empty to use the
// Google endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Stay well under the API's free-tier quota
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// searchResponse mirrors the claims:search payload
type searchResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			TextualRating string `json:"textualRating"`
			URL           string `json:"url"`
			ReviewDate    string `json:"reviewDate"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// Search fans out the query to the fact check provider and returns one
// ClaimReview per claim/review pair found. Every review carries the
// severity score of the query text. Zero claims yields an empty slice, not
// an error.
func (c *Client) Search(ctx context.Context, query string) ([]ClaimReview, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	apiURL := fmt.Sprintf("%s/claims:search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", ErrUpstream, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUpstream, err)
	}

	severity := AssignSeverity(query)

	reviews := []ClaimReview{}
	for _, claim := range payload.Claims {
		claimText := claim.Text
		if claimText == "" {
			claimText = query
		}
		for _, review := range claim.ClaimReview {
			r := ClaimReview{
				Claim:         claimText,
				FactChecker:   review.Publisher.Name,
				Rating:        review.TextualRating,
				URL:           review.URL,
				ReviewDate:    review.ReviewDate,
				SeverityScore: severity,
			}
			if r.FactChecker == "" {
				r.FactChecker = "N/A"
			}
			if r.Rating == "" {
				r.Rating = "N/A"
			}
			if r.URL == "" {
				r.URL = "#"
			}
			reviews = append(reviews, r)
		}
	}

	return reviews, nil
}
