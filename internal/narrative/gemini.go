package narrative

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"github.com/crewplan/backend/internal/costing"
	"github.com/crewplan/backend/internal/currency"
	"github.com/crewplan/backend/internal/models"
)

const defaultModel = "models/gemini-2.0-flash"

// GeminiSummarizer writes release summaries with the Gemini API.
//
// The API key is read from GEMINI_API_KEY, the model from GEMINI_MODEL.
// Every failure degrades to a fixed text carrying the derived totals, a
// broken summary service must never disrupt the rest of the session.
type GeminiSummarizer struct {
	Assumptions costing.Assumptions
}

var _ Summarizer = GeminiSummarizer{}

func (g GeminiSummarizer) Summarize(ctx context.Context, release models.Release, resources []models.Resource, allocations []models.Allocation) string {
	breakdown := g.Assumptions.ReleaseBreakdown(release, resources, allocations)

	key, _ := os.LookupEnv("GEMINI_API_KEY")
	if key == "" {
		log.Warn().Str("release", release.Name).Msg("GEMINI_API_KEY is not set, using the fallback summary")
		return fallback(release, resources, allocations, breakdown)
	}

	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(key))
	if err != nil {
		log.Warn().Err(err).Str("release", release.Name).Msg("summary service could not be initialized, using the fallback summary")
		return fallback(release, resources, allocations, breakdown)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	request := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt(release, resources, breakdown)}},
			},
		},
	}

	response, err := svc.Models.GenerateContent(model, request).Context(ctx).Do()
	if err != nil {
		log.Warn().Err(err).Str("release", release.Name).Str("model", model).Msg("summary request failed, using the fallback summary")
		return fallback(release, resources, allocations, breakdown)
	}

	var text strings.Builder
	if len(response.Candidates) > 0 && response.Candidates[0].Content != nil {
		for _, part := range response.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
	}

	summary := strings.TrimSpace(text.String())
	if summary == "" {
		log.Warn().Str("release", release.Name).Str("model", model).Msg("summary response was empty, using the fallback summary")
		return fallback(release, resources, allocations, breakdown)
	}

	return summary
}

// prompt renders the aggregated cost data for the model. The model only
// ever sees derived numbers, never the raw collections.
func prompt(release models.Release, resources []models.Resource, breakdown costing.Breakdown) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a resource planning assistant. Summarize the staffing plan for the release %q in at most three sentences, written for a project sponsor.\n", release.Name)

	months := release.Months()
	if len(months) == 0 {
		b.WriteString("The release has no planning window yet.\n")
	} else {
		fmt.Fprintf(&b, "Planning window: %s to %s.\n", release.StartMonth, release.EndMonth)
	}

	fmt.Fprintf(&b, "Total planned cost: %s.\n", currency.Format(breakdown.TotalUSD, "USD"))

	if len(breakdown.ByMonth) > 0 {
		b.WriteString("Cost by month:\n")

		tokens := make([]string, 0, len(breakdown.ByMonth))
		for token := range breakdown.ByMonth {
			tokens = append(tokens, token)
		}
		sort.Strings(tokens)

		for _, token := range tokens {
			fmt.Fprintf(&b, "- %s: %s\n", token, currency.Format(breakdown.ByMonth[token], "USD"))
		}
	}

	if len(resources) > 0 {
		b.WriteString("Cost by resource:\n")
		for _, resource := range resources {
			fmt.Fprintf(&b, "- %s (%s, %s): %s\n", resource.Name, resource.Role, resource.Location, currency.Format(breakdown.ByResource[resource.ID], "USD"))
		}
	}

	return b.String()
}

// fallback is the summary used whenever the external service cannot
// deliver one.
func fallback(release models.Release, resources []models.Resource, allocations []models.Allocation, breakdown costing.Breakdown) string {
	known := make(map[uuid.UUID]struct{}, len(resources))
	for _, resource := range resources {
		known[resource.ID] = struct{}{}
	}

	booked := make(map[uuid.UUID]struct{})
	for _, allocation := range allocations {
		if _, ok := known[allocation.ResourceID]; !ok {
			continue
		}
		if allocation.ReleaseID == release.ID {
			booked[allocation.ResourceID] = struct{}{}
		}
	}

	total := currency.Format(breakdown.TotalUSD, "USD")

	months := release.Months()
	if len(months) == 0 {
		return fmt.Sprintf("%s has no planning window yet. %d resources are booked, the total planned cost is %s.", release.Name, len(booked), total)
	}

	return fmt.Sprintf("%s runs from %s to %s. %d resources are booked over %d months, the total planned cost is %s.",
		release.Name, release.StartMonth, release.EndMonth, len(booked), len(months), total)
}
