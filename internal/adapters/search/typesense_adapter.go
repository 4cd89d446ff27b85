package search

import (
	"context"
	"fmt"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
	tsclient "github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

const collectionName = "session_analyses"

// TypesenseAdapter indexes analyzed sessions for transcript search.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.AnalysisSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "session_id", Type: "string"},
			{Name: "primary_issue_key", Type: "string", Facet: pointer.True()},
			{Name: "evidence_quote", Type: "string", Optional: pointer.True()},
			{Name: "transcript", Type: "string"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("created_at"),
	}

	if _, err := a.client.Client().Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index upserts one analyzed session into the collection.
func (a *TypesenseAdapter) Index(ctx context.Context, analysis *entities.SessionAnalysis) error {
	quote := ""
	if analysis.PrimaryIssue.EvidenceQuote != nil {
		quote = *analysis.PrimaryIssue.EvidenceQuote
	}

	document := map[string]interface{}{
		"id":                analysis.SessionID,
		"session_id":        analysis.SessionID,
		"primary_issue_key": analysis.PrimaryIssue.Key,
		"evidence_quote":    quote,
		"transcript":        analysis.Transcript,
		"created_at":        analysis.CreatedAt.Unix(),
	}

	if _, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document); err != nil {
		return fmt.Errorf("failed to index analysis: %w", err)
	}
	return nil
}

// Delete removes a session's analysis from the index.
func (a *TypesenseAdapter) Delete(ctx context.Context, sessionID string) error {
	if _, err := a.client.Client().Collection(collectionName).Document(sessionID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete analysis from index: %w", err)
	}
	return nil
}

// Search queries transcripts and evidence quotes.
func (a *TypesenseAdapter) Search(ctx context.Context, query string, limit int) ([]*repositories.AnalysisSearchHit, error) {
	if limit <= 0 {
		limit = 20
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("transcript,evidence_quote"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search analyses: %w", err)
	}

	hits := []*repositories.AnalysisSearchHit{}
	if result.Hits == nil {
		return hits, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		doc := *hit.Document

		out := &repositories.AnalysisSearchHit{}
		if v, ok := doc["session_id"].(string); ok {
			out.SessionID = v
		}
		if v, ok := doc["primary_issue_key"].(string); ok {
			out.PrimaryIssueKey = v
		}
		if v, ok := doc["evidence_quote"].(string); ok {
			out.EvidenceQuote = v
		}
		if v, ok := doc["created_at"].(float64); ok {
			out.CreatedAt = int64(v)
		}
		if hit.TextMatch != nil {
			out.Score = float64(*hit.TextMatch)
		}
		if hit.Highlights != nil && len(*hit.Highlights) > 0 {
			highlight := (*hit.Highlights)[0]
			if highlight.Snippet != nil {
				out.Snippet = *highlight.Snippet
			}
		}
		hits = append(hits, out)
	}

	return hits, nil
}
