package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/database"
	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/search"
	"github.com/pitchflow-app/pitchflow/backend/internal/application/services"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/postgres"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/typesense"
	"github.com/pitchflow-app/pitchflow/backend/pkg/config"
)

type seedSession struct {
	session           entities.PracticeSession
	segments          []entities.Segment
	baselineSessionID string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	var searchRepo repositories.AnalysisSearchRepository
	if tsClient, err := typesense.NewClient(&cfg.Typesense); err == nil {
		adapter := search.NewTypesenseAdapter(tsClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Typesense schema init failed, seeding without search: %v", err)
		} else {
			searchRepo = adapter
		}
	} else {
		log.Printf("Typesense unavailable, seeding without search: %v", err)
	}

	analysisRepo := database.NewAnalysisAdapter(pgClient)
	sessionRepo := database.NewSessionAdapter(pgClient)
	sessionService := services.NewSessionService(sessionRepo)
	analysisService := services.NewAnalysisService(analysisRepo, searchRepo, nil, nil, nil, nil)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				session_analyses,
				practice_sessions
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	now := time.Now().UTC()
	seeds := []seedSession{
		{
			session: entities.PracticeSession{
				ID:              "seed-parking-1",
				UserID:          "demo-user",
				Title:           "Parking pitch — first attempt",
				DurationSeconds: 58,
				CreatedAt:       now.Add(-48 * time.Hour),
			},
			segments: []entities.Segment{
				{Start: 0, End: 22, Text: "Our app lets you reserve a parking spot before you leave home. You open the map, pick a garage, and the spot is held for you."},
				{Start: 22, End: 38, Text: "Drivers struggle to find parking downtown and lose hours every week circling the block."},
				{Start: 38, End: 58, Text: "We charge a monthly subscription per driver. The backend already handles our pilot traffic."},
			},
		},
		{
			session: entities.PracticeSession{
				ID:              "seed-parking-2",
				UserID:          "demo-user",
				Title:           "Parking pitch — second attempt",
				DurationSeconds: 55,
				CreatedAt:       now.Add(-24 * time.Hour),
			},
			segments: []entities.Segment{
				{Start: 0, End: 14, Text: "Drivers struggle to find parking downtown and lose hours every week circling the block."},
				{Start: 14, End: 32, Text: "Our solution is an app that reserves the spot before you leave home. Unlike existing apps, the reservation is guaranteed."},
				{Start: 32, End: 55, Text: "We charge a monthly subscription per driver. The backend already handles our pilot traffic."},
			},
			baselineSessionID: "seed-parking-1",
		},
		{
			session: entities.PracticeSession{
				ID:              "seed-tutoring-1",
				UserID:          "demo-user-2",
				Title:           "Tutoring marketplace pitch",
				DurationSeconds: 50,
				CreatedAt:       now.Add(-6 * time.Hour),
			},
			segments: []entities.Segment{
				{Start: 0, End: 16, Text: "Parents waste hours every week searching for tutors their kids actually like."},
				{Start: 16, End: 34, Text: "We built a marketplace whose machine learning matches students to tutors by learning style. Our prototype already matches with high accuracy."},
				{Start: 34, End: 50, Text: "We take a commission on every booked lesson, plus premium pricing for exam prep."},
			},
		},
	}

	for _, seed := range seeds {
		s := seed.session
		if err := sessionService.Create(ctx, &s); err != nil {
			log.Printf("Failed to create session %s: %v", s.Title, err)
			continue
		}

		result, err := analysisService.Analyze(ctx, &services.AnalyzeRequest{
			SessionID:         s.ID,
			Segments:          seed.segments,
			DurationSeconds:   s.DurationSeconds,
			BaselineSessionID: seed.baselineSessionID,
		})
		if err != nil {
			log.Printf("Failed to analyze session %s: %v", s.Title, err)
			continue
		}
		log.Printf("Seeded %s: primary issue %s", s.Title, result.PrimaryIssue.Key)
	}

	log.Println("Seeding completed successfully")
}
