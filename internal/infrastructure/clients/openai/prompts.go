package openai

import (
	"fmt"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

const coachingSystemPrompt = `You are a supportive pitch coach. You receive one structural issue detected ` +
	`in a founder's practice pitch. Reply with 2-3 short sentences of plain-text encouragement: acknowledge ` +
	`one thing that worked, explain the issue in simple terms, and restate the suggested next action. ` +
	`Never invent facts about the pitch beyond what you are given. No markdown, no lists, no emoji.`

func buildCoachingUserPrompt(issue *entities.PrimaryIssue, durationSeconds float64) string {
	evidence := "none"
	if issue.EvidenceQuote != nil && *issue.EvidenceQuote != "" {
		evidence = fmt.Sprintf("%q", *issue.EvidenceQuote)
	}
	return fmt.Sprintf(
		"Pitch duration: %.0f seconds\nIssue: %s\nTitle: %s\nGuideline: %s\nSuggested next action: %s\nEvidence from transcript: %s\n",
		durationSeconds, issue.Key, issue.Title, issue.Guideline, issue.NextAction, evidence,
	)
}
