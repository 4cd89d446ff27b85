package analysis

import (
	"sort"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// Issue keys. Stable identifiers: they are persisted with each analysis and
// referenced by baseline comparisons, so renaming one invalidates stored
// sessions.
const (
	IssueProblemMissing        = "problem_missing"
	IssueProblemLate           = "problem_late"
	IssueInnovationMissing     = "innovation_missing"
	IssueBusinessModelMissing  = "business_model_missing"
	IssueTechnicalMissing      = "technical_missing"
	IssueSolutionBeforeProblem = "solution_before_problem"
	IssueNone                  = "none"
)

const (
	problemLateSeverityFloor = problemLateAfterSeconds
	problemLateSeverityCeil  = 60.0
)

// IssueGuidance is the hand-authored coaching content for one issue key.
type IssueGuidance struct {
	Title      string
	Guideline  string
	NextAction string
}

// issueCatalog maps every issue key to its static guidance. Content is
// configuration, not computation.
var issueCatalog = map[string]IssueGuidance{
	IssueProblemMissing: {
		Title:      "No clear problem statement",
		Guideline:  "Investors fund painkillers, not vitamins. A pitch without a named problem has nothing to anchor the rest of the story.",
		NextAction: "Open your next attempt with one sentence naming who has the problem and what it costs them.",
	},
	IssueProblemLate: {
		Title:      "Problem statement came too late",
		Guideline:  "The first twenty seconds decide whether the listener keeps listening. Burying the problem mid-pitch wastes that window.",
		NextAction: "Move your problem statement to the very first sentence of the pitch.",
	},
	IssueInnovationMissing: {
		Title:      "Innovation not articulated",
		Guideline:  "Listeners need to hear what makes this different from everything they've already seen.",
		NextAction: "Add one sentence contrasting your approach with existing alternatives.",
	},
	IssueBusinessModelMissing: {
		Title:      "Business model unclear",
		Guideline:  "A pitch that never says who pays, and how much, reads as a project rather than a business.",
		NextAction: "State plainly who pays you, how much, and how often.",
	},
	IssueTechnicalMissing: {
		Title:      "Technical feasibility not addressed",
		Guideline:  "Ambitious claims without any evidence of buildability invite skepticism.",
		NextAction: "Mention your prototype, pilot, or the concrete technology that makes this buildable.",
	},
	IssueSolutionBeforeProblem: {
		Title:      "Solution presented before the problem",
		Guideline:  "A solution only lands once the listener feels the problem it removes.",
		NextAction: "Reorder the pitch: state the problem first, then introduce your solution.",
	},
	IssueNone: {
		Title:      "Great pitch structure!",
		Guideline:  "All key elements were present and in order.",
		NextAction: "Keep practicing to tighten your delivery and timing.",
	},
}

// GuidanceFor returns the static guidance for an issue key, falling back to
// the sentinel entry for unknown keys.
func GuidanceFor(key string) IssueGuidance {
	if g, ok := issueCatalog[key]; ok {
		return g
	}
	return issueCatalog[IssueNone]
}

// issueRule is one row of the selector's ordered rule table. applies
// reports whether the rule fires, its severity, and the event whose
// timestamp/quote serve as evidence (nil when the issue is an absence).
type issueRule struct {
	priority int
	key      string
	applies  func(events map[entities.EventType]entities.DetectedEvent) (bool, float64, *entities.DetectedEvent)
}

// issueRules is evaluated top to bottom; lower priority number wins. The
// table shape keeps the priority order auditable separately from the scoring
// arithmetic.
var issueRules = []issueRule{
	{
		priority: 1,
		key:      IssueProblemMissing,
		applies: func(events map[entities.EventType]entities.DetectedEvent) (bool, float64, *entities.DetectedEvent) {
			ev := events[entities.EventProblem]
			return ev.Status == entities.StatusMissing, 1.0, nil
		},
	},
	{
		priority: 2,
		key:      IssueProblemLate,
		applies: func(events map[entities.EventType]entities.DetectedEvent) (bool, float64, *entities.DetectedEvent) {
			ev := events[entities.EventProblem]
			if ev.Status != entities.StatusLate {
				return false, 0, nil
			}
			// Scales linearly from 0 at 20s to 1 at 60s.
			severity := (ev.Timestamp - problemLateSeverityFloor) / (problemLateSeverityCeil - problemLateSeverityFloor)
			if severity > 1 {
				severity = 1
			}
			return true, severity, &ev
		},
	},
	{
		priority: 3,
		key:      IssueInnovationMissing,
		applies: func(events map[entities.EventType]entities.DetectedEvent) (bool, float64, *entities.DetectedEvent) {
			return events[entities.EventInnovation].Status == entities.StatusMissing, 0.8, nil
		},
	},
	{
		priority: 4,
		key:      IssueBusinessModelMissing,
		applies: func(events map[entities.EventType]entities.DetectedEvent) (bool, float64, *entities.DetectedEvent) {
			return events[entities.EventBusinessModel].Status == entities.StatusMissing, 0.7, nil
		},
	},
	{
		priority: 5,
		key:      IssueTechnicalMissing,
		applies: func(events map[entities.EventType]entities.DetectedEvent) (bool, float64, *entities.DetectedEvent) {
			return events[entities.EventTechnical].Status == entities.StatusMissing, 0.6, nil
		},
	},
	{
		priority: 6,
		key:      IssueSolutionBeforeProblem,
		applies: func(events map[entities.EventType]entities.DetectedEvent) (bool, float64, *entities.DetectedEvent) {
			problem := events[entities.EventProblem]
			solution := events[entities.EventSolution]
			if !solution.Detected() || !problem.Detected() {
				return false, 0, nil
			}
			if solution.Timestamp >= problem.Timestamp {
				return false, 0, nil
			}
			return true, 0.5, &solution
		},
	},
}

type issueCandidate struct {
	priority   int
	key        string
	severity   float64
	confidence float64
	evidence   *entities.DetectedEvent
}

// SelectPrimaryIssue picks the single issue the speaker should fix next.
// Candidates are ordered by rule priority; equal priorities (reserved for
// future rules) fall back to severity x confidence, descending. With no
// candidates the sentinel "none" issue is returned.
func SelectPrimaryIssue(events map[entities.EventType]entities.DetectedEvent) entities.PrimaryIssue {
	var candidates []issueCandidate
	for _, rule := range issueRules {
		ok, severity, evidence := rule.applies(events)
		if !ok {
			continue
		}
		confidence := 0.0
		if evidence != nil {
			confidence = evidence.Confidence
		}
		candidates = append(candidates, issueCandidate{
			priority:   rule.priority,
			key:        rule.key,
			severity:   severity,
			confidence: confidence,
			evidence:   evidence,
		})
	}

	if len(candidates) == 0 {
		guidance := issueCatalog[IssueNone]
		return entities.PrimaryIssue{
			Key:        IssueNone,
			Title:      guidance.Title,
			Guideline:  guidance.Guideline,
			NextAction: guidance.NextAction,
			Severity:   0,
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority < candidates[j].priority
		}
		return candidates[i].severity*candidates[i].confidence > candidates[j].severity*candidates[j].confidence
	})

	selected := candidates[0]
	guidance := issueCatalog[selected.key]
	issue := entities.PrimaryIssue{
		Key:        selected.key,
		Title:      guidance.Title,
		Guideline:  guidance.Guideline,
		NextAction: guidance.NextAction,
		Severity:   selected.severity,
	}
	if selected.evidence != nil {
		ts := selected.evidence.Timestamp
		quote := selected.evidence.Quote
		issue.EvidenceTimestamp = &ts
		issue.EvidenceQuote = &quote
	}
	return issue
}
