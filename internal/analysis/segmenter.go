package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// ErrInvalidSegment marks transcript segments that violate the input
// contract (negative start, end not after start).
var ErrInvalidSegment = errors.New("invalid segment")

// ValidateSegments rejects malformed segments before segmentation so the
// analyzer never sees negative durations. An empty list is valid: it simply
// yields no sentences.
func ValidateSegments(segments []entities.Segment) error {
	for i, seg := range segments {
		if seg.Start < 0 {
			return fmt.Errorf("%w at index %d: start %.3f is negative", ErrInvalidSegment, i, seg.Start)
		}
		if seg.End <= seg.Start {
			return fmt.Errorf("%w at index %d: end %.3f is not after start %.3f", ErrInvalidSegment, i, seg.End, seg.Start)
		}
	}
	return nil
}

// SplitSentences converts timestamped segments into timestamped sentences.
//
// Per-word timing is not available from the transcription provider, so each
// segment's duration is allocated across its sentences in proportion to word
// count: a sentence holding 40% of the segment's words occupies 40% of its
// duration, positioned sequentially with no gaps or overlaps. A segment
// without sentence-terminal punctuation becomes a single sentence spanning
// the whole segment; a segment with no words emits nothing.
func SplitSentences(segments []entities.Segment) []entities.Sentence {
	var sentences []entities.Sentence

	for _, seg := range segments {
		fragments := splitFragments(seg.Text)

		totalWords := 0
		wordCounts := make([]int, len(fragments))
		for i, frag := range fragments {
			wordCounts[i] = len(strings.Fields(frag))
			totalWords += wordCounts[i]
		}
		if totalWords == 0 {
			continue
		}

		cursor := seg.Start
		duration := seg.Duration()
		for i, frag := range fragments {
			if wordCounts[i] == 0 {
				continue
			}
			share := duration * float64(wordCounts[i]) / float64(totalWords)
			end := cursor + share
			if i == len(fragments)-1 {
				// Absorb float drift so the last sentence closes the segment.
				end = seg.End
			}
			sentences = append(sentences, entities.Sentence{
				Start:      cursor,
				End:        end,
				Text:       frag,
				Normalized: strings.ToLower(strings.TrimSpace(frag)),
			})
			cursor = end
		}
	}

	// Segments arrive with non-decreasing starts but may overlap; a stable
	// sort keeps input order as the final tie-break for equal starts.
	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].Start < sentences[j].Start
	})

	return sentences
}

// splitFragments cuts text on sentence-terminal punctuation followed by
// whitespace, keeping the punctuation with its sentence and dropping
// fragments that trim to nothing.
func splitFragments(text string) []string {
	var fragments []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if isTerminal(r) && i+1 < len(runes) && isWhitespace(runes[i+1]) {
			if frag := strings.TrimSpace(current.String()); frag != "" {
				fragments = append(fragments, frag)
			}
			current.Reset()
		}
	}
	if frag := strings.TrimSpace(current.String()); frag != "" {
		fragments = append(fragments, frag)
	}

	return fragments
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
