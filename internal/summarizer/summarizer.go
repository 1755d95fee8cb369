package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const chunkSystemMessage = "You are an AI assistant specialized in summarizing segments of meeting transcripts."

const chunkPrompt = `You are an expert meeting summarizer. Summarize the following segment of a meeting transcript into concise key points or bullet points ONLY. Mention the names and companies involved if any. Focus specifically on the main topics discussed, key decisions made, and any action items assigned within this segment.
Summarize in Arabic and English, with each language under its own labeled heading.
Do not add introductory or concluding phrases like 'In this segment...' unless necessary for context.
Transcript Segment:
---
%s
---
Key Points Summary:`

const finalSystemMessage = "You are an AI assistant skilled at consolidating multiple partial summaries into a final, coherent summary."

const finalPrompt = `You are an expert meeting summarizer. The following text consists of several partial summaries derived from different segments of a longer meeting transcript. Synthesize these partial summaries into a single, coherent, and concise final summary. Ensure all critical information (main topics, decisions, actions) is retained, remove redundancy, and present it logically.
Summarize in Arabic and English, with each language under its own labeled heading.
Partial Summaries:
---
%s
---
Consolidated Final Summary:`

// Summarize chunks the transcript, summarizes every chunk in order, and
// consolidates the partial summaries into one bilingual digest. Failed
// chunks are skipped; the run fails only when no chunk produced a summary.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("transcript is empty")
	}

	chunks := chunkText(transcript, s.chunkChars, s.chunkOverlap)
	s.logger.Info(ctx, "Transcript length %d chars, split into %d chunk(s)", len(transcript), len(chunks))

	var parts []string
	for i, chunk := range chunks {
		s.logger.Info(ctx, "Summarizing chunk %d/%d (%d chars)", i+1, len(chunks), len(chunk))

		out, err := s.complete(ctx, chunkSystemMessage, fmt.Sprintf(chunkPrompt, chunk), s.maxTokens)
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize chunk %d/%d: %v", i+1, len(chunks), err)
			continue
		}
		parts = append(parts, out)
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no chunk summaries could be generated")
	}

	combined := strings.Join(parts, "\n\n---\n\n")
	if len(chunks) == 1 {
		return combined, nil
	}

	s.logger.Info(ctx, "Consolidating %d chunk summaries", len(parts))
	final, err := s.complete(ctx, finalSystemMessage, fmt.Sprintf(finalPrompt, combined), s.maxTokens*2)
	if err != nil {
		// Fallback: the joined chunk summaries are still a usable digest.
		s.logger.Warn(ctx, "Consolidation pass failed, returning joined chunk summaries: %v", err)
		return combined, nil
	}

	return final, nil
}

// complete calls the provider with retry on transient failures. Auth and
// other non-transient errors surface immediately.
func (s *implSummarizer) complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		out, err := s.provider.Complete(ctx, system, prompt, maxTokens)
		if err == nil {
			return strings.TrimSpace(out), nil
		}
		if !isTransient(err) {
			return "", err
		}
		lastErr = err

		if attempt < s.maxAttempts {
			delay := s.backoff * time.Duration(attempt)
			s.logger.Warn(ctx, "Completion attempt %d/%d failed, retrying in %s: %v",
				attempt, s.maxAttempts, delay, err)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("completion failed after %d attempts: %w", s.maxAttempts, lastErr)
}

var transientMarkers = []string{
	"429",
	"rate_limit",
	"quota",
	"RESOURCE_EXHAUSTED",
	"500",
	"502",
	"503",
	"timeout",
	"connection refused",
	"connection reset",
}

func isTransient(err error) bool {
	msg := err.Error()
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
