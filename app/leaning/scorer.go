package leaning

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"
)

// ScaleBound is the magnitude of the leaning scale: scores live in
// [-ScaleBound, ScaleBound], negative meaning liberal/left and positive
// meaning conservative/right. The persisted dataset carries this raw scale;
// normalization to [-1, 1] happens only in the aggregation layer.
const ScaleBound = 10.0

const (
	// minMeaningfulRunes is the cost-control short-circuit: texts with fewer
	// non-whitespace runes are scored neutral without calling the service.
	minMeaningfulRunes = 10

	// maxPromptRunes bounds the text prefix submitted for classification.
	maxPromptRunes = 800

	// responseTokenCap keeps the completion to the bare numeric answer.
	responseTokenCap = 10
)

const systemPrompt = "You are a political analyst. Analyze the following text and determine " +
	"its political leaning on a scale from -10 (very liberal/left) to 10 " +
	"(very conservative/right), where 0 is neutral/centrist. Respond with only the numerical score."

// Reason records which branch produced a score. Every fallback to the
// neutral default is a distinct, observable outcome rather than a silently
// swallowed failure.
type Reason string

const (
	ReasonScored      Reason = "scored"       // service answered with a usable number
	ReasonShortText   Reason = "short_text"   // input below the minimum, service not called
	ReasonCallFailed  Reason = "call_failed"  // transport/quota/timeout failure
	ReasonParseFailed Reason = "parse_failed" // completion was not a finite number
	ReasonClamped     Reason = "clamped"      // number was out of range and clamped to the bound
)

// Scorer rates the political leaning of a text through an external
// text-classification model. All failures degrade to the neutral score 0.
type Scorer struct {
	chatModel model.BaseChatModel
	limiter   *rate.Limiter
}

// NewScorer creates a scorer. callsPerMinute throttles classification calls;
// a non-positive value disables throttling.
func NewScorer(chatModel model.BaseChatModel, callsPerMinute int) *Scorer {
	limit := rate.Inf
	if callsPerMinute > 0 {
		limit = rate.Limit(float64(callsPerMinute) / 60.0)
	}
	return &Scorer{
		chatModel: chatModel,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// Score returns the political leaning of the text in [-ScaleBound, ScaleBound]
// together with the reason code for how the value was obtained. It never
// returns an error: any failure yields the neutral score 0 with its reason.
func (s *Scorer) Score(ctx context.Context, text string) (float64, Reason) {
	if countNonWhitespace(text) < minMeaningfulRunes {
		slog.Debug("Text too short for analysis, returning neutral score", "reason", ReasonShortText)
		return 0, ReasonShortText
	}

	if err := s.limiter.Wait(ctx); err != nil {
		slog.Warn("Leaning call aborted", "reason", ReasonCallFailed, "error", err)
		return 0, ReasonCallFailed
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: truncateRunes(text, maxPromptRunes)},
	}

	resp, err := s.chatModel.Generate(ctx, messages, model.WithMaxTokens(responseTokenCap))
	if err != nil {
		slog.Warn("Leaning call failed, returning neutral score", "reason", ReasonCallFailed, "error", err)
		return 0, ReasonCallFailed
	}

	raw := strings.TrimSpace(resp.Content)
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		slog.Warn("Could not parse leaning response, returning neutral score",
			"reason", ReasonParseFailed, "response", raw)
		return 0, ReasonParseFailed
	}

	if score > ScaleBound || score < -ScaleBound {
		clamped := math.Max(math.Min(score, ScaleBound), -ScaleBound)
		slog.Debug("Leaning score out of range, clamped",
			"reason", ReasonClamped, "raw", score, "clamped", clamped)
		return clamped, ReasonClamped
	}

	return score, ReasonScored
}

func countNonWhitespace(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
