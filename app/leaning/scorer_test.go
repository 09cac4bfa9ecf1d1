package leaning

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// fakeChatModel returns a canned completion (or error) and counts calls.
type fakeChatModel struct {
	response string
	err      error
	calls    int
	lastText string
}

func (f *fakeChatModel) Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.calls++
	if len(in) > 0 {
		f.lastText = in[len(in)-1].Content
	}
	if f.err != nil {
		return nil, f.err
	}
	return &schema.Message{Role: schema.Assistant, Content: f.response}, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

const longText = "The state legislature passed a sweeping new tax reform bill on Tuesday."

func TestScore_ParsesNumericResponse(t *testing.T) {
	fake := &fakeChatModel{response: "-4.5"}
	scorer := NewScorer(fake, 0)

	score, reason := scorer.Score(context.Background(), longText)

	if reason != ReasonScored {
		t.Errorf("Expected reason %s, got %s", ReasonScored, reason)
	}
	if score != -4.5 {
		t.Errorf("Expected score -4.5, got %v", score)
	}
	if fake.calls != 1 {
		t.Errorf("Expected exactly 1 call, got %d", fake.calls)
	}
}

func TestScore_ShortTextSkipsCall(t *testing.T) {
	fake := &fakeChatModel{response: "5"}
	scorer := NewScorer(fake, 0)

	// 9 non-whitespace runes spread across whitespace: below the minimum.
	score, reason := scorer.Score(context.Background(), "  ab cd ef gh i  ")

	if reason != ReasonShortText {
		t.Errorf("Expected reason %s, got %s", ReasonShortText, reason)
	}
	if score != 0 {
		t.Errorf("Expected neutral score, got %v", score)
	}
	if fake.calls != 0 {
		t.Errorf("Expected no service call for short text, got %d calls", fake.calls)
	}
}

func TestScore_CallFailureReturnsNeutral(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("429 too many requests")}
	scorer := NewScorer(fake, 0)

	score, reason := scorer.Score(context.Background(), longText)

	if reason != ReasonCallFailed {
		t.Errorf("Expected reason %s, got %s", ReasonCallFailed, reason)
	}
	if score != 0 {
		t.Errorf("Expected neutral score, got %v", score)
	}
}

func TestScore_UnparsableResponseReturnsNeutral(t *testing.T) {
	cases := []string{"left-leaning", "", "NaN", "+Inf", "7 out of 10"}

	for _, response := range cases {
		fake := &fakeChatModel{response: response}
		scorer := NewScorer(fake, 0)

		score, reason := scorer.Score(context.Background(), longText)

		if reason != ReasonParseFailed {
			t.Errorf("Response %q: expected reason %s, got %s", response, ReasonParseFailed, reason)
		}
		if score != 0 {
			t.Errorf("Response %q: expected neutral score, got %v", response, score)
		}
	}
}

func TestScore_ClampsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		response string
		expected float64
	}{
		{"15", 10},
		{"-200.5", -10},
		{"10.01", 10},
	}

	for _, tc := range cases {
		fake := &fakeChatModel{response: tc.response}
		scorer := NewScorer(fake, 0)

		score, reason := scorer.Score(context.Background(), longText)

		if reason != ReasonClamped {
			t.Errorf("Response %q: expected reason %s, got %s", tc.response, ReasonClamped, reason)
		}
		if score != tc.expected {
			t.Errorf("Response %q: expected %v, got %v", tc.response, tc.expected, score)
		}
	}
}

func TestScore_BoundaryValuesNotClamped(t *testing.T) {
	for _, response := range []string{"10", "-10", "0"} {
		fake := &fakeChatModel{response: response}
		scorer := NewScorer(fake, 0)

		if _, reason := scorer.Score(context.Background(), longText); reason != ReasonScored {
			t.Errorf("Response %q: expected reason %s, got %s", response, ReasonScored, reason)
		}
	}
}

func TestScore_TruncatesLongInput(t *testing.T) {
	fake := &fakeChatModel{response: "2"}
	scorer := NewScorer(fake, 0)

	long := make([]rune, 5000)
	for i := range long {
		long[i] = 'x'
	}

	if _, reason := scorer.Score(context.Background(), string(long)); reason != ReasonScored {
		t.Fatalf("Unexpected reason: %s", reason)
	}
	if got := len([]rune(fake.lastText)); got != maxPromptRunes {
		t.Errorf("Expected prompt truncated to %d runes, got %d", maxPromptRunes, got)
	}
}
