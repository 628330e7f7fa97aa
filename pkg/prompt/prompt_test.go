package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestStatic(t *testing.T) {
	for _, answer := range []bool{true, false} {
		got, err := Static(answer).Confirm(context.Background(), ConfirmConfig{Message: "Write?"})
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if got != answer {
			t.Fatalf("Confirm() = %v, want %v", got, answer)
		}
	}
}

func TestStatic_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Static(true).Confirm(ctx, ConfirmConfig{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSurveyConfirmer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSurvey().Confirm(ctx, ConfirmConfig{Message: "Write?"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	wrapped := fmt.Errorf("ask: %w", terminal.InterruptErr)
	if err := translateSurveyErr(wrapped); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted for wrapped interrupt, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}
