// Package prompt asks the operator before the target file is rewritten.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Confirmer abstracts the terminal so callers can be tested without one.
type Confirmer interface {
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, cfg ConfirmConfig) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	return f(ctx, cfg)
}

// Static answers every prompt with the same value.
func Static(answer bool) Confirmer {
	return ConfirmFunc(func(ctx context.Context, _ ConfirmConfig) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return answer, nil
	})
}

type surveyConfirmer struct {
	opts []survey.AskOpt
}

// NewSurvey returns a Confirmer backed by survey. The ask options are passed
// to every prompt, e.g. survey.WithStdio to bind other streams.
func NewSurvey(opts ...survey.AskOpt) Confirmer {
	return &surveyConfirmer{opts: opts}
}

func (s *surveyConfirmer) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, s.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
