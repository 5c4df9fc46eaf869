package questions

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aspirantsclub/core/core/events"
)

// SubmitResult reports a graded attempt to the backend. Failures are
// logged and surfaced, but callers treat them as non-fatal: the UI
// simply shows no success confirmation.
func SubmitResult(ctx context.Context, deps Deps, userID string, r Result) error {
	params := url.Values{}
	params.Set("userId", userID)
	params.Set("questionId", r.QuestionId)
	params.Set("timer", fmt.Sprintf("%d", int(r.Elapsed.Seconds())))
	params.Set("response", fmt.Sprintf("%t", r.Correct))

	err := deps.Backend().Get(ctx, "/api/addResponse?"+params.Encode(), nil)
	if err != nil {
		deps.Log().Errorf("could not submit answer for question %s: %v", r.QuestionId, err)
		return err
	}

	events.In <- events.AnswerSubmitted(r.QuestionId, r.Correct)
	return nil
}

// SubmitQuestion sends a user-contributed question for review.
func SubmitQuestion(ctx context.Context, deps Deps, s Submission) error {
	return deps.Backend().Post(ctx, "/api/addQuestion", s, nil)
}
