package questions

import (
	"errors"
	"time"
)

var ErrAlreadyAnswered = errors.New("this question has already been answered")

// Session times a single question attempt. The clock is injectable so
// elapsed computation stays testable.
type Session struct {
	Question Question

	started  time.Time
	answered bool
	now      func() time.Time
}

func NewSession(q Question) *Session {
	return newSession(q, time.Now)
}

func newSession(q Question, now func() time.Time) *Session {
	return &Session{
		Question: q,
		started:  now(),
		now:      now,
	}
}

// Answer grades the chosen option and fixes the elapsed time. A session
// accepts exactly one answer.
func (s *Session) Answer(option string) (Result, error) {
	if s.answered {
		return Result{}, ErrAlreadyAnswered
	}

	s.answered = true
	return Result{
		QuestionId: s.Question.Id,
		Correct:    s.Question.IsCorrect(option),
		Elapsed:    s.now().Sub(s.started),
	}, nil
}

func (s *Session) Answered() bool {
	return s.answered
}
