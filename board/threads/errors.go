package threads

import (
	"errors"
)

var (
	PostNotFound  = errors.New("post has not been found by given criteria")
	ReplyNotFound = errors.New("reply has not been found by given criteria")
	NodeNotFound  = errors.New("no such node in this thread")

	// ErrVoteInFlight rejects a second toggle on a node whose first
	// toggle has not settled yet. Toggles on different nodes proceed
	// independently.
	ErrVoteInFlight = errors.New("a vote for this node is already in flight")

	// ErrReplyInFlight means this form already has an outstanding
	// submission.
	ErrReplyInFlight = errors.New("a reply submission is already in flight")

	// ErrPendingTarget means the chosen node is an optimistic one the
	// backend has not confirmed yet. Pending nodes take no votes and no
	// children.
	ErrPendingTarget = errors.New("this reply has not been confirmed yet")

	ErrEmptyReply = errors.New("reply text is empty")
)
