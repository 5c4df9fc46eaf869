package comments

import (
	"context"
	"fmt"
	"strings"

	"github.com/kennygrant/sanitize"

	"github.com/aspirantsclub/core/board/votes"
)

var ErrEmptyComment = fmt.Errorf("comment text is empty")

// ToggleLike toggles the caller's like on a comment: optimistic sets and
// counts first, then the backend settles or the snapshot is restored.
func ToggleLike(ctx context.Context, deps Deps, c *Comment, userID string) error {
	return toggle(ctx, deps, c, votes.Up, userID)
}

func ToggleDislike(ctx context.Context, deps Deps, c *Comment, userID string) error {
	return toggle(ctx, deps, c, votes.Down, userID)
}

func toggle(ctx context.Context, deps Deps, c *Comment, kind votes.VoteType, userID string) error {
	snapshot := *c
	c.LikedBy, c.DislikedBy = votes.Apply(kind, userID, c.LikedBy, c.DislikedBy)
	c.LikeCount, c.DislikeCount = len(c.LikedBy), len(c.DislikedBy)

	var updated Comment
	err := deps.Backend().Post(ctx, "/api/comments/"+c.Id+"/"+kind.String(), nil, &updated)
	if err != nil {
		*c = snapshot
		return fmt.Errorf("could not update %s status: %v", kind, err)
	}

	updated.User = snapshot.User
	*c = updated
	return nil
}

// Add submits a new comment under a question.
func Add(ctx context.Context, deps Deps, questionID, text, userID string) (comment Comment, err error) {
	text = strings.TrimSpace(sanitize.HTML(text))
	if text == "" {
		return comment, ErrEmptyComment
	}

	err = deps.Backend().Post(ctx, "/api/questions/"+questionID+"/comments", map[string]string{
		"text":        text,
		"submittedBy": userID,
	}, &comment)
	return
}

// AddReply submits a follow-up under an existing comment.
func AddReply(ctx context.Context, deps Deps, commentID, text, userID string) (comment Comment, err error) {
	text = strings.TrimSpace(sanitize.HTML(text))
	if text == "" {
		return comment, ErrEmptyComment
	}

	err = deps.Backend().Post(ctx, "/api/comments/"+commentID+"/replies", map[string]string{
		"text":        text,
		"submittedBy": userID,
	}, &comment)
	return
}
