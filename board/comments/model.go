package comments

import (
	"context"
	"time"

	"github.com/aspirantsclub/core/core/user"
)

// Comment is the one-level discussion attached to a question. Unlike
// forum replies there is no nesting; Replies references follow-ups the
// backend stores flat.
type Comment struct {
	Id           string    `json:"id"`
	Content      string    `json:"text"`
	UserId       string    `json:"submittedBy"`
	LikeCount    int       `json:"likes"`
	DislikeCount int       `json:"dislikes"`
	LikedBy      []string  `json:"likedBy"`
	DislikedBy   []string  `json:"dislikedBy"`
	Replies      []string  `json:"replies"`
	Created      time.Time `json:"dateTimeSubmitted"`

	// Runtime resolved author.
	User *user.User `json:"-"`
}

func (c Comment) VotableID() string {
	return c.Id
}

func (c Comment) Likes() []string {
	return c.LikedBy
}

func (c Comment) Dislikes() []string {
	return c.DislikedBy
}

type Comments []Comment

// WithUsers resolves each submitter profile. Resolution failures fall
// back to the anonymous placeholder instead of failing the render.
func (all Comments) WithUsers(ctx context.Context, deps Deps) Comments {
	list := make(Comments, len(all))
	for n, c := range all {
		list[n] = c
		resolved := user.FindDisplayable(ctx, deps, c.UserId)
		list[n].User = &resolved
	}

	return list
}
