package comments

import (
	"context"
	"errors"
	"net/url"

	"github.com/aspirantsclub/core/core/rest"
)

var CommentNotFound = errors.New("comment has not been found by given criteria")

func FindId(ctx context.Context, deps Deps, id string) (comment Comment, err error) {
	err = deps.Backend().Get(ctx, "/api/getCommentsbyId?id="+url.QueryEscape(id), &comment)
	if rest.NotFound(err) {
		err = CommentNotFound
	}
	return
}

// FindList resolves a question's comment id list, dropping ids that fail
// to fetch so the surviving comments still render.
func FindList(ctx context.Context, deps Deps, ids []string) Comments {
	list := make(Comments, 0, len(ids))
	for _, id := range ids {
		comment, err := FindId(ctx, deps, id)
		if err != nil {
			deps.Log().Errorf("dropping comment %s: %v", id, err)
			continue
		}
		list = append(list, comment)
	}
	return list
}
