package threads

import (
	"context"

	"github.com/aspirantsclub/core/core/rest"
)

// FindForums fetches the board index.
func FindForums(ctx context.Context, deps Deps) (forums Forums, err error) {
	err = deps.Backend().Get(ctx, "/api/forum/getForums", &forums)
	return
}

// FindForumPosts lists the posts belonging to a forum.
func FindForumPosts(ctx context.Context, deps Deps, forumID string) (list []View, err error) {
	err = deps.Backend().Get(ctx, "/api/forum/getPostsbyForumId/"+forumID, &list)
	return
}

// FindPost fetches a post with its author resolved server side.
func FindPost(ctx context.Context, deps Deps, id string) (view View, err error) {
	err = deps.Backend().Get(ctx, "/api/posts/"+id, &view)
	if rest.NotFound(err) {
		err = PostNotFound
	}
	return
}

// FindReply fetches a single reply node by id.
func FindReply(ctx context.Context, deps Deps, id string) (reply Reply, err error) {
	err = deps.Backend().Get(ctx, "/api/replies/"+id, &reply)
	if rest.NotFound(err) {
		err = ReplyNotFound
	}
	return
}

// CreatePost asks the backend to open a new thread.
func CreatePost(ctx context.Context, deps Deps, forumID, title, content string) (view View, err error) {
	err = deps.Backend().Post(ctx, "/api/posts", map[string]string{
		"forumId": forumID,
		"title":   title,
		"content": content,
	}, &view)
	return
}
