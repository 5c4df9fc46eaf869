package threads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kennygrant/sanitize"
	uuid "github.com/satori/go.uuid"

	"github.com/aspirantsclub/core/board/votes"
	"github.com/aspirantsclub/core/core/events"
)

// ToggleLike applies a like toggle to a post or reply on behalf of
// userID: optimistic local application, backend settle, exact snapshot
// rollback on failure. Liking clears a prior dislike.
func ToggleLike(ctx context.Context, deps Deps, s *Store, nodeID, userID string) error {
	return toggle(ctx, deps, s, votes.Up, nodeID, userID)
}

// ToggleDislike is symmetric to ToggleLike, clearing a prior like.
func ToggleDislike(ctx context.Context, deps Deps, s *Store, nodeID, userID string) error {
	return toggle(ctx, deps, s, votes.Down, nodeID, userID)
}

func toggle(ctx context.Context, deps Deps, s *Store, kind votes.VoteType, nodeID, userID string) error {
	s.mu.Lock()
	if s.inflight[nodeID] {
		s.mu.Unlock()
		return ErrVoteInFlight
	}

	postID := s.post.Id
	isPost := nodeID == postID
	var (
		prevPost  Post
		prevReply Reply
	)
	if isPost {
		prevPost = s.post
		s.post.LikedBy, s.post.DislikedBy = votes.Apply(kind, userID, s.post.LikedBy, s.post.DislikedBy)
	} else {
		node, exists := s.nodes[nodeID]
		if !exists {
			s.mu.Unlock()
			return NodeNotFound
		}
		if node.Pending {
			s.mu.Unlock()
			return ErrPendingTarget
		}
		prevReply = node
		node.LikedBy, node.DislikedBy = votes.Apply(kind, userID, node.LikedBy, node.DislikedBy)
		s.nodes[nodeID] = node
	}
	s.inflight[nodeID] = true
	s.mu.Unlock()

	// The optimistic state is visible to the caller from here on; now
	// settle against the backend.
	var err error
	if isPost {
		var updated Post
		err = deps.Backend().Post(ctx, "/api/posts/"+nodeID+"/"+kind.String(), nil, &updated)
		s.mu.Lock()
		delete(s.inflight, nodeID)
		if err == nil {
			s.post = updated
		} else {
			s.post = prevPost
		}
		s.mu.Unlock()
	} else {
		var updated Reply
		err = deps.Backend().Post(ctx, "/api/replies/"+nodeID+"/"+kind.String(), nil, &updated)
		s.mu.Lock()
		delete(s.inflight, nodeID)
		if _, exists := s.nodes[nodeID]; !exists {
			// The node went away while the request was in flight
			// (screen resynced); discard the result.
			deps.Log().Warningf("discarding %s settle for removed node %s", kind, nodeID)
		} else if err == nil {
			if updated.Author == nil {
				updated.Author = prevReply.Author
			}
			s.nodes[nodeID] = updated
		} else {
			s.nodes[nodeID] = prevReply
		}
		s.mu.Unlock()
	}

	if err != nil {
		events.In <- events.VoteReverted(nodeID, userID)
		events.In <- events.ThreadResync(postID)
		return fmt.Errorf("could not update %s status: %v", kind, err)
	}

	events.In <- events.VoteSettled(nodeID, userID)
	return nil
}

// SubmitReply attaches a new reply under the post or under another
// reply. The node shows up immediately with a temporary id and
// Pending=true, then is reconciled with the backend-assigned node, or
// removed entirely when the submission fails.
func SubmitReply(ctx context.Context, deps Deps, s *Store, parentID, text, authorID, authorName string) (Reply, error) {
	text = strings.TrimSpace(sanitize.HTML(text))
	if text == "" {
		return Reply{}, ErrEmptyReply
	}

	s.mu.Lock()
	if s.replying {
		s.mu.Unlock()
		return Reply{}, ErrReplyInFlight
	}

	postID := s.post.Id
	parentIsPost := parentID == postID
	if !parentIsPost {
		parent, exists := s.nodes[parentID]
		if !exists {
			s.mu.Unlock()
			return Reply{}, NodeNotFound
		}
		if parent.Pending {
			s.mu.Unlock()
			return Reply{}, ErrPendingTarget
		}
	}

	now := time.Now()
	temp := Reply{
		Id:         "temp-" + uuid.NewV4().String(),
		PostId:     postID,
		Content:    text,
		AuthorId:   authorID,
		Author:     &Author{Id: authorID, Name: authorName},
		Created:    now,
		Updated:    now,
		Replies:    []string{},
		LikedBy:    []string{},
		DislikedBy: []string{},
		Pending:    true,
	}
	if parentIsPost {
		s.post.Replies = append(append([]string{}, s.post.Replies...), temp.Id)
	} else {
		temp.ParentId = parentID
		parent := s.nodes[parentID]
		parent.Replies = append(append([]string{}, parent.Replies...), temp.Id)
		s.nodes[parentID] = parent
	}
	s.nodes[temp.Id] = temp
	s.replying = true
	s.mu.Unlock()

	path := "/api/posts/" + postID + "/replies"
	if !parentIsPost {
		path = "/api/replies/" + parentID + "/replies"
	}

	var confirmed Reply
	err := deps.Backend().Post(ctx, path, map[string]string{
		"content":  text,
		"authorId": authorID,
	}, &confirmed)

	s.mu.Lock()
	s.replying = false
	if err != nil {
		// No ghost nodes survive a failed submission.
		s.removeNode(temp.Id, parentID)
		s.mu.Unlock()
		events.In <- events.ReplyDropped(postID, temp.Id)
		events.In <- events.ThreadResync(postID)
		return Reply{}, fmt.Errorf("could not add reply: %v", err)
	}

	confirmed.Pending = false
	if confirmed.Author == nil {
		confirmed.Author = temp.Author
	}
	if _, exists := s.nodes[temp.Id]; !exists {
		// State was swapped while in flight; the resynced tree already
		// contains the authoritative node.
		s.mu.Unlock()
		deps.Log().Warningf("discarding reply settle for removed node %s", temp.Id)
		return confirmed, nil
	}
	delete(s.nodes, temp.Id)
	s.nodes[confirmed.Id] = confirmed
	s.replaceRef(parentID, temp.Id, confirmed.Id)
	s.mu.Unlock()

	events.In <- events.ReplyConfirmed(postID, confirmed.Id)
	return confirmed, nil
}

// Resync refetches the post and reassembles the whole tree, replacing
// local state. This is the consistency recovery run after a failed
// mutation, instead of a full page reload.
func Resync(ctx context.Context, deps Deps, s *Store) error {
	view, err := FindPost(ctx, deps, s.PostID())
	if err != nil {
		return err
	}

	tree := Assemble(ctx, deps, view.Post)
	s.swap(tree, view.Author)
	return nil
}
