package threads

import (
	"strings"
	"time"

	"github.com/aspirantsclub/core/core/user"
)

// Forum groups threads on the board index.
type Forum struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

type Forums []Forum

// Post is the root of a discussion thread. Replies hold ids, not nodes:
// the tree is addressed through the arena so reconciliation works by id
// at any depth.
type Post struct {
	Id         string    `json:"id"`
	ForumId    string    `json:"forumId,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorId   string    `json:"authorId"`
	Created    time.Time `json:"createdAt"`
	Updated    time.Time `json:"updatedAt"`
	Replies    []string  `json:"replies"`
	LikedBy    []string  `json:"likedBy"`
	DislikedBy []string  `json:"dislikedBy"`
}

func (p Post) VotableID() string {
	return p.Id
}

func (p Post) Likes() []string {
	return p.LikedBy
}

func (p Post) Dislikes() []string {
	return p.DislikedBy
}

// Author is the display identity attached to a reply. A nil Author means
// the profile has not round-tripped yet.
type Author struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Reply is a node in the thread tree.
type Reply struct {
	Id         string    `json:"id"`
	PostId     string    `json:"postId"`
	ParentId   string    `json:"parentId,omitempty"`
	Content    string    `json:"content"`
	AuthorId   string    `json:"authorId"`
	Author     *Author   `json:"author,omitempty"`
	Created    time.Time `json:"createdAt"`
	Updated    time.Time `json:"updatedAt"`
	Replies    []string  `json:"replies"`
	LikedBy    []string  `json:"likedBy"`
	DislikedBy []string  `json:"dislikedBy"`

	// Pending marks an optimistic node awaiting backend confirmation.
	// Never serialized; pending nodes are not valid reply targets.
	Pending bool `json:"-"`
}

func (r Reply) VotableID() string {
	return r.Id
}

func (r Reply) Likes() []string {
	return r.LikedBy
}

func (r Reply) Dislikes() []string {
	return r.DislikedBy
}

// AuthorName falls back to the anonymous placeholder when the profile is
// absent or blank.
func (r Reply) AuthorName() string {
	if r.Author == nil || strings.TrimSpace(r.Author.Name) == "" {
		return user.Anonymous.Name
	}
	return r.Author.Name
}

// View is the payload shape the backend responds with for a single post.
type View struct {
	Post   Post       `json:"post"`
	Author *user.User `json:"author,omitempty"`
}
