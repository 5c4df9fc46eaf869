package threads

import (
	"sync"

	"github.com/aspirantsclub/core/core/user"
)

// Store owns the mutable state of a single thread screen: the post, the
// reply arena and the in-flight bookkeeping the optimistic protocols
// need. It is owned exclusively by the screen that created it; nothing
// else shares it.
type Store struct {
	mu       sync.Mutex
	post     Post
	author   *user.User
	nodes    map[string]Reply
	inflight map[string]bool
	replying bool
}

func NewStore(tree Tree, author *user.User) *Store {
	return &Store{
		post:     tree.Post,
		author:   author,
		nodes:    tree.Nodes,
		inflight: make(map[string]bool),
	}
}

func (s *Store) Post() Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.post
}

func (s *Store) PostID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.post.Id
}

func (s *Store) Author() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.author
}

// Reply looks a node up by id at any depth.
func (s *Store) Reply(id string) (Reply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	node, exists := s.nodes[id]
	return node, exists
}

// Tree snapshots the current state for rendering. The arena map is
// copied so a render pass never races a settling mutation.
func (s *Store) Tree() Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	nodes := make(map[string]Reply, len(s.nodes))
	for id, node := range s.nodes {
		nodes[id] = node
	}
	return Tree{Post: s.post, Nodes: nodes}
}

// swap replaces the whole local state with a freshly assembled tree.
// In-flight bookkeeping is cleared: anything still settling belongs to
// the discarded state and lands in a no-op.
func (s *Store) swap(tree Tree, author *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.post = tree.Post
	s.author = author
	s.nodes = tree.Nodes
	s.inflight = make(map[string]bool)
	s.replying = false
}

// removeNode drops a node and its reference from the parent's child
// list. Reports whether the node was present.
func (s *Store) removeNode(id, parentID string) bool {
	_, exists := s.nodes[id]
	if !exists {
		return false
	}
	delete(s.nodes, id)

	if parentID == s.post.Id {
		s.post.Replies = removeRef(s.post.Replies, id)
		return true
	}
	if parent, ok := s.nodes[parentID]; ok {
		parent.Replies = removeRef(parent.Replies, id)
		s.nodes[parentID] = parent
	}
	return true
}

// replaceRef swaps a child id for another at the same position.
func (s *Store) replaceRef(parentID, oldID, newID string) {
	if parentID == s.post.Id {
		s.post.Replies = swapRef(s.post.Replies, oldID, newID)
		return
	}
	if parent, ok := s.nodes[parentID]; ok {
		parent.Replies = swapRef(parent.Replies, oldID, newID)
		s.nodes[parentID] = parent
	}
}

func removeRef(refs []string, id string) []string {
	next := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == id {
			continue
		}
		next = append(next, ref)
	}
	return next
}

func swapRef(refs []string, oldID, newID string) []string {
	next := make([]string, len(refs))
	for n, ref := range refs {
		if ref == oldID {
			next[n] = newID
			continue
		}
		next[n] = ref
	}
	return next
}
