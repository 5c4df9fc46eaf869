package threads

import (
	"context"
)

// Tree is the id-indexed arena a thread renders from. Nodes reference
// their children as ordered id lists, never as embedded substructures.
type Tree struct {
	Post  Post
	Nodes map[string]Reply
}

// Assemble resolves the reply graph breadth first, starting from the ids
// the post references directly. An id already present in the arena is
// skipped before fetching, which both deduplicates diamond references and
// terminates the walk on cyclic data. A failed fetch drops the id (and so
// its subtree) without aborting sibling branches: partial trees are a
// normal, displayable state.
func Assemble(ctx context.Context, deps Deps, post Post) Tree {
	nodes := make(map[string]Reply)
	queue := append([]string{}, post.Replies...)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if _, resolved := nodes[id]; resolved {
			continue
		}

		reply, err := FindReply(ctx, deps, id)
		if err != nil {
			deps.Log().Errorf("dropping reply %s from traversal: %v", id, err)
			continue
		}

		nodes[id] = reply
		queue = append(queue, reply.Replies...)
	}

	return Tree{Post: post, Nodes: nodes}
}

// Walk traverses the tree depth first in display order, calling fn with
// each node and its depth. Child ids absent from the arena (failed or
// still in-flight fetches) are skipped. Already-visited ids are skipped
// too so malformed cyclic references cannot recurse forever.
func (t Tree) Walk(fn func(depth int, r Reply)) {
	seen := make(map[string]bool, len(t.Nodes))
	for _, id := range t.Post.Replies {
		t.walk(id, 0, seen, fn)
	}
}

func (t Tree) walk(id string, depth int, seen map[string]bool, fn func(int, Reply)) {
	if seen[id] {
		return
	}

	node, exists := t.Nodes[id]
	if !exists {
		return
	}

	seen[id] = true
	fn(depth, node)
	for _, child := range node.Replies {
		t.walk(child, depth+1, seen, fn)
	}
}

// Children returns the resolved direct children of a node in display
// order.
func (t Tree) Children(id string) []Reply {
	var refs []string
	if id == t.Post.Id {
		refs = t.Post.Replies
	} else if node, exists := t.Nodes[id]; exists {
		refs = node.Replies
	}

	list := make([]Reply, 0, len(refs))
	for _, ref := range refs {
		if node, exists := t.Nodes[ref]; exists {
			list = append(list, node)
		}
	}
	return list
}
