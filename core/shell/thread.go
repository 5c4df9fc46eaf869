package shell

import (
	"strings"

	"gopkg.in/abiosoft/ishell.v2"

	"github.com/aspirantsclub/core/board/threads"
	"github.com/aspirantsclub/core/board/votes"
	"github.com/aspirantsclub/core/deps"
)

func Forums(c *ishell.Context) {
	ctx, cancel := reqCtx()
	defer cancel()

	forums, err := threads.FindForums(ctx, deps.Container)
	if err != nil {
		c.Println("could not load forums:", err)
		return
	}

	for _, f := range forums {
		c.Printf("%s  %s: %s\n", f.Id, f.Title, f.Description)
	}
}

func Posts(c *ishell.Context) {
	if len(c.Args) != 1 {
		c.Println("usage: posts <forum-id>")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	list, err := threads.FindForumPosts(ctx, deps.Container, c.Args[0])
	if err != nil {
		c.Println("could not load posts:", err)
		return
	}

	for _, view := range list {
		c.Printf("%s  %s (score %d, %d replies)\n",
			view.Post.Id, view.Post.Title, votes.Score(view.Post), len(view.Post.Replies))
	}
}

func Thread(c *ishell.Context) {
	if len(c.Args) != 1 {
		c.Println("usage: thread <post-id>")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	view, err := threads.FindPost(ctx, deps.Container, c.Args[0])
	if err != nil {
		c.Println("could not load thread:", err)
		return
	}

	tree := threads.Assemble(ctx, deps.Container, view.Post)
	store := threads.NewStore(tree, view.Author)

	current.Lock()
	current.thread = store
	current.Unlock()

	renderThread(c, store)
}

// NewPost opens a fresh thread in a forum and renders it.
func NewPost(c *ishell.Context) {
	if len(c.Args) != 1 {
		c.Println("usage: newpost <forum-id>")
		return
	}

	who := identity()
	if who.Empty() {
		c.Println("login first")
		return
	}

	c.ShowPrompt(false)
	defer c.ShowPrompt(true)

	c.Print("title: ")
	title := c.ReadLine()
	c.Print("content: ")
	content := c.ReadLine()

	ctx, cancel := reqCtx()
	defer cancel()

	view, err := threads.CreatePost(ctx, deps.Container, c.Args[0], title, content)
	if err != nil {
		c.Println("could not create post:", err)
		return
	}

	store := threads.NewStore(threads.Tree{Post: view.Post, Nodes: map[string]threads.Reply{}}, view.Author)

	current.Lock()
	current.thread = store
	current.Unlock()

	renderThread(c, store)
}

func renderThread(c *ishell.Context, store *threads.Store) {
	tree := store.Tree()
	author := store.Author()

	name := "Anonymous User"
	if author != nil {
		name = author.DisplayName()
		if author.VerifiedMentor() {
			name += " ✓"
		}
	}

	c.Printf("%s by %s (score %d)\n", tree.Post.Title, name, votes.Score(tree.Post))
	c.Println(tree.Post.Content)
	tree.Walk(func(depth int, r threads.Reply) {
		marker := ""
		if r.Pending {
			marker = " [pending]"
		}
		c.Printf("%s%s  %s: %s (score %d)%s\n",
			strings.Repeat("  ", depth+1), r.Id, r.AuthorName(), r.Content, votes.Score(r), marker)
	})
}

func Like(c *ishell.Context) {
	toggleCmd(c, votes.Up)
}

func Dislike(c *ishell.Context) {
	toggleCmd(c, votes.Down)
}

func toggleCmd(c *ishell.Context, kind votes.VoteType) {
	if len(c.Args) != 1 {
		c.Printf("usage: %s <node-id>\n", kind)
		return
	}

	store := openThread()
	if store == nil {
		c.Println("open a thread first")
		return
	}

	who := identity()
	if who.Empty() {
		c.Println("login first")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	var err error
	if kind == votes.Down {
		err = threads.ToggleDislike(ctx, deps.Container, store, c.Args[0], who.UserID)
	} else {
		err = threads.ToggleLike(ctx, deps.Container, store, c.Args[0], who.UserID)
	}
	if err != nil {
		c.Println(err)
		return
	}

	renderThread(c, store)
}

func ReplyCmd(c *ishell.Context) {
	if len(c.Args) < 2 {
		c.Println("usage: reply <node-id> <text>")
		return
	}

	store := openThread()
	if store == nil {
		c.Println("open a thread first")
		return
	}

	who := identity()
	if who.Empty() {
		c.Println("login first")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	text := strings.Join(c.Args[1:], " ")
	_, err := threads.SubmitReply(ctx, deps.Container, store, c.Args[0], text, who.UserID, who.Name)
	if err != nil {
		c.Println(err)
		return
	}

	renderThread(c, store)
}

func ResyncCmd(c *ishell.Context) {
	store := openThread()
	if store == nil {
		c.Println("open a thread first")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := threads.Resync(ctx, deps.Container, store); err != nil {
		c.Println("could not resync:", err)
		return
	}

	renderThread(c, store)
}
