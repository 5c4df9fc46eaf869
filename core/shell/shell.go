package shell

import (
	"context"
	"sync"
	"time"

	"gopkg.in/abiosoft/ishell.v2"

	"github.com/aspirantsclub/core/board/threads"
	"github.com/aspirantsclub/core/core/config"
	"github.com/aspirantsclub/core/core/events"
	"github.com/aspirantsclub/core/deps"
)

const requestTimeout = 15 * time.Second

// session is the per-shell mutable state: who the caller is and which
// thread screen is currently open.
type session struct {
	sync.Mutex
	identity config.Identity
	thread   *threads.Store
}

var current session

func RunShell() {
	current.identity = config.Read(deps.Container.Config()).Identity

	sh := ishell.New()
	sh.Println("Aspirants Club Interactive Shell 0.1")
	if current.identity.Empty() {
		sh.Println("No identity configured; run `login` before voting or replying.")
	}

	sh.AddCmd(&ishell.Cmd{Name: "login", Help: "Sign in with mobile + OTP.", Func: Login})
	sh.AddCmd(&ishell.Cmd{Name: "register", Help: "Create an account.", Func: Register})
	sh.AddCmd(&ishell.Cmd{Name: "forums", Help: "List discussion forums.", Func: Forums})
	sh.AddCmd(&ishell.Cmd{Name: "posts", Help: "posts <forum-id>: list a forum's threads.", Func: Posts})
	sh.AddCmd(&ishell.Cmd{Name: "thread", Help: "thread <post-id>: open a thread.", Func: Thread})
	sh.AddCmd(&ishell.Cmd{Name: "newpost", Help: "newpost <forum-id>: open a new thread.", Func: NewPost})
	sh.AddCmd(&ishell.Cmd{Name: "like", Help: "like <node-id>: toggle like on the open thread.", Func: Like})
	sh.AddCmd(&ishell.Cmd{Name: "dislike", Help: "dislike <node-id>: toggle dislike on the open thread.", Func: Dislike})
	sh.AddCmd(&ishell.Cmd{Name: "reply", Help: "reply <node-id> <text>: reply under a node.", Func: ReplyCmd})
	sh.AddCmd(&ishell.Cmd{Name: "resync", Help: "Refetch the open thread.", Func: ResyncCmd})
	sh.AddCmd(&ishell.Cmd{Name: "categories", Help: "List exam sections.", Func: Categories})
	sh.AddCmd(&ishell.Cmd{Name: "topics", Help: "topics <category-id>: list a section's topics.", Func: Topics})
	sh.AddCmd(&ishell.Cmd{Name: "sources", Help: "List question sources.", Func: Sources})
	sh.AddCmd(&ishell.Cmd{Name: "quiz", Help: "quiz <question-id>: answer a timed question.", Func: Quiz})
	sh.AddCmd(&ishell.Cmd{Name: "comment", Help: "comment <question-id> <text>: comment on a question.", Func: Comment})
	sh.AddCmd(&ishell.Cmd{Name: "contribute", Help: "Submit a question for review.", Func: Contribute})
	sh.AddCmd(&ishell.Cmd{Name: "submitted", Help: "List questions pending review.", Func: Submitted})
	sh.AddCmd(&ishell.Cmd{Name: "users", Help: "List registered users (admin).", Func: UsersCmd})

	// A failed mutation asks for a wholesale refetch of the thread it
	// touched; recover consistency in the background.
	events.On <- events.EventHandler{On: events.THREAD_RESYNC, Handler: resyncOpenThread}

	sh.Start()
}

func resyncOpenThread(ev events.Event) error {
	current.Lock()
	store := current.thread
	current.Unlock()

	if store == nil {
		return nil
	}
	if id, _ := ev.Params["post_id"].(string); id != store.PostID() {
		return nil
	}

	ctx, cancel := reqCtx()
	defer cancel()
	return threads.Resync(ctx, deps.Container, store)
}

func reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func identity() config.Identity {
	current.Lock()
	defer current.Unlock()
	return current.identity
}

func openThread() *threads.Store {
	current.Lock()
	defer current.Unlock()
	return current.thread
}
