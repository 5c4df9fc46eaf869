package shell

import (
	"strings"
	"time"

	"gopkg.in/abiosoft/ishell.v2"

	"github.com/aspirantsclub/core/board/categories"
	"github.com/aspirantsclub/core/board/comments"
	"github.com/aspirantsclub/core/board/questions"
	"github.com/aspirantsclub/core/deps"
)

func Categories(c *ishell.Context) {
	ctx, cancel := reqCtx()
	defer cancel()

	list, err := categories.FindCategories(ctx, deps.Container)
	if err != nil {
		c.Println("could not load categories:", err)
		return
	}

	for _, item := range list {
		c.Printf("%s  %s\n", item.Id, item.Name)
	}
}

func Topics(c *ishell.Context) {
	if len(c.Args) != 1 {
		c.Println("usage: topics <category-id>")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	list, err := categories.FindTopics(ctx, deps.Container, c.Args[0])
	if err != nil {
		c.Println("could not load topics:", err)
		return
	}

	for _, item := range list {
		c.Printf("%s  %s\n", item.Id, item.Name)
	}
}

func Sources(c *ishell.Context) {
	ctx, cancel := reqCtx()
	defer cancel()

	list, err := categories.FindSources(ctx, deps.Container)
	if err != nil {
		c.Println("could not load sources:", err)
		return
	}

	for _, item := range list {
		c.Printf("%s  %s\n", item.Id, item.Name)
	}
}

// Quiz runs one timed question end to end: show, time, grade, submit,
// then print the question's discussion.
func Quiz(c *ishell.Context) {
	if len(c.Args) != 1 {
		c.Println("usage: quiz <question-id>")
		return
	}

	ctx, cancel := reqCtx()
	defer cancel()

	question, err := questions.FindId(ctx, deps.Container, c.Args[0])
	if err != nil {
		c.Println("could not load question:", err)
		return
	}

	c.Println(question.QuestionText)
	options := question.Options()
	for _, letter := range questions.Letters {
		c.Printf("  %s) %s\n", letter, options[letter])
	}

	attempt := questions.NewSession(question)
	c.Print("your answer: ")
	choice := c.ReadLine()

	result, err := attempt.Answer(choice)
	if err != nil {
		c.Println(err)
		return
	}

	if result.Correct {
		c.Printf("correct, in %s\n", result.Elapsed.Round(time.Second))
	} else {
		c.Printf("wrong, the answer is %s\n", question.CorrectAnswer)
	}

	who := identity()
	sctx, scancel := reqCtx()
	defer scancel()
	if err := questions.SubmitResult(sctx, deps.Container, who.UserID, result); err != nil {
		// Logged already; no success confirmation is shown.
		return
	}

	if len(question.Comments) > 0 {
		c.Println("discussion:")
		list := comments.FindList(sctx, deps.Container, question.Comments).WithUsers(sctx, deps.Container)
		for _, comment := range list {
			c.Printf("  %s: %s (+%d/-%d)\n",
				comment.User.DisplayName(), comment.Content, comment.LikeCount, comment.DislikeCount)
		}
	}
}

// Contribute walks the fields of a user-submitted question and sends it
// for review.
func Contribute(c *ishell.Context) {
	who := identity()
	if who.Empty() {
		c.Println("login first")
		return
	}

	c.ShowPrompt(false)
	defer c.ShowPrompt(true)

	form := questions.Submission{SubmittedBy: who.UserID}
	c.Print("section id: ")
	form.SectionId = c.ReadLine()
	c.Print("topic id: ")
	form.TopicId = c.ReadLine()
	c.Print("source id: ")
	form.SourceId = c.ReadLine()
	c.Print("question: ")
	form.QuestionText = c.ReadLine()
	c.Print("option A: ")
	form.OptionA = c.ReadLine()
	c.Print("option B: ")
	form.OptionB = c.ReadLine()
	c.Print("option C: ")
	form.OptionC = c.ReadLine()
	c.Print("option D: ")
	form.OptionD = c.ReadLine()
	c.Print("correct answer (A-D): ")
	form.CorrectAnswer = c.ReadLine()

	ctx, cancel := reqCtx()
	defer cancel()

	if err := questions.SubmitQuestion(ctx, deps.Container, form); err != nil {
		c.Println("could not submit question:", err)
		return
	}

	c.Println("question submitted for review")
}

// Submitted lists user-contributed questions awaiting review.
func Submitted(c *ishell.Context) {
	ctx, cancel := reqCtx()
	defer cancel()

	list, err := questions.FindSubmitted(ctx, deps.Container)
	if err != nil {
		c.Println("could not load submitted questions:", err)
		return
	}

	for _, q := range list {
		c.Printf("%s  %s (by %s)\n", q.Id, q.QuestionText, q.SubmittedBy)
	}
}

// Comment adds a flat comment under a question.
func Comment(c *ishell.Context) {
	if len(c.Args) < 2 {
		c.Println("usage: comment <question-id> <text>")
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
	comment, err := comments.Add(ctx, deps.Container, c.Args[0], text, who.UserID)
	if err != nil {
		c.Println(err)
		return
	}

	c.Printf("comment %s added\n", comment.Id)
}
