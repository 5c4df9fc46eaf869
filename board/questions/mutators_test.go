package questions

import (
	"context"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/op/go-logging"

	"github.com/aspirantsclub/core/core/rest"
)

type testDeps struct {
	backend *rest.Client
}

func (d testDeps) Backend() *rest.Client { return d.backend }
func (d testDeps) Log() *logging.Logger {
	return logging.MustGetLogger("test")
}

func newTestDeps() testDeps {
	return testDeps{backend: rest.New("http://club.test", logging.MustGetLogger("test"))}
}

func TestSubmitResult(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").
		Get("/api/addResponse").
		MatchParam("userId", "u1").
		MatchParam("questionId", "q1").
		MatchParam("timer", "42").
		MatchParam("response", "true").
		Reply(200)

	err := SubmitResult(context.Background(), newTestDeps(), "u1", Result{
		QuestionId: "q1",
		Correct:    true,
		Elapsed:    42 * time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSubmitResultFailureIsNonFatal(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/api/addResponse").Reply(500)

	err := SubmitResult(context.Background(), newTestDeps(), "u1", Result{QuestionId: "q1"})
	if err == nil {
		t.Fatal("the error should still be reported to the caller")
	}
}

func TestFindByFilters(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").
		Get("/api/getQuestionsByFilters").
		MatchParam("categoryId", "quant").
		MatchParam("topicId", "algebra").
		Reply(200).
		JSON([]map[string]string{{"id": "q1"}, {"id": "q2"}})

	list, err := FindByFilters(context.Background(), newTestDeps(), Filters{
		CategoryId: "quant",
		TopicId:    "algebra",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 questions, got %d", len(list))
	}
}
