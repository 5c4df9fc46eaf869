package questions

import (
	"context"
	"errors"
	"net/url"

	"github.com/aspirantsclub/core/core/rest"
)

var QuestionNotFound = errors.New("question has not been found by given criteria")

func FindId(ctx context.Context, deps Deps, id string) (question Question, err error) {
	err = deps.Backend().Get(ctx, "/api/getQuestionsbyId?id="+url.QueryEscape(id), &question)
	if rest.NotFound(err) {
		err = QuestionNotFound
	}
	return
}

// FindByFilters fetches a practice set narrowed by category, topic and
// source. Empty filter fields are omitted.
func FindByFilters(ctx context.Context, deps Deps, f Filters) (list Questions, err error) {
	params := url.Values{}
	if f.CategoryId != "" {
		params.Set("categoryId", f.CategoryId)
	}
	if f.TopicId != "" {
		params.Set("topicId", f.TopicId)
	}
	if f.SourceId != "" {
		params.Set("sourceId", f.SourceId)
	}

	err = deps.Backend().Get(ctx, "/api/getQuestionsByFilters?"+params.Encode(), &list)
	return
}

// FindSubmitted lists questions contributed by users, pending review.
func FindSubmitted(ctx context.Context, deps Deps) (list Questions, err error) {
	err = deps.Backend().Get(ctx, "/api/getSubmittedQuestions", &list)
	return
}
