package categories

import (
	"context"
	"net/url"
)

// FindCategories fetches the exam sections available for browsing.
func FindCategories(ctx context.Context, deps Deps) (list Categories, err error) {
	err = deps.Backend().Get(ctx, "/api/categories", &list)
	if err != nil {
		return
	}
	list = list.Enabled()
	return
}

// FindSources fetches the question sources.
func FindSources(ctx context.Context, deps Deps) (list Sources, err error) {
	err = deps.Backend().Get(ctx, "/api/sources", &list)
	if err != nil {
		return
	}
	list = list.Enabled()
	return
}

// FindTopics fetches the topics of a category.
func FindTopics(ctx context.Context, deps Deps, categoryID string) (list Topics, err error) {
	err = deps.Backend().Get(ctx, "/api/getTopicsByCategory?categoryId="+url.QueryEscape(categoryID), &list)
	if err != nil {
		return
	}
	list = list.Enabled()
	return
}
