package categories

import (
	"context"
	"testing"

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

func TestFindCategoriesFiltersDisabled(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/api/categories").Reply(200).JSON([]map[string]interface{}{
		{"id": "quant", "name": "Quantitative Aptitude", "enabled": true},
		{"id": "legacy", "name": "Old Section", "enabled": false},
	})

	d := testDeps{backend: rest.New("http://club.test", logging.MustGetLogger("test"))}
	list, err := FindCategories(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Id != "quant" {
		t.Errorf("disabled categories should be filtered, got %+v", list)
	}
}

func TestEnabledFilters(t *testing.T) {
	topics := Topics{
		{Id: "t1", Enabled: true},
		{Id: "t2", Enabled: false},
	}
	if got := topics.Enabled(); len(got) != 1 || got[0].Id != "t1" {
		t.Errorf("unexpected topics %+v", got)
	}

	sources := Sources{
		{Id: "s1", Enabled: false},
	}
	if got := sources.Enabled(); len(got) != 0 {
		t.Errorf("unexpected sources %+v", got)
	}
}
