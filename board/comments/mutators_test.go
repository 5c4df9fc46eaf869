package comments

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/op/go-logging"
	"github.com/tidwall/buntdb"

	"github.com/aspirantsclub/core/core/rest"
)

type testDeps struct {
	backend *rest.Client
	bunt    *buntdb.DB
}

func (d testDeps) Backend() *rest.Client { return d.backend }
func (d testDeps) Bunt() *buntdb.DB      { return d.bunt }
func (d testDeps) Log() *logging.Logger {
	return logging.MustGetLogger("test")
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	db, err := buntdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return testDeps{
		backend: rest.New("http://club.test", logging.MustGetLogger("test")),
		bunt:    db,
	}
}

func TestToggleLikeRevertsOnFailure(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Post("/api/comments/c1/like").Reply(500)

	c := Comment{
		Id:           "c1",
		LikeCount:    1,
		LikedBy:      []string{"u1"},
		DislikedBy:   []string{},
		DislikeCount: 0,
	}

	if err := ToggleLike(context.Background(), newTestDeps(t), &c, "u2"); err == nil {
		t.Fatal("expected an error")
	}

	if len(c.LikedBy) != 1 || c.LikedBy[0] != "u1" || c.LikeCount != 1 {
		t.Errorf("comment not restored to snapshot: %+v", c)
	}
}

func TestToggleDislikeSettles(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Post("/api/comments/c1/dislike").Reply(200).JSON(map[string]interface{}{
		"id":         "c1",
		"likes":      0,
		"dislikes":   1,
		"likedBy":    []string{},
		"dislikedBy": []string{"u1"},
	})

	c := Comment{Id: "c1", LikedBy: []string{"u1"}, LikeCount: 1}

	if err := ToggleDislike(context.Background(), newTestDeps(t), &c, "u1"); err != nil {
		t.Fatal(err)
	}

	if c.DislikeCount != 1 || len(c.DislikedBy) != 1 || len(c.LikedBy) != 0 {
		t.Errorf("authoritative state not applied: %+v", c)
	}
}

func TestFindListDropsFailures(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/api/getCommentsbyId").MatchParam("id", "c1").
		Reply(200).JSON(map[string]string{"id": "c1", "text": "first"})
	gock.New("http://club.test").Get("/api/getCommentsbyId").MatchParam("id", "c2").
		Reply(404)

	list := FindList(context.Background(), newTestDeps(t), []string{"c1", "c2"})
	if len(list) != 1 || list[0].Id != "c1" {
		t.Errorf("expected only c1 to survive, got %+v", list)
	}
}

func TestAddRejectsEmptyText(t *testing.T) {
	if _, err := Add(context.Background(), newTestDeps(t), "q1", "  \t", "u1"); err != ErrEmptyComment {
		t.Errorf("expected ErrEmptyComment, got %v", err)
	}
	if _, err := AddReply(context.Background(), newTestDeps(t), "c1", "<p></p>", "u1"); err != ErrEmptyComment {
		t.Errorf("markup-only text: expected ErrEmptyComment, got %v", err)
	}
}

func TestAddReply(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Post("/api/comments/c1/replies").
		JSON(map[string]string{"text": "agreed", "submittedBy": "u1"}).
		Reply(200).JSON(map[string]string{"id": "c9", "text": "agreed"})

	comment, err := AddReply(context.Background(), newTestDeps(t), "c1", "agreed", "u1")
	if err != nil {
		t.Fatal(err)
	}
	if comment.Id != "c9" {
		t.Errorf("unexpected comment %+v", comment)
	}
}
