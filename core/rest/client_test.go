package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/op/go-logging"
)

func testClient() *Client {
	return New("http://club.test", logging.MustGetLogger("test"))
}

func TestGetDecodesJSON(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/api/thing").Reply(200).JSON(map[string]string{"id": "t1"})

	var out struct {
		Id string `json:"id"`
	}
	if err := testClient().Get(context.Background(), "/api/thing", &out); err != nil {
		t.Fatal(err)
	}
	if out.Id != "t1" {
		t.Errorf("decoded %q, expected t1", out.Id)
	}
}

func TestNon2xxYieldsRequestError(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/api/thing").Reply(404)

	err := testClient().Get(context.Background(), "/api/thing", nil)
	req, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if req.Status != http.StatusNotFound || req.URL != "http://club.test/api/thing" {
		t.Errorf("unexpected error payload %+v", req)
	}
	if !NotFound(err) {
		t.Error("NotFound should recognize a 404")
	}
	if Status(err) != 404 {
		t.Errorf("Status returned %d", Status(err))
	}
}

func TestPostSendsBody(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").
		Post("/api/thing").
		MatchType("json").
		JSON(map[string]string{"content": "hello"}).
		Reply(200).
		JSON(map[string]string{"id": "t2"})

	var out struct {
		Id string `json:"id"`
	}
	err := testClient().Post(context.Background(), "/api/thing", map[string]string{"content": "hello"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.Id != "t2" {
		t.Errorf("decoded %q, expected t2", out.Id)
	}
}

func TestStatusOnTransportError(t *testing.T) {
	if Status(context.Canceled) != 0 {
		t.Error("transport errors carry no status")
	}
}
