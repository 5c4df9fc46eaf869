package user

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

func TestFindIdCachesProfiles(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/api/users/u1").Times(1).Reply(200).JSON(map[string]string{
		"id":       "u1",
		"name":     "Asha Mehta",
		"username": "asha",
		"userType": "mentor",
	})

	d := newTestDeps(t)
	ctx := context.Background()

	first, err := FindId(ctx, d, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if first.Name != "Asha Mehta" || !first.VerifiedMentor() {
		t.Errorf("unexpected user %+v", first)
	}

	// Second lookup must come from the cache; the single mock above is
	// already consumed.
	second, err := FindId(ctx, d, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if second.Id != "u1" || second.Name != first.Name {
		t.Errorf("cache returned %+v", second)
	}
	if !gock.IsDone() {
		t.Error("backend should have been hit exactly once")
	}
}

func TestFindDisplayableFallsBack(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/api/users/missing").Reply(500)

	d := newTestDeps(t)
	got := FindDisplayable(context.Background(), d, "missing")

	if got.Name != Anonymous.Name {
		t.Errorf("expected the anonymous placeholder, got %+v", got)
	}
	if got.Id != "missing" {
		t.Error("placeholder should keep the requested id")
	}
}

func TestInitials(t *testing.T) {
	var tests = []struct{ in, out string }{
		{"Asha Mehta", "AM"},
		{"priya", "P"},
		{"", ""},
		{"A B C", "AB"},
	}

	for _, test := range tests {
		if out := (User{Name: test.in}).Initials(); out != test.out {
			t.Errorf("%q: %q != %q", test.in, out, test.out)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if (User{UserName: "asha"}).DisplayName() != "asha" {
		t.Error("username should back an empty name")
	}
	if (User{}).DisplayName() != Anonymous.Name {
		t.Error("empty profiles display as anonymous")
	}
}
