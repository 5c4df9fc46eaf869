package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/tidwall/buntdb"
)

var UserNotFound = errors.New("user has not been found by given criteria")

const cacheTTL = time.Hour

// FindId resolves a user profile, hitting the local cache first.
func FindId(ctx context.Context, deps Deps, id string) (user User, err error) {
	if cached, hit := fromCache(deps, id); hit {
		return cached, nil
	}

	err = deps.Backend().Get(ctx, "/api/users/"+id, &user)
	if err != nil {
		return user, UserNotFound
	}

	toCache(deps, user)
	return
}

// FindDisplayable never fails the render: resolution errors yield the
// anonymous placeholder carrying the requested id.
func FindDisplayable(ctx context.Context, deps Deps, id string) User {
	user, err := FindId(ctx, deps, id)
	if err != nil {
		deps.Log().Warningf("could not resolve user %s, using placeholder", id)
		return Placeholder(id)
	}

	return user
}

// FindList fetches the full user roster (admin dashboard data).
func FindList(ctx context.Context, deps Deps) (users Users, err error) {
	err = deps.Backend().Get(ctx, "/api/getUsers", &users)
	return
}

func fromCache(deps Deps, id string) (user User, hit bool) {
	err := deps.Bunt().View(func(tx *buntdb.Tx) error {
		raw, err := tx.Get("user:" + id + ":profile")
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(raw), &user)
	})
	return user, err == nil
}

func toCache(deps Deps, user User) {
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	deps.Bunt().Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set("user:"+user.Id+":profile", string(raw), &buntdb.SetOptions{
			Expires: true,
			TTL:     cacheTTL,
		})
		return err
	})
}
