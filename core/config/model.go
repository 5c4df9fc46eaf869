package config

import (
	env "github.com/olebedev/config"
)

// Client holds the env-file params the client core runs with.
type Client struct {
	API      API
	Identity Identity
	Sentry   Sentry
	Cache    Cache
}

type API struct {
	URL string
}

// Identity is the caller identity threaded through every mutation and
// query. It comes from the env file at boot and is replaced once the
// backend verifies an OTP login.
type Identity struct {
	UserID string
	Name   string
}

func (i Identity) Empty() bool {
	return i.UserID == ""
}

type Sentry struct {
	DSN string
}

type Cache struct {
	File string
}

// Read maps the parsed env file into a Client config, applying defaults.
func Read(cnf *env.Config) Client {
	return Client{
		API: API{
			URL: cnf.UString("api.url", "https://stageapi.aspirantsclub.in"),
		},
		Identity: Identity{
			UserID: cnf.UString("identity.user_id", ""),
			Name:   cnf.UString("identity.name", ""),
		},
		Sentry: Sentry{
			DSN: cnf.UString("sentry.dns", ""),
		},
		Cache: Cache{
			File: cnf.UString("cache.file", "cache.db"),
		},
	}
}
