package threads

import (
	"github.com/op/go-logging"

	"github.com/aspirantsclub/core/core/rest"
)

const testHost = "http://club.test"

type testDeps struct {
	backend *rest.Client
}

func (d testDeps) Backend() *rest.Client {
	return d.backend
}

func (d testDeps) Log() *logging.Logger {
	return logging.MustGetLogger("test")
}

func newTestDeps() testDeps {
	return testDeps{backend: rest.New(testHost, logging.MustGetLogger("test"))}
}
