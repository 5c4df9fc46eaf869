package auth

import (
	"github.com/op/go-logging"

	"github.com/aspirantsclub/core/core/rest"
)

type Deps interface {
	Backend() *rest.Client
	Log() *logging.Logger
}
