package user

import (
	"github.com/op/go-logging"
	"github.com/tidwall/buntdb"

	"github.com/aspirantsclub/core/core/rest"
)

type Deps interface {
	Backend() *rest.Client
	Bunt() *buntdb.DB
	Log() *logging.Logger
}
