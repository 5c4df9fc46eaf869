package deps

import (
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/tidwall/buntdb"

	"github.com/aspirantsclub/core/core/rest"
)

type Deps struct {
	ConfigProvider  *config.Config
	LoggerProvider  *logging.Logger
	BackendProvider *rest.Client
	BuntProvider    *buntdb.DB
}

func (d Deps) Config() *config.Config {
	return d.ConfigProvider
}

func (d Deps) Log() *logging.Logger {
	return d.LoggerProvider
}

func (d Deps) Backend() *rest.Client {
	return d.BackendProvider
}

func (d Deps) Bunt() *buntdb.DB {
	return d.BuntProvider
}
