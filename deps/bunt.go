package deps

import (
	"github.com/tidwall/buntdb"
)

func IgniteBuntDB(container Deps) (Deps, error) {
	file := container.Config().UString("cache.file", "cache.db")
	db, err := buntdb.Open(file)
	if err != nil {
		return container, err
	}

	db.CreateIndex("users", "user:*:profile", buntdb.IndexString)
	container.BuntProvider = db
	return container, nil
}
