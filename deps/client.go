package deps

import (
	"github.com/aspirantsclub/core/core/rest"
)

func IgniteBackend(container Deps) (Deps, error) {
	base := container.Config().UString("api.url", "https://stageapi.aspirantsclub.in")
	container.BackendProvider = rest.New(base, log)
	return container, nil
}
