package deps

import (
	"github.com/getsentry/raven-go"
)

func IgniteSentry(container Deps) (Deps, error) {
	dsn := container.Config().UString("sentry.dns", "")
	if dsn == "" {
		return container, nil
	}

	if err := raven.SetDSN(dsn); err != nil {
		log.Error(err)
		return container, err
	}

	return container, nil
}
