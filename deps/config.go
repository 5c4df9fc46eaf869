package deps

import (
	"os"

	"github.com/olebedev/config"
)

func IgniteConfig(container Deps) (Deps, error) {
	envfile := os.Getenv("ENV_FILE")
	if envfile == "" {
		envfile = "./env.json"
	}

	cnf, err := config.ParseJsonFile(envfile)
	if err != nil {
		log.Error(err)
		return container, err
	}

	container.ConfigProvider = cnf
	return container, nil
}
