package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional `.sqlgrammar.yaml` project file: a default
// dialect so repeated invocations in one project don't need `--dialect`
// every time, mirroring the teacher's per-project sqlcode.yaml.
type Config struct {
	Dialect string `yaml:"dialect"`
}

// loadConfig reads .sqlgrammar.yaml from the working directory; a
// missing file is not an error, it just yields a zero Config.
func loadConfig() (Config, error) {
	bytes, err := os.ReadFile(".sqlgrammar.yaml")
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
