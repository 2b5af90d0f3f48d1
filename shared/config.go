package shared

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName = "CONFIG"               // If set, will load config from this path and not from devConfigPath
	devConfigPath = "dev/config.dev.jsonc" // Path to config file in development environment
)

type Config struct {
	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`
}

func LoadConfig() *Config {

	// Where is our config file?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
		if _, err := os.Stat(cfgPath); err != nil {
			// No config anywhere: run on defaults.
			return &Config{LogLevel: "Warn"}
		}
	}

	var config Config
	mustDeserializeFile(cfgPath, &config)
	return &config
}

func mustDeserializeFile(fileName string, obj *Config) {
	cfgJson, err := os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
