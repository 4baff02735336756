package config

import (
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/monejava/neptune-demo/internal/types"
	"github.com/monejava/neptune-demo/internal/util"
)

// DefaultConfigPath is the properties file read when no --config flag is given.
const DefaultConfigPath = "application.properties"

// DefaultEnvFile is the dotenv file loaded when no --env-file flag is given.
const DefaultEnvFile = ".env"

// LoadEnvFile loads a dotenv file into the process environment. Variables that are
// already set are left untouched. A missing file is not an error.
func LoadEnvFile(path string) error {
	path, ok, err := util.ExistingFile(path)
	if err != nil {
		return types.WrapError(types.CONFIG_LOAD_FAILED, "failed to stat env file", err)
	}
	if !ok {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return types.WrapError(types.CONFIG_LOAD_FAILED, "failed to load env file "+path, err)
	}
	return nil
}

// configType maps a file extension to a viper config type. Anything that is not
// YAML or JSON is read as a key=value properties file.
func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "properties"
	}
}
