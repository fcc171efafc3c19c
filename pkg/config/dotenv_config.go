package config

import (
	"os"

	"github.com/apex/log"
	"github.com/subosito/gotenv"
)

// DotenvConfig reads keys from the environment, optionally after loading a
// dotenv file into it. Variables already set in the environment win.
type DotenvConfig struct {
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{DotenvPath: path}
}

// MustLoadFromDotenv loads the file named by ACTIVITIES_DOTENV_PATH, if set.
// Without it the config is just the environment.
func MustLoadFromDotenv() *DotenvConfig {
	c := NewDotenvConfig(expandPath(os.Getenv(DotenvPathKey)))
	if err := c.Load(); err != nil {
		log.Fatalf("Failed loading configuration file %s: %s", c.DotenvPath, err)
	}

	return c
}

func (c *DotenvConfig) LoadFromPath(path string) error {
	c.DotenvPath = expandPath(path)
	return c.Load()
}

func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		return nil
	}

	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) GetKey(key string) string {
	return os.Getenv(key)
}

func (c *DotenvConfig) MustGetKey(key string) string {
	return mustGetKey(c, key)
}

func (c *DotenvConfig) GetKeyWithDefault(key, defaultValue string) string {
	return getKeyWithDefault(c, key, defaultValue)
}

func (c *DotenvConfig) GetIntKey(key string) int {
	return getIntKeyWithDefault(c, key, 0)
}

func (c *DotenvConfig) MustGetIntKey(key string) int {
	return mustGetIntKey(c, key)
}

func (c *DotenvConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return getIntKeyWithDefault(c, key, defaultValue)
}

func (c *DotenvConfig) GetPathKey(key string) string {
	return expandPath(c.GetKey(key))
}
