package config

import (
	"strconv"

	"github.com/apex/log"
	"github.com/mitchellh/go-homedir"
)

type keyGetter interface {
	GetKey(key string) string
}

func mustGetKey(c keyGetter, key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func getKeyWithDefault(c keyGetter, key, defaultValue string) string {
	val := c.GetKey(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func mustGetIntKey(c keyGetter, key string) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		log.Fatalf("Required config key either doesn't exist or isn't an int: '%s': %s", key, err)
	}

	return intVal
}

func getIntKeyWithDefault(c keyGetter, key string, defaultValue int) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}

// expandPath expands a leading ~. A path that can't be expanded is returned
// as given.
func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}

	return expanded
}
