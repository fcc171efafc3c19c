package config

type Configer interface {
	LoadFromPath(path string) error
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKey(key string) int
	MustGetIntKey(key string) int
	GetIntKeyWithDefault(key string, defaultValue int) int
	GetPathKey(key string) string
}

// Keys read by the daemon.
const (
	DotenvPathKey     = "ACTIVITIES_DOTENV_PATH"
	HostKey           = "ACTIVITIES_HOST"
	PortKey           = "ACTIVITIES_PORT"
	StaticDirKey      = "ACTIVITIES_STATIC_DIR"
	SeedFileKey       = "ACTIVITIES_SEED_FILE"
	SeedDBKey         = "ACTIVITIES_SEED_DB"
	SeedSqlitePathKey = "ACTIVITIES_SEED_SQLITE_PATH"
	LogLevelKey       = "ACTIVITIES_LOG_LEVEL"
	ServerKey         = "ACTIVITIES_SERVER"
)
