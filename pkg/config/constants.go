package config

// EnvPrefix is passed to envconfig; explicit tags carry the full names.
const EnvPrefix = "FREIGHTDESK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "FREIGHTDESK_DB_DSN"
	EnvDBHost = "FREIGHTDESK_DB_HOST"
	EnvDBUser = "FREIGHTDESK_DB_USER"
	EnvDBName = "FREIGHTDESK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
