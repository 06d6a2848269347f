package config

// EnvPrefix namespaces every environment variable this service reads.
const EnvPrefix = "LUKUSTORE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "LUKUSTORE_DB_DSN"
	EnvDBHost = "LUKUSTORE_DB_HOST"
	EnvDBUser = "LUKUSTORE_DB_USER"
	EnvDBName = "LUKUSTORE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
