package config

const (
	EnvPrefix = "SWIFTMARKET"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv             = "SWIFTMARKET_APP_ENV"
	EnvPort               = "SWIFTMARKET_APP_PORT"
	EnvLogLevel           = "SWIFTMARKET_LOG_LEVEL"
	EnvCatalogSeed        = "SWIFTMARKET_CATALOG_SEED"
	EnvCatalogPerCategory = "SWIFTMARKET_CATALOG_PER_CATEGORY"
	EnvCatalogFile        = "SWIFTMARKET_CATALOG_FILE"
	EnvVendorID           = "SWIFTMARKET_VENDOR_ID"
	EnvSessionIdleTTL     = "SWIFTMARKET_SESSION_IDLE_TTL"
	EnvRedisURL           = "SWIFTMARKET_REDIS_URL"
	EnvOpenAIAPIKey       = "SWIFTMARKET_OPENAI_API_KEY"
	EnvDescribeCacheTTL   = "SWIFTMARKET_DESCRIBE_CACHE_TTL"
)
