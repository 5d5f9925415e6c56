package lib

import "fmt"

const (
	EnvKeyPrefix = "SELLCTL"

	DefaultBaseURL        = "https://sell.app/api/v1/"
	DefaultKeyringService = "sellctl"
)

var (
	LogLevelEnv = fmt.Sprintf("%s_%s", EnvKeyPrefix, "LOG_LEVEL")
)

var (
	SellAppApiKeyEnv       = fmt.Sprintf("%s_%s", EnvKeyPrefix, "API_KEY")
	SellAppNativeApiKeyEnv = "SELLAPP_API_KEY"
)

const (
	SellAppApiSecretKey   = "sellapp_api_key"
	SellAppApiSecretLabel = "Sell.app API Key"
)
