package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the loopback fallback used when neither the
// SMCH_API_URL environment variable nor the config file names a server.
const DefaultBaseURL = "http://localhost:8000/api"

// DefaultRedisAddr is where the real-time notification broker is
// expected when SMCH_REDIS_ADDR is not set.
const DefaultRedisAddr = "localhost:6379"

// Init reads in the config file and ENV variables if set.
func Init(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".smch-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".smch-cli")
	}

	viper.SetEnvPrefix("smch")
	viper.AutomaticEnv() // read in environment variables that match

	// Missing config file is fine; the user may not have logged in yet.
	_ = viper.ReadInConfig()
}

// BaseURL resolves the API base URL once: env override, then config
// file, then the loopback default.
func BaseURL() string {
	if url := viper.GetString("api_url"); url != "" {
		return url
	}
	if url := viper.GetString("base_url"); url != "" {
		return url
	}
	return DefaultBaseURL
}

// RedisAddr resolves the address of the real-time broker.
func RedisAddr() string {
	if addr := viper.GetString("redis_addr"); addr != "" {
		return addr
	}
	return DefaultRedisAddr
}
