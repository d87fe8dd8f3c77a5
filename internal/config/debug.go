package config

import "os"

func IsDebug() bool {
	return os.Getenv("TERM_DEBUG") == "1"
}
