package core

import "time"

type AppConfig interface {
	GetRuntimePath() string
	GetDataServiceURL() string
	GetRequestTimeout() time.Duration
	IsTelegramSelected() bool
	IsCLISelected() bool
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
