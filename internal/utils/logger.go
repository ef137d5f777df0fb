package utils

import "go.uber.org/zap"

// NewLogger builds a development logger for local runs and a JSON
// production logger everywhere else.
func NewLogger(env string) *zap.Logger {
	var log *zap.Logger
	var err error
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}
