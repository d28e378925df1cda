package main

import "go.uber.org/zap"

// logger defaults to a no-op so library code and tests can log freely;
// main swaps in the production logger.
var logger = zap.NewNop().Sugar()

func NewLogger() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	logger = l.Sugar()
	return logger
}
