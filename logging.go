// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "go.uber.org/zap"

// defaultLogger is used by an Engine constructed without WithLogger.
func defaultLogger() *zap.Logger {
	return zap.NewNop()
}
