// Package zaplog lets code written against go.uber.org/zap log through a
// simplelog handler:
//
//	log := zap.New(zaplog.NewCore(h), zap.AddCaller()).Named("api")
//	log.Info("listening", zap.Int("port", 8080))
//	// [INFO] api: listening port=8080
package zaplog
