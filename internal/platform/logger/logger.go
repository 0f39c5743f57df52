// Package logger は zap を用いた構造化ログの薄いラッパーを提供します。
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Logger は zap.SugaredLogger のラッパーです。サービス層は操作の成否を
// この Logger 経由で記録します。
type Logger struct {
	sugar *zap.SugaredLogger
}

// New は mode (dev|prod) に応じた Logger を生成します。file が空でない場合は
// 標準エラーの代わりにそのファイルへ出力します。
func New(mode, file string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// NewNop は何も出力しない Logger を返します。テスト用です。
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Sync はバッファされたログを書き出します。
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

// Debug はデバッグレベルのログを記録します。
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info は情報レベルのログを記録します。
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn は警告レベルのログを記録します。
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error はエラーレベルのログを記録します。
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// With は付加フィールドを持つ子 Logger を返します。
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}
