package broker

import (
	"context"
	"fmt"
	"log/slog"
)

// writerLogger routes kafka-go writer logs to slog at a fixed level.
type writerLogger struct {
	l     *slog.Logger
	level slog.Level
}

func (w writerLogger) Printf(format string, v ...any) {
	w.l.Log(context.Background(), w.level, fmt.Sprintf(format, v...), slog.String("component", "kafka-writer"))
}
