package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS to the container CPU quota, if any. An explicit GOMAXPROCS environment variable wins.
func Init() error {
	prev := runtime.GOMAXPROCS(0)
	l := logger.With(
		slogx.String("package", "automaxprocs"),
		slogx.Int("prev_maxprocs", prev),
	)

	printf := func(format string, v ...any) {
		var attrs []slog.Attr
		if _, ok := utils.Optional(v); ok {
			attrs = append(attrs, slogx.Int("set_maxprocs", runtime.GOMAXPROCS(0)))
		}
		if _, ok := os.LookupEnv("GOMAXPROCS"); ok {
			attrs = append(attrs, slog.Bool("from_env", true))
		}
		l.LogAttrs(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}

	if _, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
