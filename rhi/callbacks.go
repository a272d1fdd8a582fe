package rhi

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// ErrorCallback receives fatal errors: native allocation failures and device removal. After a fatal
// error the operation that produced it returns nil or does nothing, and the caller should treat the
// device as unusable.
type ErrorCallback interface {
	SignalError(file string, line int, message string)
}

// signalError reports a fatal error, with the source location where err was created
func (d *Device) signalError(err error) {
	file, line, _, _ := errors.GetOneLineSource(err)

	d.logger.LogAttrs(context.Background(), slog.LevelError, "Device::signalError",
		slog.String("File", file),
		slog.Int("Line", line),
		slog.String("Error", err.Error()),
	)

	if d.errorCallback != nil {
		d.errorCallback.SignalError(file, line, err.Error())
	}
}

// warn logs a usage error. Usage errors never abort the operation that caused them.
func (d *Device) warn(msg string, attrs ...slog.Attr) {
	d.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}
