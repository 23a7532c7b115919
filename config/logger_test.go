package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encodeErrorField(t *testing.T, err error) string {
	t.Helper()
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	enc := newEncoder(ec)

	ent := zapcore.Entry{Level: zapcore.ErrorLevel, Time: time.Now(), Message: "failed"}
	buf, eerr := enc.EncodeEntry(ent, []zapcore.Field{zap.Error(err)})
	if eerr != nil {
		t.Fatalf("EncodeEntry() error = %v", eerr)
	}
	defer buf.Free()
	return buf.String()
}

func TestConsoleEncoderShortensErrors(t *testing.T) {
	long := "malformed block " + strings.Repeat("H1 { color: blue } ", 100)

	out := encodeErrorField(t, errors.New(long))
	if strings.Contains(out, long) {
		t.Error("console output carries full error text")
	}
	if !strings.Contains(out, long[:maxConsoleError]+"...") {
		t.Errorf("console output misses truncated error text: %q", out)
	}

	short := "malformed block \"H1 color: blue }\""
	out = encodeErrorField(t, errors.New(short))
	if !strings.Contains(out, short) {
		t.Errorf("short error text was mangled: %q", out)
	}
	if strings.Contains(out, "...") {
		t.Errorf("short error text was truncated: %q", out)
	}
}

func TestLoggingPrepare(t *testing.T) {
	conf := &LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none"},
	}

	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if log == nil {
		t.Fatal("Prepare() returned nil logger")
	}
	// everything is nop here, must not blow up
	log.Debug("quiet")
	log.Error("quiet")
}
