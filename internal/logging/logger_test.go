package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("short coin list")
	tests := []struct {
		name    string
		field   Field
		wantKey string
		wantVal any
	}{
		{"String", String("algo", "dp"), "algo", "dp"},
		{"Int", Int("x", 4), "x", 4},
		{"Int64", Int64("count", 7), "count", int64(7)},
		{"Uint64", Uint64("cells", 12345678901234567890), "cells", uint64(12345678901234567890)},
		{"Float64", Float64("progress", 0.5), "progress", 0.5},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantVal {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantVal)
			}
		})
	}
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))
	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("problem read")
	if !strings.Contains(buf.String(), "problem read") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewLogger_IncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "orchestration")
	logger.Info("hello")

	output := buf.String()
	if !strings.Contains(output, "orchestration") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("count finished", String("algo", "dp"), Int64("count", 7)) },
			contains: []string{"count finished", "info", "dp", "7"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("row done", Int("index", 2)) },
			contains: []string{"row done", "debug", "2"},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("count failed", errors.New("context canceled"), String("algo", "memo")) },
			contains: []string{"count failed", "context canceled", "memo", "error"},
		},
		{
			name:     "error with nil cause",
			log:      func(l Logger) { l.Error("warning", nil) },
			contains: []string{"warning", "error"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("read %d coins", 3) },
			contains: []string{"read 3 coins"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("hello", "world") },
			contains: []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
			tt.log(logger)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(1_000_000_006)}, "1000000006"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"duration field", Field{Key: "d", Value: 1500 * time.Millisecond}, "1500"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "coins", Value: []int{1, 2, 3}}, "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("test", tt.field)

			if output := buf.String(); !strings.Contains(output, tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, output)
			}
		})
	}
}

func TestNewConsoleLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "app", zerolog.WarnLevel, true)

	logger.Info("should be filtered")
	logger.Warn("table may not fit", Uint64("bytes", 1<<30))
	logger.Error("should appear", errors.New("bad input"))

	output := buf.String()
	if strings.Contains(output, "should be filtered") {
		t.Errorf("info entry should be filtered at warn level, got: %s", output)
	}
	if !strings.Contains(output, "should appear") || !strings.Contains(output, "bad input") {
		t.Errorf("error entry missing, got: %s", output)
	}
	if !strings.Contains(output, "table may not fit") {
		t.Errorf("warn entry should pass at warn level, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.WarnLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{" error ", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info",
			log:      func(l Logger) { l.Info("user action", String("user", "bob")) },
			contains: []string{"[INFO]", "user action", "user=bob"},
		},
		{
			name:     "error",
			log:      func(l Logger) { l.Error("db failed", errors.New("timeout"), String("db", "mysql")) },
			contains: []string{"[ERROR]", "db failed", "timeout", "db=mysql"},
		},
		{
			name:     "warn",
			log:      func(l Logger) { l.Warn("low memory", Uint64("bytes", 2048)) },
			contains: []string{"[WARN]", "low memory", "bytes=2048"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("trace", Int("line", 42)) },
			contains: []string{"[DEBUG]", "trace", "line=42"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("value is %d", 123) },
			contains: []string{"value is 123"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("a", "b", "c") },
			contains: []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("ignored")
	l.Debug("ignored")
	l.Warn("ignored")
	l.Error("ignored", errors.New("x"))
	l.Printf("%s", "ignored")
	l.Println("ignored")
}
