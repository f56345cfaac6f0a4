package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  mode  ", Value: "  internship  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "mode" || fields[0].String != "internship" {
		t.Fatalf("unexpected mode field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithFields(logger, zap.String(FieldRequestID, "abc")).Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()[FieldRequestID]; got != "abc" {
		t.Fatalf("expected request id abc, got %q", got)
	}

	if same := WithFields(logger); same != logger {
		t.Fatal("expected the same logger when no fields are supplied")
	}

	enriched := WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	enriched.Info("another log")
}

func TestWithCommonFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithCommonFields(zap.New(core), "job", "centroid_knn").Info("ranked")

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldMode] != "job" || ctx[FieldMethod] != "centroid_knn" {
		t.Fatalf("unexpected context %v", ctx)
	}

	if fields := CommonFields("", " "); len(fields) != 0 {
		t.Fatalf("expected empty fields, got %d", len(fields))
	}

	WithCommonFields(nil, "job", "popular").Info("does not panic")
}
