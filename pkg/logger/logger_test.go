package logger

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"json info", Config{Level: "info", Format: "json"}, false},
		{"console debug", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud"}, true},
		{"bad format", Config{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l == nil {
				t.Fatal("expected logger")
			}
		})
	}
}

func TestNamedAndWith(t *testing.T) {
	l := Nop()

	named := l.Named("cache")
	if named == l {
		t.Error("Named should return a new logger")
	}

	// With and the field helpers must not panic on a nop logger.
	named.With(String("key", "value"), Int("n", 1)).Info("message")
	named.WithRequestID("req-1").Info("message")
	named.WithError(nil).Info("message")
}
