package logging

import "testing"

func TestNew(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := New(debug)
		if err != nil {
			t.Fatalf("unexpected error (debug=%v): %v", debug, err)
		}
		if logger == nil {
			t.Fatalf("expected logger instance (debug=%v)", debug)
		}
		_ = logger.Sync()
	}
}
