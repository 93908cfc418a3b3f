package promhooks

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/unkn0wn-root/dhwire"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := New(reg, "dhwire")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	h.EntryRejected("ns:a", dhwire.ReasonCorrupt)
	h.EntryRejected("ns:b", dhwire.ReasonCorrupt)
	h.EntryRejected("ns:c", dhwire.ReasonValueDecode)
	h.ProviderSetRejected("ns:a")
	h.ProviderError("get", "ns:a", errors.New("down"))

	if v := testutil.ToFloat64(h.rejected.WithLabelValues(dhwire.ReasonCorrupt)); v != 2 {
		t.Fatalf("corrupt = %v", v)
	}
	if v := testutil.ToFloat64(h.setRejected); v != 1 {
		t.Fatalf("set rejected = %v", v)
	}
	if v := testutil.ToFloat64(h.errors.WithLabelValues("get")); v != 1 {
		t.Fatalf("get errors = %v", v)
	}
}

func TestDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg, "dhwire"); err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New(reg, "dhwire"); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}
