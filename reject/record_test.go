package reject_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-reject/reject"
)

func TestFromTrace_Getters(t *testing.T) {
	t.Parallel()

	r := reject.FromTrace("disk full", "")
	assert.Equal(t, "disk full", r.Message())
	assert.Empty(t, r.Trace())
	assert.False(t, r.HasTrace())
	assert.Nil(t, r.Fields())
}

func TestRecord_NilReceiver(t *testing.T) {
	t.Parallel()

	var r *reject.Record

	assert.Equal(t, "<nil>", r.Error())
	assert.Nil(t, r.WithField("a", 1))
	assert.Nil(t, r.WithFields(map[string]any{"a": 1}))
}

func TestRecord_WithFieldsIsCopyOnWrite(t *testing.T) {
	t.Parallel()

	base := reject.FromTrace("x", "Error: x")
	src := map[string]any{"order": 42, "nested": map[string]any{"sku": "A1"}}

	r := base.WithFields(src)
	require.NotSame(t, base, r)
	assert.Nil(t, base.Fields())

	src["order"] = 43
	src["nested"].(map[string]any)["sku"] = "B2"

	want := map[string]any{"order": 42, "nested": map[string]any{"sku": "A1"}}
	if diff := cmp.Diff(want, r.Fields()); diff != "" {
		t.Fatalf("Fields() mismatch (-want +got):\n%s", diff)
	}

	// Returned map is a fresh clone each call.
	got := r.Fields()
	got["order"] = 0
	got["nested"].(map[string]any)["sku"] = "C3"

	if diff := cmp.Diff(want, r.Fields()); diff != "" {
		t.Fatalf("Fields() leaked mutation (-want +got):\n%s", diff)
	}

	assert.Same(t, r, r.WithFields(nil))
}

func TestRecord_WithFieldOverwrites(t *testing.T) {
	t.Parallel()

	r1 := reject.FromTrace("x", "").WithField("a", 1)
	r2 := r1.WithField("a", 2).WithField("b", 3)

	if diff := cmp.Diff(map[string]any{"a": 1}, r1.Fields()); diff != "" {
		t.Fatalf("r1 mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"a": 2, "b": 3}, r2.Fields()); diff != "" {
		t.Fatalf("r2 mismatch (-want +got):\n%s", diff)
	}
}

func FuzzWithField(f *testing.F) {
	f.Add("k", "v")
	f.Add("", "")
	f.Fuzz(func(t *testing.T, k, v string) {
		base := reject.FromTrace("ok", "")
		r := base.WithField(k, v)

		got := r.Fields()
		if got[k] != v {
			t.Fatalf("Fields()[%q]=%v want %q", k, got[k], v)
		}

		got[k] = "mut"
		if r.Fields()[k] == "mut" && v != "mut" {
			t.Fatalf("field mutation leaked into record")
		}

		if base.Fields() != nil {
			t.Fatalf("base record mutated")
		}
	})
}
