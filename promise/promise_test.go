package promise_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/next-trace/scg-reject/promise"
	"github.com/next-trace/scg-reject/reject"
	"github.com/next-trace/scg-reject/sink"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func ok(context.Context) error { return nil }

func fail(err error) promise.Task {
	return func(context.Context) error { return err }
}

func TestAll_Success(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	count := func(context.Context) error {
		n.Add(1)
		return nil
	}

	require.NoError(t, promise.All(context.Background(), count, count, nil, count))
	assert.Equal(t, int32(3), n.Load())
}

func TestAll_FirstFailureCancelsOthers(t *testing.T) {
	t.Parallel()

	waiter := func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("not cancelled")
		}
	}

	err := promise.All(context.Background(), waiter, fail(io.EOF))
	require.Error(t, err)

	var r *reject.Record
	require.ErrorAs(t, err, &r)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "EOF", r.Message())
}

func TestAll_PanicBecomesRecord(t *testing.T) {
	t.Parallel()

	err := promise.All(context.Background(), func(context.Context) error {
		panic("excel: bad cell")
	})

	r := reject.Ensure(err)
	require.NotNil(t, r)
	assert.Equal(t, "panic: excel: bad cell", r.Message())
	assert.True(t, strings.HasPrefix(r.Trace(), "panic: excel: bad cell\ngoroutine "), "trace=%q", r.Trace())
}

func TestSettle_ResultsInOrder(t *testing.T) {
	t.Parallel()

	results := promise.Settle(context.Background(), ok, fail(io.EOF), ok, fail(reject.New("push failed")))
	require.Len(t, results, 4)

	assert.NoError(t, results[0])
	assert.ErrorIs(t, results[1], io.EOF)
	assert.NoError(t, results[2])
	assert.Equal(t, "push failed", reject.Ensure(results[3]).Message())
}

func TestThen_WrapsFailure(t *testing.T) {
	t.Parallel()

	require.NoError(t, promise.Then(context.Background(), "send push", ok))

	err := promise.Then(context.Background(), "send push", fail(errors.New("token expired")))
	r := reject.Ensure(err)
	require.NotNil(t, r)
	assert.Equal(t, "send push", r.Message())
	assert.True(t, strings.HasSuffix(r.Trace(), "\nCaused By:\ntoken expired"))
	lines := strings.Split(r.Trace(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[1], "promise_test.TestThen_WrapsFailure")
}

func TestCatch_LogsOnce(t *testing.T) {
	t.Parallel()

	rec := &sink.Recorder{}

	assert.False(t, promise.Catch(context.Background(), rec, ok))
	assert.Zero(t, rec.Len())

	failed := promise.Catch(context.Background(), rec,
		fail(reject.Wrap(errors.New("disk full"), "write failed", reject.WithoutCallers())))
	assert.True(t, failed)
	assert.Equal(t, []string{"Error: write failed\nCaused By:\ndisk full"}, rec.Values())
}
