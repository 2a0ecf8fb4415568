package breaker

import (
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"
)

func TestNew_TripsAfterThreshold(t *testing.T) {
	cb := New(Config{Name: "test", Timeout: time.Minute, FailureThreshold: 2})
	boom := errors.New("boom")

	for i := 0; i < 2; i++ {
		_, err := cb.Execute(func() (any, error) { return nil, boom })
		require.ErrorIs(t, err, boom)
	}
	require.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (any, error) { return "unreachable", nil })
	require.True(t, IsRejection(err))
}

func TestNew_DefaultThreshold(t *testing.T) {
	cb := New(Config{Name: "default"})
	boom := errors.New("boom")
	for i := 0; i < 4; i++ {
		_, _ = cb.Execute(func() (any, error) { return nil, boom })
	}
	require.Equal(t, gobreaker.StateClosed, cb.State())
	_, _ = cb.Execute(func() (any, error) { return nil, boom })
	require.Equal(t, gobreaker.StateOpen, cb.State())
}

func TestIsRejection(t *testing.T) {
	require.True(t, IsRejection(gobreaker.ErrOpenState))
	require.True(t, IsRejection(gobreaker.ErrTooManyRequests))
	require.False(t, IsRejection(errors.New("other")))
}
