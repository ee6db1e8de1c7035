package servicecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

type fakeLoader struct {
	services []*domain.Service
	err      error
	calls    int
}

func (f *fakeLoader) List(ctx context.Context) ([]*domain.Service, error) {
	f.calls++
	return f.services, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{})  {}

func TestList_NilRedisReadsStorageDirectly(t *testing.T) {
	loader := &fakeLoader{services: []*domain.Service{{ID: "svc-1", Name: "Coloração"}}}
	cache := New(nil, loader, time.Minute, nopLogger{})

	services, err := cache.List(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "svc-1", services[0].ID)
	assert.Equal(t, 1, loader.calls)

	// инвалидация без Redis безопасна
	cache.Invalidate(context.Background())
}

func TestList_NilRedisPropagatesLoaderError(t *testing.T) {
	loader := &fakeLoader{err: errors.New("connection refused")}
	cache := New(nil, loader, time.Minute, nopLogger{})

	_, err := cache.List(context.Background())

	assert.Error(t, err)
}
