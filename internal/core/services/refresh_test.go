// internal/core/services/refresh_test.go
package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acardosi/stockroom-be/internal/core/services"
	"github.com/acardosi/stockroom-be/test/helpers"
)

func TestRefresher_RunsOnce(t *testing.T) {
	var runs atomic.Int32
	r := services.NewRefresher("test", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}, helpers.TestLogger())

	require.NoError(t, r.Refresh(context.Background()))
	require.NoError(t, r.Refresh(context.Background()))
	assert.Equal(t, int32(2), runs.Load(), "sequential refreshes each run")
}

func TestRefresher_ConcurrentCallsCoalesce(t *testing.T) {
	var runs atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	r := services.NewRefresher("test", func(ctx context.Context) error {
		runs.Add(1)
		close(started)
		<-release
		return nil
	}, helpers.TestLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = r.Refresh(context.Background())
	}()
	<-started

	// These join the in-flight run instead of starting their own.
	joiners := 5
	errs := make(chan error, joiners)
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Refresh(context.Background())
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), runs.Load(), "concurrent refreshes must coalesce into one run")
}

func TestRefresher_JoinerSeesFlightError(t *testing.T) {
	wantErr := errors.New("reload failed")
	started := make(chan struct{})
	release := make(chan struct{})

	r := services.NewRefresher("test", func(ctx context.Context) error {
		close(started)
		<-release
		return wantErr
	}, helpers.TestLogger())

	go func() { _ = r.Refresh(context.Background()) }()
	<-started

	done := make(chan error, 1)
	go func() { done <- r.Refresh(context.Background()) }()

	close(release)
	select {
	case err := <-done:
		assert.ErrorIs(t, err, wantErr)
	case <-time.After(time.Second):
		t.Fatal("joined refresh never returned")
	}
}

func TestRefresher_JoinerHonorsContext(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	r := services.NewRefresher("test", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}, helpers.TestLogger())

	go func() { _ = r.Refresh(context.Background()) }()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRefresher_TriggerDoesNotBlock(t *testing.T) {
	done := make(chan struct{})
	r := services.NewRefresher("test", func(ctx context.Context) error {
		close(done)
		return nil
	}, helpers.TestLogger())

	r.Trigger()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("triggered refresh never ran")
	}
}
