package cli

import (
	"context"
	"testing"

	"github.com/gabapcia/suitrack/internal/snapshotstream"

	"github.com/stretchr/testify/assert"
)

type streamFake struct {
	startFunc func(ctx context.Context) (<-chan snapshotstream.SnapshotUpdate, error)
	closeFunc func()
}

func (f *streamFake) Start(ctx context.Context) (<-chan snapshotstream.SnapshotUpdate, error) {
	return f.startFunc(ctx)
}

func (f *streamFake) Close() {
	if f.closeFunc != nil {
		f.closeFunc()
	}
}

func TestTrackWalletsCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := trackWalletsCommand(&streamFake{})

		assert.Equal(t, "track", cmd.Name)
		assert.Empty(t, cmd.Flags)
	})

	t.Run("should drain updates and stop when the stream ends", func(t *testing.T) {
		updateCh := make(chan snapshotstream.SnapshotUpdate, 1)
		updateCh <- snapshotstream.SnapshotUpdate{}
		close(updateCh)

		closed := false
		service := &streamFake{
			startFunc: func(ctx context.Context) (<-chan snapshotstream.SnapshotUpdate, error) {
				return updateCh, nil
			},
			closeFunc: func() {
				closed = true
			},
		}

		cmd := trackWalletsCommand(service)

		err := cmd.Action(t.Context(), cmd)
		assert.NoError(t, err)
		assert.True(t, closed)
	})

	t.Run("should return error when the stream cannot start", func(t *testing.T) {
		service := &streamFake{
			startFunc: func(ctx context.Context) (<-chan snapshotstream.SnapshotUpdate, error) {
				return nil, snapshotstream.ErrServiceAlreadyStarted
			},
		}

		cmd := trackWalletsCommand(service)

		err := cmd.Action(t.Context(), cmd)
		assert.ErrorIs(t, err, snapshotstream.ErrServiceAlreadyStarted)
	})
}
