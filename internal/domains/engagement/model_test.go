package engagement

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Values(t *testing.T) {
	tests := []struct {
		status Status
		value  int16
		name   string
	}{
		{StatusNone, 0, "none"},
		{StatusWaiting, 1, "waiting"},
		{StatusWatching, 2, "watching"},
		{StatusPaused, 4, "paused"},
		{StatusStopped, 8, "stopped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, int16(tt.status))
			assert.Equal(t, tt.name, tt.status.String())
			assert.True(t, tt.status.IsValid())
		})
	}
}

func TestStatus_Invalid(t *testing.T) {
	for _, v := range []int16{3, 5, 6, 7, 16, -1} {
		assert.False(t, Status(v).IsValid(), "value %d", v)
	}
	assert.Equal(t, "Status(3)", Status(3).String())
}

func TestStatus_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(State{Favorited: true, Status: StatusPaused})
	require.NoError(t, err)
	assert.JSONEq(t, `{"favorited":true,"status":"paused"}`, string(b))
}
