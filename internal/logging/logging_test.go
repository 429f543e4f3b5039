// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pppaal/saju-astro-chat-sub036/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	l, err := logging.New("warn", false, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = logging.New("warn", true, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = logging.New("loud", false, false)
	assert.Error(t, err)
}
