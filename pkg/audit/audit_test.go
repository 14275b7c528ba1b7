package audit

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSuccessAndFailureLevels(t *testing.T) {
	testLogger, hook := test.NewNullLogger()
	SetLogger(testLogger)
	defer SetLogger(logrus.StandardLogger())

	Log(AuthnEvent{UserID: "u1", ClientIP: "10.0.0.1", Success: true})
	Log(AuthnEvent{ClientIP: "10.0.0.2", Error: "missing authorization header"})

	require.Len(t, hook.Entries, 2)

	assert.Equal(t, logrus.InfoLevel, hook.Entries[0].Level)
	assert.Equal(t, "authenticated", hook.Entries[0].Message)
	assert.Equal(t, "u1", hook.Entries[0].Data["user_id"])

	assert.Equal(t, logrus.WarnLevel, hook.Entries[1].Level)
	assert.Equal(t, "authentication failed", hook.Entries[1].Message)
	assert.NotContains(t, hook.Entries[1].Data, "user_id")
}

func TestCommandEventFields(t *testing.T) {
	e := CommandEvent{
		UserID:    "u1",
		DeviceID:  "d1",
		Command:   "takeoff",
		CommandID: "c1",
		Success:   true,
	}

	fields := e.Fields()
	assert.Equal(t, "device_command", fields["event"])
	assert.Equal(t, "takeoff", fields["command"])
	assert.Equal(t, "c1", fields["command_id"])
}
