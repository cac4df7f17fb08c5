package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestForContext_AttachesCorrelationID(t *testing.T) {
	SetupTestLogger()
	ctx, id := WithCorrelationID(context.Background())

	l := ForContext(ctx).(entryLogger)

	assert.Equal(t, id, l.Data["correlation_id"])
}

func TestDevelopmentFilter(t *testing.T) {
	entry := logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"sale_id":    "abc",
		"error":      "boom",
		"user_agent": "curl",
	})

	require.NoError(t, developmentFilter{}.Fire(entry))

	assert.Equal(t, logrus.Fields{"sale_id": "abc", "error": "boom"}, entry.Data)
}

func TestConfigure(t *testing.T) {
	defer SetupTestLogger()

	t.Run("development drops noise from the output only", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		_, err := Configure("debug")
		require.NoError(t, err)

		var out bytes.Buffer
		logrus.SetOutput(&out)
		defer logrus.SetOutput(os.Stderr)

		l := L.WithFields(Fields{"sale_id": "abc", "user_agent": "curl"})
		l.Info("sale saved")

		assert.Contains(t, out.String(), "sale_id=abc")
		assert.NotContains(t, out.String(), "user_agent")
		assert.Equal(t, "curl", l.(entryLogger).Data["user_agent"])
	})

	t.Run("production writes json with every field", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := Configure("info")
		require.NoError(t, err)

		var out bytes.Buffer
		logrus.SetOutput(&out)
		defer logrus.SetOutput(os.Stderr)

		L.WithField("user_agent", "curl").Info("request")

		assert.Contains(t, out.String(), `"user_agent":"curl"`)
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		level, err := Configure("loud")

		assert.Error(t, err)
		assert.Equal(t, logrus.InfoLevel, level)
		assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	})
}
