package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Load_Defaults(t *testing.T) {
	t.Setenv("NEIGHBORHOOD_AUTH_SECRET", "test-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "smart_neighborhood.db", cfg.DB.Path)
	assert.Equal(t, "internal/db/migrations", cfg.DB.MigrationsPath)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Hour, cfg.Reminder.Interval)
	assert.Equal(t, "", cfg.Kafka.Brokers)
	assert.Equal(t, "neighborhood-notifications", cfg.Kafka.Topic)
}

func Test_Load_EnvOverrides(t *testing.T) {
	t.Setenv("NEIGHBORHOOD_AUTH_SECRET", "test-secret")
	t.Setenv("NEIGHBORHOOD_SERVER_HOST", "127.0.0.1")
	t.Setenv("NEIGHBORHOOD_SERVER_PORT", "8080")
	t.Setenv("NEIGHBORHOOD_DB_PATH", "/tmp/other.db")
	t.Setenv("NEIGHBORHOOD_REMINDER_INTERVAL", "15m")
	t.Setenv("NEIGHBORHOOD_KAFKA_BROKERS", "localhost:9092")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "/tmp/other.db", cfg.DB.Path)
	assert.Equal(t, 15*time.Minute, cfg.Reminder.Interval)
	assert.Equal(t, "localhost:9092", cfg.Kafka.Brokers)
}

// An unset secret must not stop the service: the default deployment runs
// with no environment at all and still has to come up on :5000.
func Test_Load_GeneratedSecret(t *testing.T) {
	t.Setenv("NEIGHBORHOOD_AUTH_SECRET", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assert.NotEmpty(t, cfg.Auth.Secret)

	other, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assert.NotEqual(t, cfg.Auth.Secret, other.Auth.Secret)
}

func Test_Load_Validation(t *testing.T) {
	cases := []struct {
		name        string
		env         map[string]string
		expectedErr error
	}{
		{
			name: "unparseable reminder interval",
			env: map[string]string{
				"NEIGHBORHOOD_REMINDER_INTERVAL": "soon",
			},
			expectedErr: ErrInvalidInterval,
		},
		{
			name: "negative reminder interval",
			env: map[string]string{
				"NEIGHBORHOOD_REMINDER_INTERVAL": "-5m",
			},
			expectedErr: ErrInvalidInterval,
		},
		{
			name: "port out of range",
			env: map[string]string{
				"NEIGHBORHOOD_AUTH_SECRET": "test-secret",
				"NEIGHBORHOOD_SERVER_PORT": "70000",
			},
			expectedErr: ErrInvalidPort,
		},
		{
			name: "empty db path",
			env: map[string]string{
				"NEIGHBORHOOD_AUTH_SECRET": "test-secret",
				"NEIGHBORHOOD_DB_PATH":     " ",
			},
			expectedErr: nil,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
