package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "us-east-1", c.AWSRegion)
	assert.Empty(t, c.TableName)
	assert.Empty(t, c.SenderEmail)
	assert.Empty(t, c.AdminEmail)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("CONTACT_TABLE_NAME", "contact-submissions")
	t.Setenv("AWS_REGION", "eu-west-1")

	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, "contact-submissions", c.TableName)
	assert.Equal(t, "eu-west-1", c.AWSRegion)
}

func TestLoad_EmptyEnvKeepsDefaults(t *testing.T) {
	t.Setenv("ADDR", "")

	c := Load()
	assert.Equal(t, ":8080", c.Addr)
}

func TestPersistenceEnabled(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		want   bool
		dynamo bool
	}{
		{name: "nothing configured", cfg: Config{}, want: false, dynamo: false},
		{name: "dynamo table set", cfg: Config{TableName: "t"}, want: true, dynamo: true},
		{name: "postgres dsn set", cfg: Config{DatabaseURL: "postgres://x"}, want: true, dynamo: false},
		{name: "both set prefers dynamo", cfg: Config{TableName: "t", DatabaseURL: "postgres://x"}, want: true, dynamo: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.PersistenceEnabled())
			assert.Equal(t, tt.dynamo, tt.cfg.UseDynamo())
		})
	}
}

func TestNotificationEnabled_RequiresBothAddresses(t *testing.T) {
	assert.False(t, (&Config{}).NotificationEnabled())
	assert.False(t, (&Config{SenderEmail: "noreply@pathsdata.com"}).NotificationEnabled())
	assert.False(t, (&Config{AdminEmail: "admin@pathsdata.com"}).NotificationEnabled())
	assert.True(t, (&Config{
		SenderEmail: "noreply@pathsdata.com",
		AdminEmail:  "admin@pathsdata.com",
	}).NotificationEnabled())
}
