// Package config loads runtime settings for the contact backend from the
// environment. Persistence and notification are optional capabilities:
// leaving the corresponding settings empty disables the step instead of
// erroring.
package config

import "os"

// Config holds runtime settings for the contact backend.
//
// Fields:
//   - Addr: bind address for the HTTP server.
//   - TableName: DynamoDB table for submissions. Empty disables the
//     DynamoDB backend.
//   - DatabaseURL: PostgreSQL DSN (pgx). Used as the submission store when
//     TableName is empty. Empty disables it.
//   - SenderEmail / AdminEmail: SES source and recipient addresses. Both
//     must be set for notifications to be enabled.
//   - AWSRegion: region for the DynamoDB and SES clients.
//   - AWSEndpoint: optional base endpoint override for local stacks
//     (DynamoDB Local, LocalStack).
//   - AWSAccessKeyID / AWSSecretAccessKey: optional static credentials for
//     local stacks; when empty the default AWS credential chain is used.
type Config struct {
	Addr               string
	TableName          string
	DatabaseURL        string
	SenderEmail        string
	AdminEmail         string
	AWSRegion          string
	AWSEndpoint        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// LoadDefaults populates Config with development defaults. Persistence and
// notification stay disabled until configured.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.AWSRegion = "us-east-1"
}

// Load builds a Config by applying defaults and overlaying values from the
// environment.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.fromEnv()
	return cfg
}

func (c *Config) fromEnv() {
	setIfPresent(&c.Addr, "ADDR")
	setIfPresent(&c.TableName, "CONTACT_TABLE_NAME")
	setIfPresent(&c.DatabaseURL, "DATABASE_URL")
	setIfPresent(&c.SenderEmail, "SENDER_EMAIL_ID")
	setIfPresent(&c.AdminEmail, "ADMIN_EMAIL_ID")
	setIfPresent(&c.AWSRegion, "AWS_REGION")
	setIfPresent(&c.AWSEndpoint, "AWS_ENDPOINT_URL")
	setIfPresent(&c.AWSAccessKeyID, "AWS_ACCESS_KEY_ID")
	setIfPresent(&c.AWSSecretAccessKey, "AWS_SECRET_ACCESS_KEY")
}

func setIfPresent(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// PersistenceEnabled reports whether any submission store is configured.
func (c *Config) PersistenceEnabled() bool {
	return c.TableName != "" || c.DatabaseURL != ""
}

// UseDynamo reports whether the DynamoDB backend is selected. The table
// name takes precedence over a Postgres DSN when both are set.
func (c *Config) UseDynamo() bool {
	return c.TableName != ""
}

// NotificationEnabled reports whether admin email notifications are
// configured. Both the sender and the admin address are required.
func (c *Config) NotificationEnabled() bool {
	return c.SenderEmail != "" && c.AdminEmail != ""
}
