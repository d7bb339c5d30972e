package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "legacy-secret")

	cfg := LoadConfig()
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, "bistroDB", cfg.DBName)
	assert.Equal(t, "legacy-secret", cfg.JWTSecret)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBDriver: DriverMongo}
	require.Error(t, cfg.Validate(), "missing secret must be rejected")

	cfg.JWTSecret = "s3cret"
	require.NoError(t, cfg.Validate())

	cfg.DBDriver = "sqlite"
	require.Error(t, cfg.Validate())
}

func TestConnectionStrings(t *testing.T) {
	cfg := &Config{DBUser: "bistro", DBPassword: "pw", DBHost: "cluster0.example.net", DBName: "bistroDB"}
	assert.Equal(t, "mongodb+srv://bistro:pw@cluster0.example.net/?retryWrites=true&w=majority&appName=Cluster0", cfg.MongoConnString())

	cfg.MongoURI = "mongodb://localhost:27017"
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoConnString())

	cfg.DBDriver = DriverMySQL
	cfg.DBHost = "localhost"
	assert.Equal(t, "bistro:pw@tcp(localhost:3306)/bistroDB?parseTime=true", cfg.SQLDSN())

	cfg.DBDriver = DriverPostgres
	assert.Equal(t, "host=localhost port=5432 user=bistro password=pw dbname=bistroDB sslmode=disable", cfg.SQLDSN())
}
