package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "bs_booking"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300

[redis]
enabled = false
addr = "localhost:6379"
ttl = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "bs-booking-service"

[auth]
admin_token = "secret"

[schedule]
work_start_hour = 8
work_end_hour = 18
closed_days = [0]

[notifications]
enabled = false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=bs_booking sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, 8, cfg.Schedule.WorkStartHour)
	assert.Equal(t, 18, cfg.Schedule.WorkEndHour)
	assert.True(t, cfg.Schedule.IsClosedDay(0))
	assert.False(t, cfg.Schedule.IsClosedDay(1))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidWorkingHours(t *testing.T) {
	content := strings.Replace(validConfig, "work_start_hour = 8", "work_start_hour = 19", 1)

	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_InvalidClosedDay(t *testing.T) {
	content := strings.Replace(validConfig, "closed_days = [0]", "closed_days = [7]", 1)

	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_MetricsPathRequired(t *testing.T) {
	content := strings.Replace(validConfig, `path = "/metrics"`, `path = ""`, 1)

	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}
