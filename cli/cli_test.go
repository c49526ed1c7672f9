package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"registro/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCLI isolates config loading in an empty working directory and
// returns a database path inside it
func setupCLI(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("EXPORT_DIR", filepath.Join(dir, "exports"))
	t.Setenv("LOG_LEVEL", "error")
	return filepath.Join(dir, "registro.db")
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRecordsCommands(t *testing.T) {
	db := setupCLI(t)

	code, out, _ := run(t, "records", "add", "alpha", "--db", db)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Added record 1\n", out)

	code, out, _ = run(t, "records", "add", "beta", "--db", db, "--json")
	require.Equal(t, exitSuccess, code)
	var added models.Record
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.Equal(t, models.Record{ID: 2, Text: "beta"}, added)

	code, out, _ = run(t, "records", "edit", "1", "gamma", "--db", db)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Updated record 1\n", out)

	code, out, _ = run(t, "records", "list", "--db", db)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "1\tgamma\n2\tbeta\n", out)

	code, out, _ = run(t, "records", "delete", "2", "--db", db)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Deleted record 2\n", out)

	code, out, _ = run(t, "records", "list", "--db", db, "--json")
	require.Equal(t, exitSuccess, code)
	var records []models.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Equal(t, []models.Record{{ID: 1, Text: "gamma"}}, records)

	code, _, _ = run(t, "records", "clear", "--db", db)
	require.Equal(t, exitSuccess, code)

	code, out, _ = run(t, "records", "list", "--db", db, "--json")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "[]\n", out)

	// Ids are not reused after clear
	code, out, _ = run(t, "records", "add", "delta", "--db", db)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Added record 3\n", out)
}

func TestRecordsCommandErrors(t *testing.T) {
	db := setupCLI(t)
	code, _, _ := run(t, "records", "add", "alpha", "--db", db)
	require.Equal(t, exitSuccess, code)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"blank text", []string{"records", "add", "   "}, exitUserError, "text must not be empty"},
		{"missing argument", []string{"records", "add"}, exitUserError, "accepts 1 arg"},
		{"non-numeric id", []string{"records", "delete", "abc"}, exitUserError, "invalid record id"},
		{"unknown id on delete", []string{"records", "delete", "99"}, exitUserError, "record 99 not found"},
		{"unknown id on edit", []string{"records", "edit", "99", "x"}, exitUserError, "record not found"},
		{"blank edit", []string{"records", "edit", "1", " "}, exitUserError, "text must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, append(tt.args, "--db", db)...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}

	code, out, _ := run(t, "records", "list", "--db", db)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "1\talpha\n", out)
}

func TestDatabaseFailureIsSystemError(t *testing.T) {
	dir := t.TempDir()
	setupCLI(t)

	// A regular file where the database directory should be
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	code, _, errOut := run(t, "records", "list", "--db", filepath.Join(blocker, "registro.db"))
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, errOut, "open database")
}

func TestConfigFileMissingIsUserError(t *testing.T) {
	setupCLI(t)

	code, _, errOut := run(t, "records", "list", "--config", "nope.yaml")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, errOut, "load config")
}

func TestScheduleFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ := r.BasicAuth()
		if user != "20210001" || pass != "secreto" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[{"periodo":"20251","dia_semana":1,"hora_inicial":"07:00","hora_final":"08:00","materia":"Redes","grupo":"B","aula":"L1"}]`))
	}))
	defer server.Close()

	t.Run("table output and pdf export", func(t *testing.T) {
		setupCLI(t)
		t.Setenv("SCHEDULE_API_URL", server.URL)

		code, out, _ := run(t, "schedule", "fetch", "--control", "20210001", "--password", "secreto", "--pdf")
		require.Equal(t, exitSuccess, code)
		assert.Contains(t, out, "Periodo")
		assert.Contains(t, out, "Redes")
		assert.Contains(t, out, "PDF written to")

		_, err := os.Stat(filepath.Join(os.Getenv("EXPORT_DIR"), "horarios.pdf"))
		assert.NoError(t, err)
	})

	t.Run("json output", func(t *testing.T) {
		setupCLI(t)
		t.Setenv("SCHEDULE_API_URL", server.URL)

		code, out, _ := run(t, "schedule", "fetch", "--control", "20210001", "--password", "secreto", "--json")
		require.Equal(t, exitSuccess, code)

		var entries []map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "1", entries[0]["dia_semana"])
	})

	t.Run("html output", func(t *testing.T) {
		setupCLI(t)
		t.Setenv("SCHEDULE_API_URL", server.URL)

		code, out, _ := run(t, "schedule", "fetch", "--control", "20210001", "--password", "secreto", "--html")
		require.Equal(t, exitSuccess, code)
		assert.Contains(t, out, "<h1>Horarios de Clases</h1>")
	})

	t.Run("rejected credentials", func(t *testing.T) {
		setupCLI(t)
		t.Setenv("SCHEDULE_API_URL", server.URL)

		code, _, errOut := run(t, "schedule", "fetch", "--control", "20210001", "--password", "mala")
		assert.Equal(t, exitUserError, code)
		assert.Contains(t, errOut, "invalid credentials")
	})

	t.Run("missing flag", func(t *testing.T) {
		setupCLI(t)

		code, _, _ := run(t, "schedule", "fetch", "--control", "20210001")
		assert.Equal(t, exitUserError, code)
	})

	t.Run("unreachable api", func(t *testing.T) {
		setupCLI(t)
		closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		t.Setenv("SCHEDULE_API_URL", closed.URL)
		closed.Close()

		code, _, errOut := run(t, "schedule", "fetch", "--control", "20210001", "--password", "secreto")
		assert.Equal(t, exitSysError, code)
		assert.Contains(t, errOut, "failed to fetch schedule")
	})
}
