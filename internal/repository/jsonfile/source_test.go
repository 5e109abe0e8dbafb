package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dimerman/thrivemycareer/config"
	"github.com/dimerman/thrivemycareer/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSourceReadsRecords(t *testing.T) {
	dir := t.TempDir()
	cfg := config.InputConfig{
		CompaniesPath: writeFile(t, dir, "companies.json", `[{"id": 1, "name": "Acme", "top_up": 10.5, "email_status": true}]`),
		UsersPath:     writeFile(t, dir, "users.json", `[{"id": 3, "last_name": "Smith", "company_id": 1}, {"id": 4}]`),
	}
	src := New(zap.NewNop().Sugar(), cfg)
	ctx := context.Background()
	require.NoError(t, src.OnStart(ctx))

	companies, err := src.CompanyRecords(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	require.Equal(t, json.Number("10.5"), companies[0]["top_up"])
	require.Equal(t, true, companies[0]["email_status"])

	users, err := src.UserRecords(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, json.Number("1"), users[0]["company_id"])
	require.Equal(t, json.Number("4"), users[1]["id"])
	require.NoError(t, src.OnStop(ctx))
}

func TestSourceOnStartMissingFile(t *testing.T) {
	dir := t.TempDir()
	src := New(zap.NewNop().Sugar(), config.InputConfig{
		CompaniesPath: writeFile(t, dir, "companies.json", `[]`),
		UsersPath:     filepath.Join(dir, "absent.json"),
	})

	err := src.OnStart(context.Background())
	require.ErrorIs(t, err, entities.ErrSource)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSourceMalformed(t *testing.T) {
	dir := t.TempDir()
	src := New(zap.NewNop().Sugar(), config.InputConfig{
		CompaniesPath: writeFile(t, dir, "companies.json", `{"id": 1}`),
		UsersPath:     writeFile(t, dir, "users.json", `[null]`),
	})
	ctx := context.Background()

	_, err := src.CompanyRecords(ctx)
	require.ErrorIs(t, err, entities.ErrSource)

	_, err = src.UserRecords(ctx)
	require.ErrorIs(t, err, entities.ErrSource)
	require.ErrorContains(t, err, "record 0 is null")
}

func TestSourceCanceledContext(t *testing.T) {
	dir := t.TempDir()
	src := New(zap.NewNop().Sugar(), config.InputConfig{
		CompaniesPath: writeFile(t, dir, "companies.json", `[]`),
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.CompanyRecords(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
