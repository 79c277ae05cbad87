package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-asset-keeper/internal/adapter"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/mock"
	"github.com/MKhiriev/go-asset-keeper/models"
)

func newTestCLI(t *testing.T, stdin string) (*commandLine, *mock.MockAssetAdapter, *bytes.Buffer) {
	t.Helper()
	m := mock.NewMockAssetAdapter(gomock.NewController(t))
	out := &bytes.Buffer{}
	return &commandLine{
		adapter:   m,
		buildInfo: models.NewAppBuildInfo("0.1.0", "", ""),
		stdin:     strings.NewReader(stdin),
		stdout:    out,
		logger:    logger.Nop(),
	}, m, out
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"list", "extra"}, {"get"}, {"create"}, {"delete", "Dove1"}} {
		cli, _, _ := newTestCLI(t, "")
		assert.ErrorIs(t, cli.run(context.Background(), args), errUsage, "args %v", args)
	}
}

func TestRun_List(t *testing.T) {
	cli, m, out := newTestCLI(t, "")
	m.EXPECT().ListAssets(gomock.Any()).Return([]models.Asset{{Name: "Dove1", Type: models.Satellite, Class: models.Dove}}, nil)

	require.NoError(t, cli.run(context.Background(), []string{"list"}))
	assert.JSONEq(t, `{"assets":[{"asset_name":"Dove1","asset_type":"satellite","asset_class":"dove"}]}`, out.String())
}

func TestRun_Get(t *testing.T) {
	cli, m, _ := newTestCLI(t, "")
	m.EXPECT().GetAsset(gomock.Any(), "Sky130").Return(models.Asset{}, adapter.ErrNotFound)

	err := cli.run(context.Background(), []string{"get", "Sky130"})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestRun_CreateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"assets":[{"asset_name":"Dish1","asset_type":"antenna","asset_class":"dish"}]}`), 0o600))

	cli, m, out := newTestCLI(t, "")
	m.EXPECT().CreateAssets(gomock.Any(), models.Asset{Name: "Dish1", Type: models.Antenna, Class: models.Dish}).
		Return(models.BatchReport{}, nil)

	require.NoError(t, cli.run(context.Background(), []string{"create", path}))
	assert.Equal(t, "created 1 assets\n", out.String())
}

func TestRun_CreateRejectedFromStdin(t *testing.T) {
	report := models.BatchReport{Assets: []models.AssetReport{{Name: "Do", Errors: []string{"name is not formatted correctly"}}}}

	cli, m, out := newTestCLI(t, `{"assets":[{"asset_name":"Do","asset_type":"antenna","asset_class":"dish"}]}`)
	m.EXPECT().CreateAssets(gomock.Any(), gomock.Any()).Return(report, adapter.ErrBatchRejected)

	err := cli.run(context.Background(), []string{"create", "-"})

	assert.ErrorIs(t, err, adapter.ErrBatchRejected)
	assert.JSONEq(t, `{"assets":[{"asset_name":"Do","errors":["name is not formatted correctly"]}]}`, out.String())
}

func TestRun_CreateBadFile(t *testing.T) {
	cli, _, _ := newTestCLI(t, "not json")

	assert.Error(t, cli.run(context.Background(), []string{"create", "-"}))
	assert.Error(t, cli.run(context.Background(), []string{"create", filepath.Join(t.TempDir(), "missing.json")}))
}

func TestRun_Version(t *testing.T) {
	cli, m, out := newTestCLI(t, "")
	m.EXPECT().ServerVersion(gomock.Any()).Return("1.0.0", nil)

	require.NoError(t, cli.run(context.Background(), []string{"version"}))
	assert.Equal(t, "client: 0.1.0\nserver: 1.0.0\n", out.String())

	m.EXPECT().ServerVersion(gomock.Any()).Return("", errors.New("connection refused"))
	assert.Error(t, cli.run(context.Background(), []string{"version"}))
}
