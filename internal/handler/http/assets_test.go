package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-asset-keeper/internal/app"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/service"
	"github.com/MKhiriev/go-asset-keeper/internal/store"
	"github.com/MKhiriev/go-asset-keeper/models"
)

func TestListAssets(t *testing.T) {
	tests := []struct {
		name       string
		assets     []models.Asset
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "empty store",
			assets:     []models.Asset{},
			wantStatus: http.StatusOK,
			wantBody:   `{"assets":[]}`,
		},
		{
			name:       "two assets",
			assets:     seedAssets()[:2],
			wantStatus: http.StatusOK,
			wantBody: `{"assets":[` +
				`{"asset_name":"Dove1","asset_type":"satellite","asset_class":"dove"},` +
				`{"asset_name":"SkySat1","asset_type":"satellite","asset_class":"skysat"}]}`,
		},
		{
			name:       "store failure",
			err:        fmt.Errorf("%w: %w", service.ErrGettingAssets, store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.assets.EXPECT().ListAssets(gomock.Any()).Return(tt.assets, tt.err)

			rr := env.do(http.MethodGet, "/assets", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.err == nil {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			} else {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestGetAsset(t *testing.T) {
	tests := []struct {
		name       string
		asset      models.Asset
		err        error
		wantStatus int
	}{
		{name: "found", asset: seedAssets()[3], wantStatus: http.StatusOK},
		{name: "not found", err: fmt.Errorf("%w: Dish1", service.ErrAssetNotFound), wantStatus: http.StatusNotFound},
		{name: "store failure", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.assets.EXPECT().GetAsset(gomock.Any(), "Dish1").Return(tt.asset, tt.err)

			rr := env.do(http.MethodGet, "/assets/Dish1", "")

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.err != nil {
				return
			}
			assert.JSONEq(t, `{"asset_name":"Dish1","asset_type":"antenna","asset_class":"dish"}`, rr.Body.String())
		})
	}
}

func TestCreateAssets_Created(t *testing.T) {
	env := newTestEnv(t)
	assets := seedAssets()
	env.assets.EXPECT().CreateAssets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, got ...models.Asset) (models.BatchReport, error) {
			assert.Equal(t, assets, got)
			return models.BatchReport{}, nil
		})

	body, err := json.Marshal(models.AssetsRequest{Assets: assets})
	require.NoError(t, err)

	rr := env.do(http.MethodPost, "/assets", string(body))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestCreateAssets_MissingKeysDecodeAsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.assets.EXPECT().CreateAssets(gomock.Any(), models.Asset{Name: "Dove1"}).
		Return(models.BatchReport{}, nil)

	rr := env.do(http.MethodPost, "/assets", `{"assets":[{"asset_name":"Dove1"}]}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateAssets_Rejected(t *testing.T) {
	env := newTestEnv(t)
	report := models.BatchReport{Assets: []models.AssetReport{
		{Name: "(^abc123)", Errors: []string{"name is not formatted correctly"}},
		{Name: "SkySat123", Errors: []string{models.MsgAssetIsValid}},
	}}
	env.assets.EXPECT().CreateAssets(gomock.Any(), gomock.Any()).Return(report, service.ErrBatchRejected)

	rr := env.do(http.MethodPost, "/assets", `{"assets":[
		{"asset_name":"(^abc123)","asset_type":"satellite","asset_class":"skysat"},
		{"asset_name":"SkySat123","asset_type":"satellite","asset_class":"skysat"}]}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"assets":[
		{"asset_name":"(^abc123)","errors":["name is not formatted correctly"]},
		{"asset_name":"SkySat123","errors":["Asset is valid and does not yet exist in the asset store"]}]}`,
		rr.Body.String())
}

func TestCreateAssets_RejectedBatchIsNotLoggedByHandler(t *testing.T) {
	env := newTestEnv(t)
	env.assets.EXPECT().CreateAssets(gomock.Any(), gomock.Any()).
		Return(models.BatchReport{Assets: []models.AssetReport{
			{Name: "Do", Errors: []string{"name is not formatted correctly"}},
		}}, service.ErrBatchRejected)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	req := newRequest(http.MethodPost, "/assets", `{"assets":[{"asset_name":"Do"}]}`)
	req = req.WithContext(log.WithContext(req.Context()))

	rr := serve(http.HandlerFunc(env.handler.createAssets), req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, buf.String())
}

func TestCreateAssets_PlainTextErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "malformed JSON",
			body:       `{"assets": [`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidJSON,
		},
		{
			name:       "empty batch",
			body:       `{"assets": []}`,
			svcErr:     service.ErrNoAssetsProvided,
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgNoAssetsProvided,
		},
		{
			name:       "lost insert race",
			body:       `{"assets":[{"asset_name":"Dove1","asset_type":"satellite","asset_class":"dove"}]}`,
			svcErr:     fmt.Errorf("%w: %w", service.ErrAssetExists, store.ErrAssetAlreadyExists),
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgAssetExists,
		},
		{
			name:       "storage failure",
			body:       `{"assets":[{"asset_name":"Dove1","asset_type":"satellite","asset_class":"dove"}]}`,
			svcErr:     fmt.Errorf("%w: %w", service.ErrSavingAssets, store.ErrCommitingTransaction),
			callsSvc:   true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.callsSvc {
				env.assets.EXPECT().CreateAssets(gomock.Any(), gomock.Any()).Return(models.BatchReport{}, tt.svcErr)
			}

			rr := env.do(http.MethodPost, "/assets", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody+"\n", rr.Body.String())
		})
	}
}
