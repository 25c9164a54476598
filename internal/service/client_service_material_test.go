// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-material-keeper/internal/accounting"
	"github.com/MKhiriev/go-material-keeper/internal/adapter"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/mock"
	"github.com/MKhiriev/go-material-keeper/internal/store"
	"github.com/MKhiriev/go-material-keeper/internal/validators"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func wrapTransport(sentinel error, body string) error {
	return fmt.Errorf("%w: %s", sentinel, body)
}

func newTestClientMaterialSvc(t *testing.T) (ClientMaterialService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	return NewClientMaterialService(mockAdapter, validators.NewMaterialValidator(), logger.Nop()), mockAdapter
}

func TestClientMaterialService_Submit_Success(t *testing.T) {
	svc, mockAdapter := newTestClientMaterialSvc(t)
	ctx := context.Background()

	form := models.MaterialForm{InitialMaterial: "100", MaterialPerProduct: "5", MaterialUsed: "20"}
	want := models.Submission{
		Record: models.MaterialRecord{ID: 3},
		Report: models.Report{RemainingMaterial: decimal.NewFromInt(80), PossibleProducts: 16},
	}
	mockAdapter.EXPECT().SubmitMaterial(ctx, form).Return(want, nil)

	got, err := svc.Submit(ctx, form)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientMaterialService_Submit_RejectedLocally(t *testing.T) {
	tests := []struct {
		name    string
		form    models.MaterialForm
		wantErr error
	}{
		{"not a number", models.MaterialForm{InitialMaterial: "abc", MaterialPerProduct: "5", MaterialUsed: "20"}, accounting.ErrInvalidNumber},
		{"negative used", models.MaterialForm{InitialMaterial: "100", MaterialPerProduct: "5", MaterialUsed: "-1"}, validators.ErrNegativeMaterialUsed},
		{"zero per product", models.MaterialForm{InitialMaterial: "100", MaterialPerProduct: "0", MaterialUsed: "1"}, validators.ErrNonPositiveMaterialPerProduct},
		{"products overflow", models.MaterialForm{InitialMaterial: "1e30", MaterialPerProduct: "1", MaterialUsed: "0"}, accounting.ErrProductsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter expectations: the server must not be called
			svc, _ := newTestClientMaterialSvc(t)

			_, err := svc.Submit(context.Background(), tt.form)

			require.ErrorIs(t, err, ErrInvalidMaterialInput)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientMaterialService_Submit_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"not saved", wrapTransport(adapter.ErrInternalServerError, "An error occurred while saving to the database."), ErrMaterialNotSaved},
		{"expired session", wrapTransport(adapter.ErrUnauthorized, "token is expired"), ErrTokenIsExpired},
		{"no token", adapter.ErrNoToken, ErrNotAuthenticated},
		{"storage down", wrapTransport(adapter.ErrServiceUnavailable, "storage unavailable"), ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestClientMaterialSvc(t)
			mockAdapter.EXPECT().SubmitMaterial(gomock.Any(), gomock.Any()).Return(models.Submission{}, tt.err)

			_, err := svc.Submit(context.Background(), models.MaterialForm{InitialMaterial: "1", MaterialPerProduct: "1", MaterialUsed: "1"})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientMaterialService_History(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockAdapter := newTestClientMaterialSvc(t)
		records := []models.MaterialRecord{{ID: 1}, {ID: 2}}
		mockAdapter.EXPECT().GetHistory(gomock.Any()).Return(records, nil)

		got, err := svc.History(context.Background())

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("not loaded", func(t *testing.T) {
		svc, mockAdapter := newTestClientMaterialSvc(t)
		mockAdapter.EXPECT().GetHistory(gomock.Any()).
			Return(nil, wrapTransport(adapter.ErrInternalServerError, "An error occurred while loading the history."))

		_, err := svc.History(context.Background())

		require.ErrorIs(t, err, ErrHistoryNotLoaded)
	})
}

func TestClientAppInfoService_ServerVersion(t *testing.T) {
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := NewClientAppInfoService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().GetVersion(gomock.Any()).Return("v1.0.0", nil)

	got, err := svc.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", got)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"invalid data", wrapTransport(adapter.ErrBadRequest, "invalid data provided"), ErrInvalidDataProvided},
		{"invalid material", wrapTransport(adapter.ErrBadRequest, "Invalid input. Please enter valid numbers."), ErrInvalidMaterialInput},
		{"unprocessable", wrapTransport(adapter.ErrUnprocessableEntity, ""), ErrInvalidMaterialInput},
		{"wrong password", wrapTransport(adapter.ErrUnauthorized, "invalid login/password"), ErrWrongPassword},
		{"invalid token", wrapTransport(adapter.ErrUnauthorized, "token is expired or invalid"), ErrTokenIsExpiredOrInvalid},
		{"unknown unauthorized", wrapTransport(adapter.ErrUnauthorized, "who are you"), ErrNotAuthenticated},
		{"account gone", wrapTransport(adapter.ErrUnauthorized, "account not found"), store.ErrAccountNotFound},
		{"login taken", wrapTransport(adapter.ErrConflict, "login already exists"), store.ErrLoginAlreadyExists},
		{"not saved", wrapTransport(adapter.ErrInternalServerError, "An error occurred while saving to the database."), ErrMaterialNotSaved},
		{"history", wrapTransport(adapter.ErrInternalServerError, "An error occurred while loading the history."), ErrHistoryNotLoaded},
		{"generic 500", wrapTransport(adapter.ErrInternalServerError, "internal server error"), ErrServerError},
		{"storage down", wrapTransport(adapter.ErrServiceUnavailable, "storage unavailable"), ErrStorageUnavailable},
		{"no token", adapter.ErrNoToken, ErrNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unmapped passes through", func(t *testing.T) {
		err := wrapTransport(adapter.ErrConflict, "something else")
		assert.Equal(t, err, mapAdapterError(err))
	})
}
