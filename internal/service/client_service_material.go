// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-material-keeper/internal/accounting"
	"github.com/MKhiriev/go-material-keeper/internal/adapter"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/validators"
	"github.com/MKhiriev/go-material-keeper/models"
)

type clientMaterialService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientMaterialService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientMaterialService {
	return &clientMaterialService{
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

// Submit implements [ClientMaterialService]. The same parse, validation and
// computation steps the server runs are repeated here, so the server only
// sees forms it will accept unless its own state says otherwise.
func (c *clientMaterialService) Submit(ctx context.Context, form models.MaterialForm) (models.Submission, error) {
	input, err := accounting.ParseInput(form)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidMaterialInput, err)
	}

	if err = c.validator.Validate(ctx, input); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidMaterialInput, err)
	}

	if _, err = accounting.Compute(input); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidMaterialInput, err)
	}

	submission, err := c.adapter.SubmitMaterial(ctx, form)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientMaterialService.Submit").Msg("submit on server failed")
		return models.Submission{}, mapAdapterError(err)
	}

	return submission, nil
}

// History implements [ClientMaterialService].
func (c *clientMaterialService) History(ctx context.Context) ([]models.MaterialRecord, error) {
	records, err := c.adapter.GetHistory(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientMaterialService.History").Msg("history request failed")
		return nil, mapAdapterError(err)
	}

	return records, nil
}
