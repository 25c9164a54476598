// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-material-keeper/internal/accounting"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/store"
	"github.com/MKhiriev/go-material-keeper/internal/validators"
	"github.com/MKhiriev/go-material-keeper/models"
)

type materialService struct {
	materialRepository store.MaterialRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewMaterialService(materialRepository store.MaterialRepository, validator validators.Validator, logger *logger.Logger) MaterialService {
	return &materialService{
		materialRepository: materialRepository,
		validator:          validator,
		logger:             logger,
	}
}

// Submit implements [MaterialService].
//
// Steps, each of which aborts the submission:
//  1. parse the raw values;
//  2. validate the record (owner, signs of the quantities);
//  3. compute the report;
//  4. append the record.
//
// Failures in 1-3 are wrapped in ErrInvalidMaterialInput, storage failures
// in ErrMaterialNotSaved.
func (m *materialService) Submit(ctx context.Context, userID int64, form models.MaterialForm) (models.Submission, error) {
	log := logger.FromContext(ctx).WithUserID(userID)

	input, err := accounting.ParseInput(form)
	if err != nil {
		log.Info().Err(err).Str("func", "*materialService.Submit").Msg("material form rejected")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidMaterialInput, err)
	}

	record := models.MaterialRecord{UserID: userID, MaterialInput: input}
	if err = m.validator.Validate(ctx, record); err != nil {
		log.Info().Err(err).Str("func", "*materialService.Submit").Msg("material record rejected")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidMaterialInput, err)
	}

	report, err := accounting.Compute(input)
	if err != nil {
		log.Info().Err(err).Str("func", "*materialService.Submit").Msg("material report not computable")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidMaterialInput, err)
	}

	stored, err := m.materialRepository.Append(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*materialService.Submit").Msg("error saving material record")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrMaterialNotSaved, err)
	}

	log.Debug().
		Str("func", "*materialService.Submit").
		Int64("record_id", stored.ID).
		Str("remaining", report.RemainingMaterial.String()).
		Int64("possible_products", report.PossibleProducts).
		Bool("low_material_alert", report.LowMaterialAlert).
		Msg("material submitted")

	return models.Submission{Record: stored, Report: report}, nil
}

// History implements [MaterialService].
func (m *materialService) History(ctx context.Context, userID int64) ([]models.MaterialRecord, error) {
	log := logger.FromContext(ctx).WithUserID(userID)

	if err := m.validator.Validate(ctx, models.MaterialRecord{UserID: userID}, validators.FieldUserID); err != nil {
		log.Info().Err(err).Str("func", "*materialService.History").Msg("history requested without owner")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	records, err := m.materialRepository.ListFor(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*materialService.History").Msg("error loading material history")
		return nil, fmt.Errorf("%w: %w", ErrHistoryNotLoaded, err)
	}

	return records, nil
}
