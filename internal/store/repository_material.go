package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/models"
)

// materialRepository is the SQL-backed implementation of [MaterialRepository].
// Rows are only ever inserted and read; nothing updates or deletes them.
type materialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMaterialRepository constructs a [MaterialRepository] backed by the
// provided database connection and logger.
func NewMaterialRepository(db *DB, logger *logger.Logger) MaterialRepository {
	logger.Debug().Msg("creating material repository")
	return &materialRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts exactly one row and returns the record with ID and
// CreatedAt assigned. A missing owner account yields [ErrAccountNotFound].
// On any error nothing is stored.
func (r *materialRepository) Append(ctx context.Context, record models.MaterialRecord) (models.MaterialRecord, error) {
	log := logger.FromContext(ctx).WithUserID(record.UserID)

	record.CreatedAt = now()
	query, args, err := buildAppendMaterialQuery(r.db.builder, record)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.Append").Msg("error building query")
		return models.MaterialRecord{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.ID); err != nil {
		log.Err(err).Str("func", "*materialRepository.Append").Bool("retryable", r.db.retryable(err)).Msg("error inserting material record")

		switch r.db.violation(err) {
		case ForeignKeyViolation:
			return models.MaterialRecord{}, ErrAccountNotFound
		default:
			return models.MaterialRecord{}, wrapQueryError(err)
		}
	}

	if record.ID <= 0 {
		log.Error().Str("func", "*materialRepository.Append").Int64("id", record.ID).Msg("insert returned no id")
		return models.MaterialRecord{}, ErrNoMaterialID
	}

	log.Debug().Str("func", "*materialRepository.Append").Int64("id", record.ID).Msg("material record saved")
	return record, nil
}

// ListFor returns all records of the account ordered by ID, which is the
// order they were appended in. An account without records gets an empty,
// non-nil slice.
func (r *materialRepository) ListFor(ctx context.Context, userID int64) ([]models.MaterialRecord, error) {
	log := logger.FromContext(ctx).WithUserID(userID)

	query, args, err := buildListMaterialsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.ListFor").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.ListFor").Bool("retryable", r.db.retryable(err)).Msg("error selecting material records")
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	records := make([]models.MaterialRecord, 0)
	for rows.Next() {
		var record models.MaterialRecord
		if err = rows.Scan(
			&record.ID,
			&record.UserID,
			&record.InitialMaterial,
			&record.MaterialPerProduct,
			&record.MaterialUsed,
			&record.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*materialRepository.ListFor").Msg("error scanning material record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*materialRepository.ListFor").Msg("error iterating material records")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
