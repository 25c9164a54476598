package store

import (
	"fmt"

	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/Masterminds/squirrel"
)

var (
	userColumns     = []string{"user_id", "login", "password_hash", "created_at"}
	materialColumns = []string{"id", "user_id", "initial_material", "material_per_product", "material_used", "created_at"}
)

// created_at is always bound from Go so that the RETURNING clause only has to
// carry the generated key on both dialects.

func buildCreateUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(user.TableName()).
		Columns("login", "password_hash", "created_at").
		Values(user.Login, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserQuery(b squirrel.StatementBuilderType, where squirrel.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildAppendMaterialQuery(b squirrel.StatementBuilderType, record models.MaterialRecord) (string, []any, error) {
	query, args, err := b.Insert(record.TableName()).
		Columns("user_id", "initial_material", "material_per_product", "material_used", "created_at").
		Values(
			record.UserID,
			record.InitialMaterial.String(),
			record.MaterialPerProduct.String(),
			record.MaterialUsed.String(),
			record.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListMaterialsQuery(b squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Select(materialColumns...).
		From(models.MaterialRecord{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
