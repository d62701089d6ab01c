package user_file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/domain/user_file"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user_file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserFiles(
	ctx context.Context,
	userID user.ID,
	fileType *user_file.FileType,
) (user_file.UserFiles, error) {
	var ft *string
	if fileType != nil {
		s := string(*fileType)
		ft = &s
	}

	rows, err := r.db.Query(ctx, SelectUserFiles, int64(userID), ft)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ufs UserFiles
	for rows.Next() {
		uf, err := scanUserFile(rows)
		if err != nil {
			return nil, err
		}
		ufs = append(ufs, uf)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ufs), nil
}

func (r *Repository) FetchUserFile(ctx context.Context, userID user.ID, id int64) (*user_file.UserFile, error) {
	return r.fetchOne(ctx, SelectUserFile, id, int64(userID))
}

func (r *Repository) CreateUserFile(
	ctx context.Context,
	userID user.ID,
	req *user_file.UserFile,
) (*user_file.UserFile, error) {
	uf, err := scanUserFile(r.db.QueryRow(
		ctx,
		InsertUserFile,
		int64(userID), req.StorageKey, req.OriginalFileName, string(req.FileType), req.MimeType, req.SizeBytes,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(uf), nil
}

func (r *Repository) DeleteUserFile(ctx context.Context, userID user.ID, id int64) (*user_file.UserFile, error) {
	return r.fetchOne(ctx, DeleteUserFile, id, int64(userID))
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*user_file.UserFile, error) {
	uf, err := scanUserFile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(uf), nil
}

func scanUserFile(row pgx.Row) (*UserFile, error) {
	uf := new(UserFile)
	if err := row.Scan(
		&uf.ID,
		&uf.UserID,

		&uf.StorageKey,
		&uf.OriginalFileName,
		&uf.FileType,
		&uf.MimeType,
		&uf.SizeBytes,

		&uf.CreatedAt,
	); err != nil {
		return nil, err
	}

	return uf, nil
}
