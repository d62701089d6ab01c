package user_file

import (
	"context"

	"resume-evaluator-api/internal/domain/user"
)

// Repository lookups are always scoped to the owner: a file owned by someone
// else is reported exactly like a missing one.
type Repository interface {
	FetchUserFiles(ctx context.Context, userID user.ID, fileType *FileType) (UserFiles, error)
	FetchUserFile(ctx context.Context, userID user.ID, id int64) (*UserFile, error)
	CreateUserFile(ctx context.Context, userID user.ID, req *UserFile) (*UserFile, error)
	DeleteUserFile(ctx context.Context, userID user.ID, id int64) (*UserFile, error)
}
