package user_file

import (
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/domain/user_file"
)

func fromDBModel(model *UserFile) *user_file.UserFile {
	return &user_file.UserFile{
		ID:     model.ID,
		UserID: user.ID(model.UserID),

		StorageKey:       model.StorageKey,
		OriginalFileName: model.OriginalFileName,
		FileType:         user_file.FileType(model.FileType),
		MimeType:         model.MimeType,
		SizeBytes:        model.SizeBytes,

		CreatedAt: model.CreatedAt,
	}
}

func fromDBModels(models UserFiles) user_file.UserFiles {
	ufs := make(user_file.UserFiles, len(models))
	for idx, uf := range models {
		ufs[idx] = fromDBModel(uf)
	}

	return ufs
}
