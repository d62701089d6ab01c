package user_file

import (
	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/user_file"
)

func ToResponseUserFile(uDomain user_file.UserFile) UserFile {
	return UserFile{
		ID:          uDomain.ID,
		FileName:    uDomain.OriginalFileName,
		FileType:    string(uDomain.FileType),
		MimeType:    uDomain.MimeType,
		SizeBytes:   uDomain.SizeBytes,
		DownloadURL: uDomain.DownloadURL,
		CreatedAt:   uDomain.CreatedAt,
	}
}

func ToResponseUserFiles(ufDomain user_file.UserFiles) UserFiles {
	ufs := make(UserFiles, len(ufDomain))
	for idx, u := range ufDomain {
		ufs[idx] = ToResponseUserFile(*u)
	}

	return ufs
}

func ToResponseUpload(up ports.Upload) Upload {
	f := ToResponseUserFile(*up.File)
	return Upload{
		File:              f,
		FileID:            f.ID,
		Filename:          f.FileName,
		ResumeText:        up.Text,
		StructureAnalysis: up.Structure,
	}
}
