package user_file

import (
	"time"

	"resume-evaluator-api/internal/domain/user"
)

type FileType string

const (
	TypeResume          FileType = "resume"
	TypeOptimizedResume FileType = "optimized_resume"
	TypeOther           FileType = "other"
)

type (
	UserFile struct {
		ID     int64
		UserID user.ID

		StorageKey       string
		OriginalFileName string
		FileType         FileType
		MimeType         string
		SizeBytes        int64
		DownloadURL      string

		CreatedAt time.Time
	}
	UserFiles []*UserFile
)

func ParseFileType(s string) (FileType, bool) {
	ft := FileType(s)
	switch ft {
	case TypeResume, TypeOptimizedResume, TypeOther:
		return ft, true
	default:
		return "", false
	}
}
