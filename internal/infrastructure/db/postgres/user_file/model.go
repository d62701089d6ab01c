package user_file

import (
	"time"
)

type (
	UserFile struct {
		ID     int64
		UserID int64

		StorageKey       string
		OriginalFileName string
		FileType         string
		MimeType         string
		SizeBytes        int64

		CreatedAt time.Time
	}
	UserFiles []*UserFile
)
