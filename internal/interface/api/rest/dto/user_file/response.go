package user_file

import (
	"time"

	"resume-evaluator-api/internal/domain/analysis"
)

type (
	UserFile struct {
		ID          int64     `json:"id"`
		FileName    string    `json:"file_name"`
		FileType    string    `json:"file_type"`
		MimeType    string    `json:"mime_type"`
		SizeBytes   int64     `json:"size_bytes"`
		DownloadURL string    `json:"download_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
	UserFiles    []UserFile
	ResponseData struct {
		Data UserFiles `json:"data"`
	}

	// Upload returns the extracted text and layout checks with the stored file.
	Upload struct {
		File              UserFile                 `json:"file"`
		FileID            int64                    `json:"file_id"`
		Filename          string                   `json:"filename"`
		ResumeText        string                   `json:"resume_text"`
		StructureAnalysis analysis.ResumeStructure `json:"structure_analysis"`
	}
)
