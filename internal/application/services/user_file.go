package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/analysis"
	"resume-evaluator-api/internal/domain/user"
	domain "resume-evaluator-api/internal/domain/user_file"
	"resume-evaluator-api/internal/infrastructure/metrics"
)

const (
	MaxUploadBytes = 10 << 20

	maxBaseNameLen = 100
)

var windowsReserved = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
}

type UserFileService struct {
	s3                 ports.S3Client
	extractor          ports.TextExtractor
	userFileRepository domain.Repository
	userRepository     user.Repository
	logger             *zap.Logger
	mCounter           *prometheus.CounterVec
}

func NewUserFileService(
	s3 ports.S3Client,
	extractor ports.TextExtractor,
	userFileRepository domain.Repository,
	userRepository user.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.UserFileService {
	return &UserFileService{
		s3:                 s3,
		extractor:          extractor,
		userFileRepository: userFileRepository,
		userRepository:     userRepository,
		logger:             logger,
		mCounter:           mCounter,
	}
}

// ListFiles returns the caller's files newest first, each with a fresh download link.
func (ufs *UserFileService) ListFiles(
	ctx context.Context,
	externalID string,
	fileType *domain.FileType,
) (domain.UserFiles, error) {
	u, err := findUser(ctx, ufs.userRepository, externalID)
	if err != nil {
		return nil, err
	}

	fls, err := ufs.userFileRepository.FetchUserFiles(ctx, u.ID, fileType)
	if err != nil {
		return nil, err
	}

	for _, f := range fls {
		ufs.attachURL(ctx, f)
	}

	return fls, nil
}

// UploadResume validates and reads the document before anything is stored, so
// an unreadable file leaves no object and no record behind.
func (ufs *UserFileService) UploadResume(
	ctx context.Context,
	externalID string,
	in *multipart.FileHeader,
) (*ports.Upload, error) {
	u, err := findUser(ctx, ufs.userRepository, externalID)
	if err != nil {
		return nil, err
	}

	if !ufs.extractor.Supported(in.Filename) {
		return nil, validationError("unsupported file type, upload PDF or Word documents")
	}
	if in.Size > MaxUploadBytes {
		return nil, validationError("file exceeds %d MB", MaxUploadBytes>>20)
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadBytes {
		return nil, validationError("file exceeds %d MB", MaxUploadBytes>>20)
	}

	text, err := ufs.extractor.Text(in.Filename, data)
	if err != nil {
		return nil, validationError("could not extract text from file: %v", err)
	}

	name := sanitizeFileName(in.Filename)
	ext := path.Ext(name)
	mimeType := contentTypes[ext]
	if mimeType == "" {
		mimeType = in.Header.Get("Content-Type")
	}

	key := storageKey(u.ExternalID, domain.TypeResume, ext)
	if err = ufs.s3.Put(ctx, key, mimeType, data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	out, err := ufs.userFileRepository.CreateUserFile(ctx, u.ID, &domain.UserFile{
		StorageKey:       key,
		OriginalFileName: displayFileName(in.Filename, name),
		FileType:         domain.TypeResume,
		MimeType:         mimeType,
		SizeBytes:        int64(len(data)),
	})
	if err != nil {
		if delErr := ufs.s3.Delete(ctx, key); delErr != nil {
			ufs.logger.Error("Delete() orphaned object error", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	ufs.attachURL(ctx, out)
	ufs.mCounter.WithLabelValues(metrics.FileUploaded).Inc()

	return &ports.Upload{
		File:      out,
		Text:      text,
		Structure: analysis.AnalyzeResumeStructure(text),
	}, nil
}

// DeleteFile removes the stored object first so a failed storage call leaves
// the record in place for a retry. The resume pointer is cleared by the schema.
func (ufs *UserFileService) DeleteFile(ctx context.Context, externalID string, id int64) error {
	u, err := findUser(ctx, ufs.userRepository, externalID)
	if err != nil {
		return err
	}

	f, err := ufs.userFileRepository.FetchUserFile(ctx, u.ID, id)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}

	if err = ufs.s3.Delete(ctx, f.StorageKey); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	deleted, err := ufs.userFileRepository.DeleteUserFile(ctx, u.ID, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return ErrNotFound
	}

	return nil
}

// attachURL leaves DownloadURL empty when presigning fails; the record is still usable.
func (ufs *UserFileService) attachURL(ctx context.Context, f *domain.UserFile) {
	u, err := ufs.s3.PresignGetURL(ctx, f.StorageKey)
	if err != nil {
		ufs.logger.Warn("PresignGetURL() error", zap.String("key", f.StorageKey), zap.Error(err))
		return
	}
	f.DownloadURL = u
}

// storageKey: "users/<external-id>/<file-type>/<uuid><ext>"
func storageKey(externalID string, ft domain.FileType, ext string) string {
	owner := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, externalID)

	return fmt.Sprintf("users/%s/%s/%s%s", owner, ft, uuid.NewString(), ext)
}

// sanitizeFileName make file name ASCII standard
// displayFileName keeps the name the user uploaded, minus any client path.
func displayFileName(original, fallback string) string {
	s := path.Base(strings.ReplaceAll(strings.TrimSpace(original), "\\", "/"))
	if s == "." || s == ".." || s == "/" || s == "" {
		return fallback
	}
	return s
}

func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, path.Ext(s))

	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
