package resumes

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/amychanwt/apply-boost/internal/extract"
	"github.com/amychanwt/apply-boost/internal/insights"
	"github.com/amychanwt/apply-boost/internal/keywords"
	"github.com/amychanwt/apply-boost/internal/shared/storage/uploads"
	"github.com/amychanwt/apply-boost/internal/shared/telemetry"
	"github.com/amychanwt/apply-boost/internal/shared/util"
)

// MimePDF is the only accepted upload content type.
const MimePDF = "application/pdf"

// Service contains business logic for resume files.
type Service struct {
	Store *uploads.Store
	Repo  Repo
	Namer Namer
}

// Upload validates and persists an incoming resume. Rejections happen before
// any disk write.
func (s *Service) Upload(ctx context.Context, originalName, mimeType string, r io.Reader) (Resume, error) {
	if mimeType != MimePDF {
		return Resume{}, ErrInvalidInput
	}
	sanitized, err := util.SanitizeFileName(originalName)
	if err != nil {
		return Resume{}, ErrInvalidInput
	}

	fileID := s.Namer.Next(sanitized)
	size, err := s.Store.SaveNamed(ctx, fileID, r)
	if err != nil {
		return Resume{}, err
	}

	res := Resume{
		ID:         uuid.NewString(),
		FileID:     fileID,
		FileName:   sanitized,
		MimeType:   mimeType,
		SizeBytes:  size,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		// Metadata is an annotation on the stored file, never a gate for it.
		telemetry.Warn("resume.metadata.create_failed", map[string]any{
			"file_id": fileID,
			"err":     err.Error(),
		})
	}

	return res, nil
}

// Analyze extracts keywords from the stored file and scores career domains.
// An unreadable stored file is an analysis error; a PDF that fails to parse
// degrades to an empty keyword list.
func (s *Service) Analyze(ctx context.Context, fileID string) (insights.Insights, []string, error) {
	f, err := s.Store.Open(ctx, fileID)
	if err != nil {
		return insights.Insights{}, nil, err
	}
	defer f.Close()

	ins := insights.Analyze()

	kws := []string{}
	text, err := extract.Text(ctx, f)
	if err != nil {
		telemetry.Warn("resume.extract.failed", map[string]any{
			"file_id": fileID,
			"err":     err.Error(),
		})
	} else {
		kws = keywords.Extract(text)
	}

	return ins, kws, nil
}

// Delete removes a stored resume file and its metadata record. A missing
// file returns ErrNotFound and leaves the filesystem untouched.
func (s *Service) Delete(ctx context.Context, fileID string) error {
	if err := s.Store.Remove(ctx, fileID); err != nil {
		if errors.Is(err, uploads.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Repo.DeleteByFileID(ctx, fileID); err != nil {
		telemetry.Warn("resume.metadata.delete_failed", map[string]any{
			"file_id": fileID,
			"err":     err.Error(),
		})
	}
	return nil
}
