package worklog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domain "github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/calendar"
	"github.com/worktrace/worktrace-backend-go/internal/service/file"
)

type workLogServiceImpl struct {
	repo        domain.Repository
	imageRepo   domain.ImageRepository
	fileService file.FileService
}

func NewWorkLogService(
	repo domain.Repository,
	imageRepo domain.ImageRepository,
	fileService file.FileService,
) domain.Service {
	return &workLogServiceImpl{
		repo:        repo,
		imageRepo:   imageRepo,
		fileService: fileService,
	}
}

// UpsertForDate implements worklog.Service. Lookup-then-branch: with one
// user there is no concurrent writer to race against, so no transaction
// spans the two steps.
func (s *workLogServiceImpl) UpsertForDate(ctx context.Context, date time.Time, req domain.UpsertRequest) (domain.WorkUpdate, error) {
	if err := req.Validate(); err != nil {
		return domain.WorkUpdate{}, err
	}

	day := calendar.Truncate(date)

	description := strings.TrimSpace(req.Description)
	if req.LeaveType.IsLeave() {
		// Leave entries never carry a description.
		description = ""
	}

	existing, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		return domain.WorkUpdate{}, fmt.Errorf("failed to look up entry for %s: %w", day.Format("2006-01-02"), err)
	}

	if existing != nil {
		existing.Description = description
		existing.LeaveType = req.LeaveType
		updated, err := s.repo.Update(ctx, *existing)
		if err != nil {
			return domain.WorkUpdate{}, err
		}
		return updated, nil
	}

	created, err := s.repo.Create(ctx, domain.WorkUpdate{
		Date:        day,
		Description: description,
		LeaveType:   req.LeaveType,
	})
	if err != nil {
		return domain.WorkUpdate{}, err
	}
	return created, nil
}

// FetchRange implements worklog.Service. Read failures degrade to an empty
// result set; the dashboard renders an empty grid rather than an error.
func (s *workLogServiceImpl) FetchRange(ctx context.Context, start, end time.Time) ([]domain.WorkUpdate, error) {
	records, err := s.repo.FetchRange(ctx, calendar.Truncate(start), calendar.Truncate(end))
	if err != nil {
		slog.Error("failed to fetch work updates", "error", err)
		return []domain.WorkUpdate{}, nil
	}
	return records, nil
}

// List implements worklog.Service.
func (s *workLogServiceImpl) List(ctx context.Context) ([]domain.WorkUpdate, error) {
	records, err := s.repo.ListDescending(ctx)
	if err != nil {
		slog.Error("failed to list work updates", "error", err)
		return []domain.WorkUpdate{}, nil
	}
	return records, nil
}

// AddImage implements worklog.Service. The parent record must already
// exist; uploads happen after the save confirms it.
func (s *workLogServiceImpl) AddImage(ctx context.Context, req domain.AddImageRequest) (domain.WorkUpdateImage, error) {
	if err := req.Validate(); err != nil {
		return domain.WorkUpdateImage{}, err
	}

	parent, err := s.repo.GetByID(ctx, req.WorkUpdateID)
	if err != nil {
		return domain.WorkUpdateImage{}, err
	}

	url, err := s.fileService.UploadWorkUpdateImage(ctx, parent.Date, req.File, req.FileHeader.Filename)
	if err != nil {
		return domain.WorkUpdateImage{}, err
	}

	image, err := s.imageRepo.Create(ctx, domain.WorkUpdateImage{
		WorkUpdateID: req.WorkUpdateID,
		ImageURL:     url,
	})
	if err != nil {
		return domain.WorkUpdateImage{}, err
	}

	return image, nil
}

// RemoveImage implements worklog.Service. Fail closed on malformed URLs:
// neither blob nor metadata is touched. A blob that is already gone still
// gets its metadata removed; metadata failure after blob deletion surfaces
// as a partial-failure error.
func (s *workLogServiceImpl) RemoveImage(ctx context.Context, imageID string) error {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.fileService.DeleteByURL(ctx, image.ImageURL); err != nil {
		return err
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImageMetadataOrphaned, err)
	}

	return nil
}

// ListImages implements worklog.Service.
func (s *workLogServiceImpl) ListImages(ctx context.Context, workUpdateID string) ([]domain.WorkUpdateImage, error) {
	images, err := s.imageRepo.ListByWorkUpdate(ctx, workUpdateID)
	if err != nil {
		slog.Error("failed to list images", "work_update_id", workUpdateID, "error", err)
		return []domain.WorkUpdateImage{}, nil
	}
	return images, nil
}
