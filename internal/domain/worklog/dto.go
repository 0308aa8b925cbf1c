package worklog

import (
	"mime/multipart"
	"time"

	"github.com/worktrace/worktrace-backend-go/internal/pkg/validator"
)

// UpsertRequest carries the fields saved for a calendar date. The leave type
// defaults to "none" when omitted.
type UpsertRequest struct {
	Description string    `json:"description"`
	LeaveType   LeaveType `json:"leave_type"`
	// HasQueuedImages lets the caller pass the empty-entry check when the
	// save will be followed by image uploads for the same date.
	HasQueuedImages bool `json:"has_queued_images,omitempty"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType == "" {
		r.LeaveType = LeaveNone
	}
	if !r.LeaveType.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of none, leave, sick, casual",
		})
	}
	if len(r.Description) > 10000 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 10000 characters",
		})
	}
	if r.LeaveType == LeaveNone && validator.IsEmpty(r.Description) && !r.HasQueuedImages {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "entry needs a description, a leave status or images",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AddImageRequest attaches an uploaded file to an existing work update.
type AddImageRequest struct {
	WorkUpdateID string
	File         multipart.File
	FileHeader   *multipart.FileHeader
}

func (r *AddImageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WorkUpdateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_update_id",
			Message: "work_update_id must be a valid UUID",
		})
	}
	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "image",
			Message: "image file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkUpdateResponse is the wire shape of a work update, including the
// derived status so clients never re-implement the precedence rules.
type WorkUpdateResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	LeaveType   string `json:"leave_type"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewWorkUpdateResponse converts an entity into its wire shape.
func NewWorkUpdateResponse(u WorkUpdate) WorkUpdateResponse {
	return WorkUpdateResponse{
		ID:          u.ID,
		Date:        u.Date.Format("2006-01-02"),
		Description: u.Description,
		LeaveType:   string(u.LeaveType),
		Status:      Classify(&u),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// ImageResponse is the wire shape of an image attachment.
type ImageResponse struct {
	ID           string `json:"id"`
	WorkUpdateID string `json:"work_update_id"`
	ImageURL     string `json:"image_url"`
	CreatedAt    string `json:"created_at"`
}

func NewImageResponse(img WorkUpdateImage) ImageResponse {
	return ImageResponse{
		ID:           img.ID,
		WorkUpdateID: img.WorkUpdateID,
		ImageURL:     img.ImageURL,
		CreatedAt:    img.CreatedAt.Format(time.RFC3339),
	}
}
