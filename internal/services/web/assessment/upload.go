package assessment

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotImage rejects a selected file that is not an image.
	ErrNotImage = errors.New("assessment: file is not an image")
	// ErrNoImage rejects analysis without a selected image.
	ErrNoImage = errors.New("assessment: no image selected")
)

// Upload is one user-selected file.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// IsImage reports whether the declared or sniffed type is image/*.
func (u Upload) IsImage() bool {
	if len(u.Data) == 0 {
		return false
	}
	if isImageType(u.ContentType) {
		return true
	}
	return isImageType(http.DetectContentType(u.Data))
}

// MediaType returns the declared image type, falling back to the sniffed one.
func (u Upload) MediaType() string {
	if isImageType(u.ContentType) {
		return strings.TrimSpace(u.ContentType)
	}
	return http.DetectContentType(u.Data)
}

func isImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// UploadState tracks one image analysis form.
type UploadState struct {
	lifecycle[ImageResult]
	upload  *Upload
	preview *Preview
}

// NewUploadState returns an empty uploader.
func NewUploadState() *UploadState {
	return &UploadState{}
}

// Select stores the file and its preview. Non-image files set ErrNotImage
// and leave the preview unset.
func (s *UploadState) Select(upload Upload) error {
	if s.status == StatusSubmitting {
		return ErrInFlight
	}
	if !upload.IsImage() {
		s.upload = nil
		s.preview = nil
		s.reset(StatusIdle)
		s.err = ErrNotImage
		return ErrNotImage
	}
	preview, err := NewPreview(upload.Data, upload.MediaType())
	if err != nil {
		s.upload = nil
		s.preview = nil
		s.reset(StatusIdle)
		s.err = ErrNotImage
		return ErrNotImage
	}
	s.upload = &upload
	s.preview = &preview
	s.reset(StatusValidating)
	return nil
}

// Clear drops the image, file name, result and error in one step.
func (s *UploadState) Clear() {
	s.upload = nil
	s.preview = nil
	s.reset(StatusIdle)
}

// Submit moves to submitting and returns the original upload.
func (s *UploadState) Submit() (Upload, error) {
	if s.upload == nil {
		return Upload{}, ErrNoImage
	}
	if err := s.begin(); err != nil {
		return Upload{}, err
	}
	return *s.upload, nil
}

// FileName returns the selected file name, or "" when empty.
func (s *UploadState) FileName() string {
	if s.upload == nil {
		return ""
	}
	return s.upload.FileName
}

// Preview returns the rendered preview, if an image is selected.
func (s *UploadState) Preview() (Preview, bool) {
	if s.preview == nil {
		return Preview{}, false
	}
	return *s.preview, true
}

// SubmitEnabled reports whether the analyze control should be active.
func (s *UploadState) SubmitEnabled() bool {
	return s.upload != nil && s.status != StatusSubmitting
}
