package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jobdesk/messaging-service/internal/api"
	"github.com/jobdesk/messaging-service/internal/model"
)

var allowedAttachmentExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".xlsx": {},
	".xls":  {},
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCompose(req *api.ComposeMessageRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return fmt.Errorf("subject is required")
	}

	if len([]rune(req.Subject)) > model.SubjectMaxLength {
		return fmt.Errorf("subject exceeds maximum length of %d characters", model.SubjectMaxLength)
	}

	if strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("body cannot be empty")
	}

	if strings.TrimSpace(req.RecipientSlug) == "" {
		return fmt.Errorf("recipient_slug is required")
	}

	if strings.TrimSpace(req.AppType) == "" {
		return fmt.Errorf("app_type is required")
	}

	return nil
}

func (v *Validator) ValidateReply(req *api.ReplyMessageRequest) error {
	if strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("body cannot be empty")
	}

	if strings.TrimSpace(req.RecipientSlug) == "" {
		return fmt.Errorf("recipient_slug is required")
	}

	return nil
}

func (v *Validator) ValidateAttachment(req *api.UploadAttachmentRequest) error {
	if strings.TrimSpace(req.FileName) == "" {
		return fmt.Errorf("file_name is required")
	}

	extension := strings.ToLower(filepath.Ext(req.FileName))
	if _, ok := allowedAttachmentExtensions[extension]; !ok {
		return fmt.Errorf("file extension %q is not allowed", extension)
	}

	return nil
}
