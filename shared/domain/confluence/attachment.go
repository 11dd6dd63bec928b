package confluence

import "fmt"

// SimplifiedAttachmentKeys lists the keys of Attachment.ToSimplifiedDict in output order.
var SimplifiedAttachmentKeys = []string{"id", "type", "status", "title", "media_type", "file_size"}

// Attachment is the file metadata of a Confluence attachment.
type Attachment struct {
	ID        *string
	Type      *string // e.g. "attachment"
	Status    *string // e.g. "current"
	Title     *string // file name
	MediaType *string
	FileSize  *int64
}

// NewAttachmentFromAPI maps a raw attachment object. MediaType and FileSize live
// under the nested "extensions" object.
func NewAttachmentFromAPI(data Raw) Attachment {
	if len(data) == 0 {
		return Attachment{}
	}

	// a missing or non-object "extensions" reads as empty
	extensions := objectField(data, "extensions")

	return Attachment{
		ID:        stringField(data, "id"),
		Type:      stringField(data, "type"),
		Status:    stringField(data, "status"),
		Title:     stringField(data, "title"),
		MediaType: stringField(extensions, "mediaType"),
		FileSize:  int64Field(extensions, "fileSize"),
	}
}

// DecodeAttachment maps a raw JSON attachment object.
func DecodeAttachment(b []byte) (Attachment, error) {
	data, err := decodeRaw(b)
	if err != nil {
		return Attachment{}, fmt.Errorf("decode confluence attachment: %w", err)
	}
	return NewAttachmentFromAPI(data), nil
}

// ToSimplifiedDict mirrors every field of the record.
func (a Attachment) ToSimplifiedDict() map[string]any {
	return map[string]any{
		"id":         optional(a.ID),
		"type":       optional(a.Type),
		"status":     optional(a.Status),
		"title":      optional(a.Title),
		"media_type": optional(a.MediaType),
		"file_size":  optional(a.FileSize),
	}
}
