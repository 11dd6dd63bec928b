package confluence

// DefaultAttachmentLimit matches the page size Confluence uses when none is given.
const DefaultAttachmentLimit = 25

// AttachmentQuery selects the attachments of one piece of content.
type AttachmentQuery struct {
	ContentID string `validate:"required"`
	Start     int    `validate:"gte=0"`
	Limit     int    `validate:"gte=1,lte=200"`
	Filename  string
	MediaType string
}

// AttachmentPage is one page of a content's attachments.
type AttachmentPage struct {
	Attachments []Attachment
	Start       int
	Limit       int
	Size        int
	HasMore     bool
}

// UserLookup identifies a user. Cloud sites only know account ids; server
// sites resolve usernames, or user keys when ByKey is set.
type UserLookup struct {
	Identifier string `validate:"required"`
	ByKey      bool
}
