package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/itchan-dev/confluence-bridge/shared/domain/confluence"
)

// attachmentList is the paged envelope around /child/attachment results.
type attachmentList struct {
	Results []json.RawMessage `json:"results"`
	Start   int               `json:"start"`
	Limit   int               `json:"limit"`
	Size    int               `json:"size"`
	Links   struct {
		Next string `json:"next"`
	} `json:"_links"`
}

// GetAttachments fetches one page of attachments of a page or blog post.
func (c *APIClient) GetAttachments(ctx context.Context, q confluence.AttachmentQuery) (confluence.AttachmentPage, error) {
	var page confluence.AttachmentPage

	query := url.Values{}
	query.Set("start", strconv.Itoa(q.Start))
	query.Set("limit", strconv.Itoa(q.Limit))
	query.Set("expand", "version")
	if q.Filename != "" {
		query.Set("filename", q.Filename)
	}
	if q.MediaType != "" {
		query.Set("mediaType", q.MediaType)
	}

	path := fmt.Sprintf("/rest/api/content/%s/child/attachment", url.PathEscape(q.ContentID))
	resp, err := c.get(ctx, "attachments", path, query)
	if err != nil {
		return page, err
	}
	body, err := readBody(resp)
	if err != nil {
		return page, err
	}

	var list attachmentList
	if err := json.Unmarshal(body, &list); err != nil {
		return page, fmt.Errorf("cannot decode attachments response: %w", err)
	}

	page.Attachments = make([]confluence.Attachment, 0, len(list.Results))
	for _, raw := range list.Results {
		attachment, err := confluence.DecodeAttachment(raw)
		if err != nil {
			return page, fmt.Errorf("cannot decode attachment: %w", err)
		}
		page.Attachments = append(page.Attachments, attachment)
	}
	page.Start = list.Start
	page.Limit = list.Limit
	page.Size = list.Size
	page.HasMore = list.Links.Next != ""
	return page, nil
}

// GetAttachment fetches a single attachment by its content id.
func (c *APIClient) GetAttachment(ctx context.Context, attachmentID string) (confluence.Attachment, error) {
	path := "/rest/api/content/" + url.PathEscape(attachmentID)
	resp, err := c.get(ctx, "attachment", path, url.Values{"expand": {"version"}})
	if err != nil {
		return confluence.Attachment{}, err
	}
	body, err := readBody(resp)
	if err != nil {
		return confluence.Attachment{}, err
	}
	attachment, err := confluence.DecodeAttachment(body)
	if err != nil {
		return attachment, fmt.Errorf("cannot decode attachment response: %w", err)
	}
	return attachment, nil
}
