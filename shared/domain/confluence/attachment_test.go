package confluence

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachmentFromAPI(t *testing.T) {
	tests := []struct {
		name string
		data Raw
		want Attachment
	}{
		{
			name: "nil",
			data: nil,
			want: Attachment{},
		},
		{
			name: "extensions only",
			data: Raw{"extensions": Raw{"mediaType": "image/png", "fileSize": 2048.0}, "id": "att1"},
			want: Attachment{ID: ptr("att1"), MediaType: ptr("image/png"), FileSize: ptr(int64(2048))},
		},
		{
			name: "full payload",
			data: Raw{
				"id":     "att98765",
				"type":   "attachment",
				"status": "current",
				"title":  "report.pdf",
				"extensions": Raw{
					"mediaType": "application/pdf",
					"fileSize":  json.Number("10485760"),
					"comment":   "Q3",
				},
			},
			want: Attachment{
				ID:        ptr("att98765"),
				Type:      ptr("attachment"),
				Status:    ptr("current"),
				Title:     ptr("report.pdf"),
				MediaType: ptr("application/pdf"),
				FileSize:  ptr(int64(10485760)),
			},
		},
		{
			name: "no extensions",
			data: Raw{"id": "a", "title": "t.txt"},
			want: Attachment{ID: ptr("a"), Title: ptr("t.txt")},
		},
		{
			name: "malformed extensions",
			data: Raw{"id": "a", "extensions": "broken"},
			want: Attachment{ID: ptr("a")},
		},
		{
			name: "numeric string size",
			data: Raw{"extensions": Raw{"fileSize": "512"}},
			want: Attachment{FileSize: ptr(int64(512))},
		},
		{
			name: "fractional size dropped",
			data: Raw{"extensions": Raw{"fileSize": 1.5}},
			want: Attachment{},
		},
		{
			name: "garbage size dropped",
			data: Raw{"extensions": Raw{"fileSize": "big"}},
			want: Attachment{},
		},
		{
			name: "out of range numbers dropped",
			data: Raw{"id": 9223372036854775808.0, "extensions": Raw{"fileSize": 9223372036854775808.0}},
			want: Attachment{},
		},
		{
			name: "negative bound kept",
			data: Raw{"extensions": Raw{"fileSize": -9223372036854775808.0}},
			want: Attachment{FileSize: ptr(int64(math.MinInt64))},
		},
		{
			name: "oversized json number dropped",
			data: Raw{"id": json.Number("9223372036854775808"), "extensions": Raw{"fileSize": json.Number("9223372036854775808")}},
			want: Attachment{},
		},
		{
			name: "numeric id formatted",
			data: Raw{"id": 12345.0},
			want: Attachment{ID: ptr("12345")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAttachmentFromAPI(tt.data))
		})
	}
}

func TestAttachment_ToSimplifiedDict(t *testing.T) {
	t.Run("mirrors every field", func(t *testing.T) {
		a := NewAttachmentFromAPI(Raw{
			"id": "att1", "type": "attachment", "status": "current", "title": "a.png",
			"extensions": Raw{"mediaType": "image/png", "fileSize": 2048.0},
		})
		assert.Equal(t, map[string]any{
			"id":         "att1",
			"type":       "attachment",
			"status":     "current",
			"title":      "a.png",
			"media_type": "image/png",
			"file_size":  int64(2048),
		}, a.ToSimplifiedDict())
	})

	t.Run("absent fields are nil", func(t *testing.T) {
		got := Attachment{}.ToSimplifiedDict()
		assert.Len(t, got, len(SimplifiedAttachmentKeys))
		for _, k := range SimplifiedAttachmentKeys {
			v, ok := got[k]
			assert.True(t, ok, k)
			assert.Nil(t, v, k)
		}
	})
}

func TestDecodeAttachment(t *testing.T) {
	a, err := DecodeAttachment([]byte(`{"id":"att1","extensions":{"mediaType":"image/png","fileSize":9007199254740993}}`))
	require.NoError(t, err)
	require.NotNil(t, a.FileSize)
	assert.Equal(t, int64(9007199254740993), *a.FileSize)
	assert.Equal(t, "image/png", *a.MediaType)
	assert.Nil(t, a.Title)

	a, err = DecodeAttachment([]byte(`{"id":1.5,"extensions":{"fileSize":1e3}}`))
	require.NoError(t, err)
	assert.Equal(t, Attachment{FileSize: ptr(int64(1000))}, a)

	_, err = DecodeAttachment([]byte(`not json`))
	assert.Error(t, err)
}
