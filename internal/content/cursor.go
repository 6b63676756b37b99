package content

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// ErrInvalidCursor is returned for a cursor that cannot be decoded or that
// points at a record missing from the listing.
var ErrInvalidCursor = errors.New("invalid cursor")

// CursorData represents the data encoded in a cursor
type CursorData struct {
	AfterID string `json:"after_id,omitempty"`
}

// EncodeCursor encodes cursor data to a base64 string
func EncodeCursor(data CursorData) string {
	if data.AfterID == "" {
		return ""
	}
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to CursorData
func DecodeCursor(cursor string) (CursorData, error) {
	if cursor == "" {
		return CursorData{}, nil
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return CursorData{}, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(decoded, &data); err != nil {
		return CursorData{}, ErrInvalidCursor
	}
	return data, nil
}

// Page is one window of a listing.
type Page struct {
	Items      []Record
	Total      int
	NextCursor string
}

// paginate returns up to limit items following the record named by the cursor.
func paginate(items []Record, cursor CursorData, limit int) (Page, error) {
	start := 0
	if cursor.AfterID != "" {
		start = -1
		for i, item := range items {
			if item.RecordID() == cursor.AfterID {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return Page{}, ErrInvalidCursor
		}
	}

	end := min(start+limit, len(items))
	page := Page{
		Items: append(make([]Record, 0, end-start), items[start:end]...),
		Total: len(items),
	}
	if end < len(items) {
		page.NextCursor = EncodeCursor(CursorData{AfterID: items[end-1].RecordID()})
	}
	return page, nil
}
