package repository

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPageNum int64 = 10
	PageMaxNum     int64 = 50

	cursorTimeFormat = time.RFC3339Nano
)

// Cursor is a keyset position on (created_at DESC, id DESC).
type Cursor struct {
	CreatedAt time.Time
	ID        int64
}

// IsZero reports whether c points at the beginning of the list.
func (c Cursor) IsZero() bool {
	return c.ID == 0 && c.CreatedAt.IsZero()
}

// DecodeCursor parses a cursor produced by EncodeCursor. The empty string is the first page.
func DecodeCursor(encoded string) (Cursor, error) {
	if encoded == "" {
		return Cursor{}, nil
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Cursor{}, err
	}

	ts, idStr, ok := strings.Cut(string(raw), "|")
	if !ok {
		return Cursor{}, fmt.Errorf("malformed cursor %q", raw)
	}
	t, err := time.Parse(cursorTimeFormat, ts)
	if err != nil {
		return Cursor{}, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return Cursor{}, err
	}
	return Cursor{CreatedAt: t, ID: id}, nil
}

// EncodeCursor encodes the position of the last item of a page.
func EncodeCursor(t time.Time, id int64) string {
	raw := t.Format(cursorTimeFormat) + "|" + strconv.FormatInt(id, 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// PageVerify clamps num into [1, PageMaxNum], falling back to DefaultPageNum.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageNum
	}
	if *num > PageMaxNum {
		*num = PageMaxNum
	}
}
