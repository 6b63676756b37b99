package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	encoded := EncodeCursor(CursorData{AfterID: "p3"})
	require.NotEmpty(t, encoded)

	decoded, err := DecodeCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, "p3", decoded.AfterID)

	assert.Empty(t, EncodeCursor(CursorData{}))
}

func TestDecodeCursor_Invalid(t *testing.T) {
	_, err := DecodeCursor("!!not-base64!!")
	assert.ErrorIs(t, err, ErrInvalidCursor)

	_, err = DecodeCursor("bm90LWpzb24=") // "not-json"
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestPaginate(t *testing.T) {
	items := records(articles("a", "", "b", "", "c", "", "d", "", "e", ""))

	first, err := paginate(items, CursorData{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(first.Items))
	assert.Equal(t, 5, first.Total)
	require.NotEmpty(t, first.NextCursor)

	cursor, err := DecodeCursor(first.NextCursor)
	require.NoError(t, err)
	second, err := paginate(items, cursor, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(second.Items))

	cursor, _ = DecodeCursor(second.NextCursor)
	last, err := paginate(items, cursor, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, ids(last.Items))
	assert.Empty(t, last.NextCursor)

	_, err = paginate(items, CursorData{AfterID: "zz"}, 2)
	assert.ErrorIs(t, err, ErrInvalidCursor)
}
