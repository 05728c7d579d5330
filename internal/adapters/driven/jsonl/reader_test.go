package jsonl

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/companynorm/internal/core/domain"
)

func TestDecodeRecord_PreservesOrder(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"url":"test.com","money":"10 Mio. €","employees":null,"company_name":"Test Inc."}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"url", "money", "employees", "company_name"}, rec.Names())

	v, _ := rec.Get("money")
	assert.Equal(t, "10 Mio. €", v)
	v, ok := rec.Get("employees")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestDecodeRecord_NonStringValues(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"rating":4.5,"verified":true,"tags":["a"]}`))
	require.NoError(t, err)

	v, _ := rec.Get("rating")
	assert.Equal(t, json.Number("4.5"), v)
	v, _ = rec.Get("verified")
	assert.Equal(t, true, v)
	v, _ = rec.Get("tags")
	assert.Equal(t, []any{"a"}, v)
}

func TestDecodeRecord_NumbersKeepTheirDigits(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"id":12345678901234567890,"n":1.0,"nested":{"share":0.10,"years":[2019]}}`))
	require.NoError(t, err)

	v, _ := rec.Get("id")
	assert.Equal(t, json.Number("12345678901234567890"), v)
	v, _ = rec.Get("n")
	assert.Equal(t, json.Number("1.0"), v)
	v, _ = rec.Get("nested")
	assert.Equal(t, map[string]any{
		"share": json.Number("0.10"),
		"years": []any{json.Number("2019")},
	}, v)
}

func TestDecodeRecord_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"a":"1","b":"2","a":"3"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, rec.Names())
	v, _ := rec.Get("a")
	assert.Equal(t, "3", v)
}

func TestDecodeRecord_EmptyObject(t *testing.T) {
	rec, err := DecodeRecord([]byte("{}\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Len())
}

func TestDecodeRecord_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   \n"},
		{"array", `[1,2]`},
		{"null", `null`},
		{"string", `"money"`},
		{"truncated object", `{"money":`},
		{"trailing garbage", `{"a":"b"} x`},
		{"two objects", `{"a":"b"}{"c":"d"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecord([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedRecord)
		})
	}
}

func TestReader_ReadsLinesInOrder(t *testing.T) {
	input := `{"url":"a.com"}` + "\n" +
		`{"url":"b.com"}` + "\n" +
		`{"url":"c.com"}` // no trailing newline
	r := NewReader(strings.NewReader(input))

	var urls []any
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		v, _ := rec.Get("url")
		urls = append(urls, v)
		assert.Equal(t, len(urls), r.Line())
	}

	assert.Equal(t, []any{"a.com", "b.com", "c.com"}, urls)
}

func TestReader_TrailingNewline(t *testing.T) {
	r := NewReader(strings.NewReader("{\"url\":\"a.com\"}\n"))

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, r.Line())
}

func TestReader_CRLF(t *testing.T) {
	r := NewReader(strings.NewReader("{\"url\":\"a.com\"}\r\n"))

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"url"}, rec.Names())
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))

	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, r.Line())
}

func TestReader_MalformedLineReportsLineNumber(t *testing.T) {
	input := "{\"url\":\"a.com\"}\n\n{\"url\":\"c.com\"}\n"
	r := NewReader(strings.NewReader(input))

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	r := NewReader(strings.NewReader(`{"address":"` + long + `"}`))

	rec, err := r.Next()
	require.NoError(t, err)
	v, _ := rec.Get("address")
	assert.Equal(t, long, v)
}
