package datastore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *RecordStore {
	return NewRecordStore(filemanager.NewFileManager(zerolog.Nop()), zerolog.Nop())
}

func testIdentity(t *testing.T, rawURL string) models.PolicyIdentity {
	t.Helper()
	identity, err := models.NewPolicyIdentity(rawURL, NewURLHashGenerator(DefaultURLHashLength))
	require.NoError(t, err)
	return identity
}

func TestRecordStore_SaveHTML(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore()
	markup := "<html><body>Policy</body></html>"

	record := PolicyRecord{
		Identity:  testIdentity(t, "https://example.com/privacy?lang=en#top"),
		DateStamp: "20240102",
		Payload: &models.SourcePayload{
			URLType:        models.URLTypeHTML,
			ContentType:    "text/html",
			StaticBytes:    []byte("<html>static</html>"),
			RenderedMarkup: &markup,
			Screenshot:     []byte{0x89, 'P', 'N', 'G'},
		},
		Content: &models.ExtractedContent{Text: "Policy"},
	}

	result, err := store.Save(context.Background(), dir, record)
	require.NoError(t, err)
	assert.Len(t, result.Files, 4)
	assert.Equal(t, ContentMD5([]byte(markup)), result.HTMLMD5)

	html, err := os.ReadFile(filepath.Join(dir, "20240102.html"))
	require.NoError(t, err)
	assert.Equal(t, markup, string(html))
	assert.FileExists(t, filepath.Join(dir, "20240102.png"))
	assert.NoFileExists(t, filepath.Join(dir, "20240102.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "20240102.txt"))

	content, err := store.LoadContent(dir, "20240102")
	require.NoError(t, err)
	assert.Equal(t, "Policy", content.Text)

	meta, err := store.LoadMetadata(dir, "20240102")
	require.NoError(t, err)
	assert.Equal(t, "20240102", meta.LastScraped)
	assert.Equal(t, "https://example.com/privacy?lang=en#top", meta.URL)
	assert.Equal(t, "example.com", meta.Domain)
	assert.Equal(t, "/privacy", meta.Path)
	assert.Equal(t, "lang=en", meta.Query)
	assert.Equal(t, "top", meta.Fragment)
	assert.Equal(t, models.URLTypeHTML, meta.Type)
	assert.Equal(t, result.HTMLMD5, meta.HTMLMD5)

	raw, err := os.ReadFile(filepath.Join(dir, "20240102.meta"))
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "html", fields["type"])
}

func TestRecordStore_SavePDFAndPlain(t *testing.T) {
	store := newTestStore()
	markup := "<html>viewer</html>"

	pdfDir := t.TempDir()
	_, err := store.Save(context.Background(), pdfDir, PolicyRecord{
		Identity:  testIdentity(t, "https://example.com/policy.pdf"),
		DateStamp: "20240102",
		Payload: &models.SourcePayload{
			URLType:        models.URLTypePDF,
			StaticBytes:    []byte("%PDF-1.4"),
			RenderedMarkup: &markup,
		},
		Content: &models.ExtractedContent{Text: "decoded"},
	})
	require.NoError(t, err)
	pdf, err := os.ReadFile(filepath.Join(pdfDir, "20240102.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))
	assert.NoFileExists(t, filepath.Join(pdfDir, "20240102.png"))

	plainDir := t.TempDir()
	text := "plain policy"
	_, err = store.Save(context.Background(), plainDir, PolicyRecord{
		Identity:  testIdentity(t, "https://example.com/policy.txt"),
		DateStamp: "20240102",
		Payload: &models.SourcePayload{
			URLType:        models.URLTypePlain,
			StaticBytes:    []byte(text),
			RenderedMarkup: &text,
		},
		Content: &models.ExtractedContent{Text: text},
	})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(plainDir, "20240102.txt"))
	assert.NoFileExists(t, filepath.Join(plainDir, "20240102.html"))
	assert.NoFileExists(t, filepath.Join(plainDir, "20240102.pdf"))
}

func TestRecordStore_SaveEmptyContentSkipsJSON(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore()

	result, err := store.Save(context.Background(), dir, PolicyRecord{
		Identity:  testIdentity(t, "https://example.com"),
		DateStamp: "20240102",
		Content:   &models.ExtractedContent{},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "20240102.meta")}, result.Files)
}

func TestRecordStore_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore()
	markup := "<p>x</p>"

	// a directory where the png should go makes only that write fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "20240102.png"), 0755))

	result, err := store.Save(context.Background(), dir, PolicyRecord{
		Identity:  testIdentity(t, "https://example.com"),
		DateStamp: "20240102",
		Payload: &models.SourcePayload{
			URLType:        models.URLTypeHTML,
			RenderedMarkup: &markup,
			Screenshot:     []byte("png"),
		},
		Content: &models.ExtractedContent{Text: "x"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write png")
	assert.FileExists(t, filepath.Join(dir, "20240102.html"))
	assert.FileExists(t, filepath.Join(dir, "20240102.json"))
	assert.FileExists(t, filepath.Join(dir, "20240102.meta"))
	assert.Len(t, result.Files, 3)
}

func TestRecordStore_LoadContentMissing(t *testing.T) {
	_, err := newTestStore().LoadContent(t.TempDir(), "20240101")
	assert.Error(t, err)
}

func TestRecordStore_LoadContentKeywords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20240101.json"),
		[]byte(`{"text":"a","keywords":[["identifiers","email"],["inferences","N/A"]]}`), 0644))

	content, err := newTestStore().LoadContent(dir, "20240101")
	require.NoError(t, err)
	assert.Equal(t, "a", content.Text)
	assert.Equal(t, models.KeywordTable{{"identifiers", "email"}, {"inferences", "N/A"}}, content.Keywords)
}
