package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"basic paragraphs",
			`<html><body><p>Hello</p><p>world</p></body></html>`,
			"Hello world",
		},
		{
			"scripts and styles dropped",
			`<html><head><title>ignored</title></head><body><script>var x = 1;</script><style>p{}</style><p>kept</p></body></html>`,
			"kept",
		},
		{
			"nav and footer dropped",
			`<body><nav>Home About</nav><article>the story</article><footer>copyright</footer></body>`,
			"the story",
		},
		{
			"whitespace collapsed",
			"<body><p>a\n\n   b\t c</p></body>",
			"a b c",
		},
		{
			"nested markup flattened",
			`<body><div>one <em>two</em> <strong>three</strong></div></body>`,
			"one two three",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HTMLToText(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWebpage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`<html><body><h1>Title</h1><p>Body text.</p></body></html>`))
		case "/empty":
			_, _ = w.Write([]byte(`<html><body><script>only code</script></body></html>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	e := NewWithClient(srv.Client())
	ctx := context.Background()

	t.Run("fetches and strips markup", func(t *testing.T) {
		text, err := e.Webpage(ctx, srv.URL+"/ok")
		require.NoError(t, err)
		assert.Equal(t, "Title Body text.", text)
	})

	t.Run("non-200 fails extraction", func(t *testing.T) {
		_, err := e.Webpage(ctx, srv.URL+"/missing")
		assert.ErrorIs(t, err, ErrExtractionFailed)
	})

	t.Run("text-free page fails extraction", func(t *testing.T) {
		_, err := e.Webpage(ctx, srv.URL+"/empty")
		assert.ErrorIs(t, err, ErrExtractionFailed)
	})

	t.Run("unreachable host fails extraction", func(t *testing.T) {
		_, err := e.Webpage(ctx, "http://127.0.0.1:1/nope")
		assert.ErrorIs(t, err, ErrExtractionFailed)
	})
}

func TestYouTube(t *testing.T) {
	e := New()
	ctx := context.Background()

	text, err := e.YouTube(ctx, "  hello\n\nworld  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	_, err = e.YouTube(ctx, "   \n\t ")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestPDF_RejectsGarbage(t *testing.T) {
	e := New()
	ctx := context.Background()

	_, err := e.PDF(ctx, nil)
	assert.ErrorIs(t, err, ErrExtractionFailed)

	_, err = e.PDF(ctx, []byte("this is not a pdf"))
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", normalizeWhitespace(" a  b\n\tc "))
	assert.Equal(t, "", normalizeWhitespace("   "))
}
