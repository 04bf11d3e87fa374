package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/javierDev03/invoices/internal/invoice"
)

func editorHandler(t *testing.T, got **invoice.Editor) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		editor, err := Editor(r.Context())
		require.NoError(t, err)
		*got = editor
	})
}

func TestMiddleware_NewVisitorGetsCookieAndEditor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	editor := invoice.NewEditor(time.Now())

	store := NewMockStore(ctrl)
	store.EXPECT().Create().Return(id, editor)

	var got *invoice.Editor
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Middleware(store)(editorHandler(t, &got)).ServeHTTP(rec, req)

	assert.Same(t, editor, got)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddleware_KnownCookieReusesEditor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	editor := invoice.NewEditor(time.Now())

	store := NewMockStore(ctrl)
	store.EXPECT().Get(id).Return(editor, true)

	var got *invoice.Editor
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id.String()})

	Middleware(store)(editorHandler(t, &got)).ServeHTTP(rec, req)

	assert.Same(t, editor, got)
	assert.Empty(t, rec.Result().Cookies())
}

func TestMiddleware_ExpiredSessionStartsOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stale := uuid.New()
	fresh := uuid.New()
	editor := invoice.NewEditor(time.Now())

	store := NewMockStore(ctrl)
	store.EXPECT().Get(stale).Return(nil, false)
	store.EXPECT().Create().Return(fresh, editor)

	var got *invoice.Editor
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: stale.String()})

	Middleware(store)(editorHandler(t, &got)).ServeHTTP(rec, req)

	assert.Same(t, editor, got)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, fresh.String(), cookies[0].Value)
}

func TestMiddleware_MalformedCookieStartsOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	editor := invoice.NewEditor(time.Now())

	store := NewMockStore(ctrl)
	store.EXPECT().Create().Return(uuid.New(), editor)

	var got *invoice.Editor
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-uuid"})

	Middleware(store)(editorHandler(t, &got)).ServeHTTP(rec, req)

	assert.Same(t, editor, got)
}

func TestEditor_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := Editor(req.Context())
	assert.Error(t, err)
}
