package sessions

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctyr/models"
)

const (
	testHashKey  = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testBlockKey = "202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewStore(testHashKey, testBlockKey, false)
	require.NoError(t, err)
	return store
}

func TestStore_SetAndGet_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	user := &models.SessionUser{
		ID:            "123456789",
		Username:      "warden",
		Avatar:        "abc123",
		Discriminator: "0",
	}

	recorder := httptest.NewRecorder()
	require.NoError(t, store.Set(recorder, user))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "dls_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	// Encrypted: the raw value must not leak the payload
	assert.NotContains(t, cookies[0].Value, "warden")

	request := httptest.NewRequest("GET", "/", nil)
	request.AddCookie(cookies[0])

	got, err := store.Get(request)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, got)
}

func TestStore_Get_NoCookieIsAnonymous(t *testing.T) {
	store := newTestStore(t)

	request := httptest.NewRequest("GET", "/", nil)
	user, err := store.Get(request)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_Get_TamperedCookieIsAnonymous(t *testing.T) {
	store := newTestStore(t)

	request := httptest.NewRequest("GET", "/", nil)
	request.AddCookie(&http.Cookie{Name: "dls_session", Value: "not-a-valid-cookie"})

	user, err := store.Get(request)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_Clear_ExpiresCookie(t *testing.T) {
	store := newTestStore(t)

	recorder := httptest.NewRecorder()
	store.Clear(recorder)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "dls_session", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
	assert.Empty(t, strings.TrimSpace(cookies[0].Value))
}

func TestNewStore_RejectsBadKeys(t *testing.T) {
	_, err := NewStore("zz", testBlockKey, false)
	assert.Error(t, err)

	_, err = NewStore(testHashKey, "abcd", false)
	assert.Error(t, err)
}
