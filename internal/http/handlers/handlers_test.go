// Shared scaffolding for the handler tests: fake services with function
// fields, a router builder, and request/response helpers.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/go-gift-backend/internal/domain"
	"github.com/dkarlsen/go-gift-backend/internal/services"
)

type fakeListService struct {
	createFn        func(ctx context.Context, title, code string) (*domain.List, error)
	openFn          func(ctx context.Context, title, code string) (*domain.List, error)
	findFn          func(ctx context.Context, listID, token string) (*services.ListView, error)
	replaceRosterFn func(ctx context.Context, title, token string, names []string) error
	setRecipientsFn func(ctx context.Context, listID, token string, updates []services.RecipientUpdate) error
}

func (f *fakeListService) Create(ctx context.Context, title, code string) (*domain.List, error) {
	return f.createFn(ctx, title, code)
}
func (f *fakeListService) Open(ctx context.Context, title, code string) (*domain.List, error) {
	return f.openFn(ctx, title, code)
}
func (f *fakeListService) Find(ctx context.Context, listID, token string) (*services.ListView, error) {
	return f.findFn(ctx, listID, token)
}
func (f *fakeListService) ReplaceRoster(ctx context.Context, title, token string, names []string) error {
	return f.replaceRosterFn(ctx, title, token, names)
}
func (f *fakeListService) SetRecipients(ctx context.Context, listID, token string, updates []services.RecipientUpdate) error {
	return f.setRecipientsFn(ctx, listID, token, updates)
}

type fakeMemberService struct {
	setCodeFn func(ctx context.Context, listID, name, code string) (*services.Session, error)
	accessFn  func(ctx context.Context, listID, name, code string) (*services.Session, error)
	whoamiFn  func(ctx context.Context, token string) (*domain.Participant, error)
	pageFn    func(ctx context.Context, listID, userToken, targetName string) (*services.PageView, error)
}

func (f *fakeMemberService) SetCode(ctx context.Context, listID, name, code string) (*services.Session, error) {
	return f.setCodeFn(ctx, listID, name, code)
}
func (f *fakeMemberService) Access(ctx context.Context, listID, name, code string) (*services.Session, error) {
	return f.accessFn(ctx, listID, name, code)
}
func (f *fakeMemberService) Whoami(ctx context.Context, token string) (*domain.Participant, error) {
	return f.whoamiFn(ctx, token)
}
func (f *fakeMemberService) Page(ctx context.Context, listID, userToken, targetName string) (*services.PageView, error) {
	return f.pageFn(ctx, listID, userToken, targetName)
}

type fakeGiftService struct {
	createFn func(ctx context.Context, listID, token, description, link string) (*domain.Gift, error)
	updateFn func(ctx context.Context, listID, token, giftID, description, link string) error
	deleteFn func(ctx context.Context, listID, token, giftID string) error
	buyFn    func(ctx context.Context, listID, token, giftID string, bought bool) (string, error)
}

func (f *fakeGiftService) Create(ctx context.Context, listID, token, description, link string) (*domain.Gift, error) {
	return f.createFn(ctx, listID, token, description, link)
}
func (f *fakeGiftService) Update(ctx context.Context, listID, token, giftID, description, link string) error {
	return f.updateFn(ctx, listID, token, giftID, description, link)
}
func (f *fakeGiftService) Delete(ctx context.Context, listID, token, giftID string) error {
	return f.deleteFn(ctx, listID, token, giftID)
}
func (f *fakeGiftService) Buy(ctx context.Context, listID, token, giftID string, bought bool) (string, error) {
	return f.buyFn(ctx, listID, token, giftID, bought)
}

type fakeNoteService struct {
	createFn func(ctx context.Context, listID, token, targetName, description string) (*domain.Note, error)
	deleteFn func(ctx context.Context, listID, token, targetName, noteID string) error
}

func (f *fakeNoteService) Create(ctx context.Context, listID, token, targetName, description string) (*domain.Note, error) {
	return f.createFn(ctx, listID, token, targetName, description)
}
func (f *fakeNoteService) Delete(ctx context.Context, listID, token, targetName, noteID string) error {
	return f.deleteFn(ctx, listID, token, targetName, noteID)
}

// testCookies disables Secure so httptest round trips work like local dev.
var testCookies = CookieOptions{Secure: false, MaxAge: time.Hour}

// newTestRouter mounts a Handlers instance on the production paths.
func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/home/new", h.CreateList)
	r.POST("/home/open", h.OpenList)
	r.POST("/list/find", h.FindList)
	r.POST("/list/create", h.ReplaceRoster)
	r.POST("/list/recipients", h.SetRecipients)
	r.POST("/user/create", h.CreateCode)
	r.POST("/user/access", h.AccessMember)
	r.POST("/user/find", h.Whoami)
	r.POST("/user/data", h.MemberPage)
	r.POST("/logout", h.Logout)
	r.POST("/user/gift/new", h.NewGift)
	r.POST("/user/gift/edit", h.EditGift)
	r.POST("/user/gift/delete", h.DeleteGift)
	r.POST("/user/gift/buy", h.BuyGift)
	r.POST("/user/note/create", h.CreateNote)
	r.POST("/user/note/delete", h.DeleteNote)
	return r
}

func doPost(t *testing.T, r http.Handler, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody parses the JSON envelope; every endpoint answers 200.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func wantError(t *testing.T, w *httptest.ResponseRecorder, msg string) {
	t.Helper()
	body := decodeBody(t, w)
	if body["error"] != msg {
		t.Fatalf("error = %v; want %q (body %v)", body["error"], msg, body)
	}
}

func wantSuccess(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeBody(t, w)
	if body["message"] != "success" {
		t.Fatalf("message = %v; want success (body %v)", body["message"], body)
	}
	return body
}

// findCookie returns the Set-Cookie entry with the given name, or nil.
func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
