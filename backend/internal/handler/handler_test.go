package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/confluence-bridge/shared/domain/confluence"
)

// --- Mocks ---

type MockUserService struct {
	MockCurrent func(ctx context.Context) (confluence.User, error)
	MockGet     func(ctx context.Context, lookup confluence.UserLookup) (confluence.User, error)
}

func (m *MockUserService) Current(ctx context.Context) (confluence.User, error) {
	if m.MockCurrent != nil {
		return m.MockCurrent(ctx)
	}
	return confluence.DefaultUser(), nil
}

func (m *MockUserService) Get(ctx context.Context, lookup confluence.UserLookup) (confluence.User, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, lookup)
	}
	return confluence.DefaultUser(), nil
}

type MockAttachmentService struct {
	MockList func(ctx context.Context, q confluence.AttachmentQuery) (confluence.AttachmentPage, error)
	MockGet  func(ctx context.Context, id string) (confluence.Attachment, error)
}

func (m *MockAttachmentService) List(ctx context.Context, q confluence.AttachmentQuery) (confluence.AttachmentPage, error) {
	if m.MockList != nil {
		return m.MockList(ctx, q)
	}
	return confluence.AttachmentPage{}, nil
}

func (m *MockAttachmentService) Get(ctx context.Context, id string) (confluence.Attachment, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return confluence.Attachment{}, nil
}

// serve routes a single request through a chi router so URL params resolve.
func serve(t *testing.T, pattern string, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	router.Get(pattern, h)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func ptr[T any](v T) *T { return &v }
