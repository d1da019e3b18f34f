package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/project/lending/generated/mocks"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/auth"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testService(ctrl *gomock.Controller) (
	*implementation,
	*mocks.MockLendingUseCase,
	*mocks.MockInventoryUseCase,
	*mocks.MockStatsUseCase,
	*mocks.MockAuthUseCase,
) {
	gin.SetMode(gin.TestMode)

	lendingUseCase := mocks.NewMockLendingUseCase(ctrl)
	inventoryUseCase := mocks.NewMockInventoryUseCase(ctrl)
	statsUseCase := mocks.NewMockStatsUseCase(ctrl)
	authUseCase := mocks.NewMockAuthUseCase(ctrl)

	service := New(zap.NewNop(), lendingUseCase, inventoryUseCase, statsUseCase, authUseCase)

	return service, lendingUseCase, inventoryUseCase, statsUseCase, authUseCase
}

func doJSON(t *testing.T, handler gin.HandlerFunc, method, target, body string) (int, response) {
	t.Helper()

	router := gin.New()
	router.Handle(method, "/api/:id", func(c *gin.Context) { handler(c) })

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var resp response
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &resp))

	return rec.Code, resp
}

func TestBorrowBook(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		body         string
		result       entity.LendingResult
		usecaseError error
		expectedCode int
		expectCall   bool
	}{
		{
			name:         "granted loan",
			body:         `{"user_id":"u1","book_id":"b1"}`,
			result:       entity.LendingResult{OK: true, Message: "issued"},
			expectedCode: codeOK,
			expectCall:   true,
		},
		{
			name:         "missing fields",
			body:         `{"user_id":"u1"}`,
			expectedCode: codeBadRequest,
		},
		{
			name:         "unknown user surfaces as not found",
			body:         `{"user_id":"u1","book_id":"b1"}`,
			usecaseError: entity.ErrUserNotFound,
			expectedCode: codeNotFound,
			expectCall:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service, lendingUseCase, _, _, _ := testService(ctrl)

			if tc.expectCall {
				lendingUseCase.EXPECT().Borrow(gomock.Any(), "u1", "b1").
					Return(tc.result, tc.usecaseError)
			}

			status, resp := doJSON(t, service.BorrowBook, http.MethodPost, "/api/borrow", tc.body)

			require.Equal(t, http.StatusOK, status)
			require.Equal(t, tc.expectedCode, resp.Code)
		})
	}
}

func TestAddBookHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		body         string
		usecaseError error
		expectedCode int
		expectCall   bool
	}{
		{
			name:         "adds a book",
			body:         `{"title":"Dune","author":"Frank Herbert","year":1965,"genre":"Sci-Fi"}`,
			expectedCode: codeOK,
			expectCall:   true,
		},
		{
			name:         "missing title",
			body:         `{"author":"Frank Herbert","year":1965}`,
			expectedCode: codeBadRequest,
		},
		{
			name:         "invalid year",
			body:         `{"title":"Dune","author":"Frank Herbert","year":3000}`,
			usecaseError: entity.ErrInvalidYear,
			expectedCode: codeBadRequest,
			expectCall:   true,
		},
		{
			name:         "year zero reaches the engine",
			body:         `{"title":"Dune","author":"Frank Herbert","year":0}`,
			expectedCode: codeOK,
			expectCall:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service, _, inventoryUseCase, _, _ := testService(ctrl)

			if tc.expectCall {
				inventoryUseCase.EXPECT().
					AddBook(gomock.Any(), "Dune", "Frank Herbert", gomock.Any(), gomock.Any()).
					Return(entity.Book{ID: "b1", Title: "Dune"}, tc.usecaseError)
			}

			status, resp := doJSON(t, service.AddBook, http.MethodPost, "/api/books", tc.body)

			require.Equal(t, http.StatusOK, status)
			require.Equal(t, tc.expectedCode, resp.Code)
		})
	}
}

func TestSafeDeleteUserHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service, _, inventoryUseCase, _, _ := testService(ctrl)

	inventoryUseCase.EXPECT().SafeDeleteUser(gomock.Any(), "u1").
		Return(entity.DeleteResult{OK: false, Message: "cannot delete: user still holds borrowed books", HeldTitles: []string{"Dune"}}, nil)

	status, resp := doJSON(t, service.SafeDeleteUser, http.MethodDelete, "/api/u1", "")

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, codeOK, resp.Code)

	payload, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, false, payload["ok"])
	require.Equal(t, []any{"Dune"}, payload["held_titles"])
}

func TestAuthJWTGuard(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	jwter := &auth.JWTer{Secret: []byte("secret"), Issuer: "lending-test", TTL: time.Hour}

	readerToken, err := jwter.Issue("AB1234", entity.RoleReader)
	require.NoError(t, err)
	librarianToken, err := jwter.Issue("lib-1", entity.RoleLibrarian)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/guarded", AuthJWT(jwter, entity.RoleLibrarian), func(c *gin.Context) {
		c.JSON(http.StatusOK, ok(nil))
	})

	testCases := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{name: "librarian passes", token: librarianToken, expectedCode: codeOK},
		{name: "reader is forbidden", token: readerToken, expectedCode: codeForbidden},
		{name: "garbage token", token: "garbage", expectedCode: codeUnauthorized},
		{name: "missing token", token: "", expectedCode: codeUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			var resp response
			require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tc.expectedCode, resp.Code)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service, _, _, _, authUseCase := testService(ctrl)

	authUseCase.EXPECT().Login(gomock.Any(), "admin", "secret").
		Return("", entity.User{}, entity.ErrInvalidCredentials)

	status, resp := doJSON(t, service.Login, http.MethodPost, "/api/login", `{"username":"admin","password":"secret"}`)

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, codeUnauthorized, resp.Code)
}
