package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/airline-records/internal/domain"
	"github.com/Domenick1991/airline-records/internal/repository"
	"github.com/Domenick1991/airline-records/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of users.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Create(ctx context.Context, input users.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Update(ctx context.Context, email string, input users.UpdateUserInput) (*domain.User, error) {
	args := m.Called(ctx, email, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestUserHandler_list(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/airline/users", nil)

	all := []domain.User{
		{ID: 1, Username: "user1", Email: "user1@example.com"},
		{ID: 2, Username: "user2", Email: "user2@example.com"},
	}

	mockService.On("List", c.Request.Context()).Return(all, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"username":"user1","email":"user1@example.com"},
		{"id":2,"username":"user2","email":"user2@example.com"}
	]`, w.Body.String())

	// only the allowlisted fields appear
	var decoded []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
	for _, entry := range decoded {
		assert.Len(t, entry, 3)
	}

	mockService.AssertExpectations(t)
}

func TestUserHandler_list_empty(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/airline/users", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.User{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestUserHandler_create(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/airline/users/create", strings.NewReader(`{"username":"a","email":"a@x.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	input := users.CreateUserInput{Username: "a", Email: "a@x.com"}
	created := &domain.User{ID: 1, Username: "a", Email: "a@x.com"}

	mockService.On("Create", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.GreaterOrEqual(t, decoded["id"].(float64), float64(1))
	assert.Equal(t, "a", decoded["username"])
	assert.Equal(t, "a@x.com", decoded["email"])

	mockService.AssertExpectations(t)
}

func TestUserHandler_create_missingField(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/airline/users/create", strings.NewReader(`{"username":"a"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	input := users.CreateUserInput{Username: "a"}
	mockService.On("Create", c.Request.Context(), input).Return(nil, fmt.Errorf("%w: email", users.ErrMissingField))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}

func TestUserHandler_create_duplicate(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/airline/users/create", strings.NewReader(`{"username":"a","email":"a@x.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	input := users.CreateUserInput{Username: "a", Email: "a@x.com"}
	mockService.On("Create", c.Request.Context(), input).Return(nil, repository.ErrDuplicate)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	mockService.AssertExpectations(t)
}

func TestUserHandler_get(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "email", Value: "user1@example.com"}}
	c.Request = httptest.NewRequest("GET", "/airline/users/user1@example.com", nil)

	user := &domain.User{ID: 1, Username: "user1", Email: "user1@example.com"}
	mockService.On("GetByEmail", c.Request.Context(), "user1@example.com").Return(user, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"user1","email":"user1@example.com"}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestUserHandler_get_notFound(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "email", Value: "missing@x.com"}}
	c.Request = httptest.NewRequest("GET", "/airline/users/missing@x.com", nil)

	mockService.On("GetByEmail", c.Request.Context(), "missing@x.com").Return(nil, repository.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestUserHandler_update(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "email", Value: "user1@example.com"}}
	c.Request = httptest.NewRequest("PUT", "/airline/users/update/user1@example.com", strings.NewReader(`{"username":"updated_user","email":"user1@example.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	input := users.UpdateUserInput{Username: "updated_user", Email: "user1@example.com"}
	updated := &domain.User{ID: 1, Username: "updated_user", Email: "user1@example.com"}

	mockService.On("Update", c.Request.Context(), "user1@example.com", input).Return(updated, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"updated_user","email":"user1@example.com"}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestUserHandler_update_notFound(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "email", Value: "missing@x.com"}}
	c.Request = httptest.NewRequest("PUT", "/airline/users/update/missing@x.com", strings.NewReader(`{"username":"u","email":"missing@x.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	input := users.UpdateUserInput{Username: "u", Email: "missing@x.com"}
	mockService.On("Update", c.Request.Context(), "missing@x.com", input).Return(nil, repository.ErrNotFound)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestUserHandler_delete(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "email", Value: "user1@example.com"}}
	c.Request = httptest.NewRequest("DELETE", "/airline/users/delete/user1@example.com", nil)

	deleted := &domain.User{ID: 1, Username: "user1", Email: "user1@example.com"}
	mockService.On("Delete", c.Request.Context(), "user1@example.com").Return(deleted, nil)

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"user1","email":"user1@example.com"}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestUserHandler_delete_notFound(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "email", Value: "missing@x.com"}}
	c.Request = httptest.NewRequest("DELETE", "/airline/users/delete/missing@x.com", nil)

	mockService.On("Delete", c.Request.Context(), "missing@x.com").Return(nil, repository.ErrNotFound)

	handler.delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}
