//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
)

// MockUserService is a mock implementation of users.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, newUser *users.NewUser) (*users.User, error) {
	args := m.Called(ctx, newUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) CreateBatch(ctx context.Context, batch []*users.NewUser) ([]*users.User, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) ListByIDs(ctx context.Context, ids []int64) ([]*users.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]*users.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id int64, update *users.UserUpdate) (*users.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockProjectService is a mock implementation of projects.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetByID(ctx context.Context, id int64) (*projects.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) ListPage(ctx context.Context, query *projects.ProjectQuery) (*projects.ProjectPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.ProjectPage), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, newProject *projects.NewProject) (*projects.Project, error) {
	args := m.Called(ctx, newProject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) CreateBatch(ctx context.Context, batch []*projects.NewProject) ([]*projects.Project, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id int64, update *projects.ProjectUpdate) (*projects.Project, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id int64) (*projects.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

// MockAuthService is a mock implementation of auth.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, newUser *users.NewUser) (*users.User, error) {
	args := m.Called(ctx, newUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, credentials *auth.Credentials) (*users.User, *auth.TokenPair, error) {
	args := m.Called(ctx, credentials)
	var user *users.User
	if args.Get(0) != nil {
		user = args.Get(0).(*users.User)
	}
	var pair *auth.TokenPair
	if args.Get(1) != nil {
		pair = args.Get(1).(*auth.TokenPair)
	}
	return user, pair, args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) VerifyAccess(ctx context.Context, accessToken string) (*auth.TokenPayload, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPayload), args.Error(1)
}

// MockEmailTaskService is a mock implementation of tasks.EmailTaskService
type MockEmailTaskService struct {
	mock.Mock
}

func (m *MockEmailTaskService) Enqueue(ctx context.Context, email string) (*tasks.EmailTask, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.EmailTask), args.Error(1)
}

func (m *MockEmailTaskService) Result(ctx context.Context, taskID string) (*tasks.TaskResult, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.TaskResult), args.Error(1)
}

func (m *MockEmailTaskService) Process(ctx context.Context, task *tasks.EmailTask) (*tasks.TaskResult, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.TaskResult), args.Error(1)
}

// MockPostsService is a mock implementation of external.PostsService
type MockPostsService struct {
	mock.Mock
}

func (m *MockPostsService) ListPosts(ctx context.Context, query *external.PostsQuery) ([]*external.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*external.Post), args.Error(1)
}
