package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	"veraz/internal/domain/repository"
	mockRepo "veraz/internal/mocks/repository"
	mockSvc "veraz/internal/mocks/service"
	"veraz/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminIdentity    = &entity.Identity{UserID: 1, Role: entity.RoleAdmin}
	commerceIdentity = &entity.Identity{UserID: 2, Role: entity.RoleCommerce}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return userServiceFixtures{
		service:   NewUserService(txManager, userRepo, hasher, discardLogger()),
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

// expectTransaction runs the transactional callback against a factory handing out txUserRepo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.CreateUserInput{
		Email:    "comercio@veraz.com",
		Name:     "Almacén Don Pepe",
		Password: "secreto123",
		Role:     entity.RoleCommerce,
		Cuit:     strPtr("20-12345678-9"),
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByCuit(ctx, "20-12345678-9").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 10
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, adminIdentity, input)

	require.NoError(t, err)
	assert.Equal(t, uint(10), user.ID)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Equal(t, entity.RoleCommerce, user.Role)
	require.NotNil(t, user.Cuit)
	assert.Equal(t, "20-12345678-9", *user.Cuit)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.CreateUserInput{
		Email:    "taken@veraz.com",
		Name:     "Otro",
		Password: "secreto123",
		Role:     entity.RoleCommerce,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: 3, Email: input.Email}, nil)

	user, err := fx.service.CreateUser(ctx, adminIdentity, input)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateUser_DuplicateCuit(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.CreateUserInput{
		Email:    "nuevo@veraz.com",
		Name:     "Nuevo",
		Password: "secreto123",
		Role:     entity.RoleCommerce,
		Cuit:     strPtr("30-1"),
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByCuit(ctx, "30-1").Return(&entity.User{ID: 4}, nil)

	_, err := fx.service.CreateUser(ctx, adminIdentity, input)

	assert.ErrorIs(t, err, domainerrors.ErrCuitAlreadyExists)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateUserInput
		wantErr error
	}{
		{
			name:    "missing email",
			input:   &usecase.CreateUserInput{Name: "A", Password: "p", Role: entity.RoleAdmin},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "blank name",
			input:   &usecase.CreateUserInput{Email: "a@b.com", Name: "  ", Password: "p", Role: entity.RoleAdmin},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing password",
			input:   &usecase.CreateUserInput{Email: "a@b.com", Name: "A", Role: entity.RoleAdmin},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown role",
			input:   &usecase.CreateUserInput{Email: "a@b.com", Name: "A", Password: "p", Role: entity.Role("ROOT")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "password over 72 bytes",
			input:   &usecase.CreateUserInput{Email: "a@b.com", Name: "A", Password: strings.Repeat("ñ", 72), Role: entity.RoleCommerce},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.CreateUser(context.Background(), adminIdentity, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_RequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.ListUsers(ctx, commerceIdentity)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.GetUser(ctx, nil, 1)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.CreateUser(ctx, commerceIdentity, &usecase.CreateUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.UpdateUser(ctx, commerceIdentity, 1, entity.UserUpdate{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.service.DeleteUser(ctx, commerceIdentity, 1)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	users := []*entity.User{{ID: 1, Role: entity.RoleAdmin}, {ID: 2, Role: entity.RoleCommerce}}
	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, adminIdentity)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, adminIdentity, 99)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_RehashesSuppliedPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 5, Email: "c@veraz.com", Name: "Viejo", PasswordHash: "old", Role: entity.RoleCommerce}

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, uint(5)).Return(existing, nil)
		fx.hasher.EXPECT().Hash("nueva-clave").Return("new-hash", nil)
		txUserRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Name == "Nuevo" && u.PasswordHash == "new-hash" && u.Email == "c@veraz.com"
			})).
			Return(nil)
	})

	user, err := fx.service.UpdateUser(ctx, adminIdentity, 5, entity.UserUpdate{
		Name:     strPtr("Nuevo"),
		Password: strPtr("nueva-clave"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
}

func TestUserService_UpdateUser_KeepsHashWithoutPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 5, Email: "c@veraz.com", Name: "Viejo", PasswordHash: "old", Role: entity.RoleCommerce}

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, uint(5)).Return(existing, nil)
		txUserRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	user, err := fx.service.UpdateUser(ctx, adminIdentity, 5, entity.UserUpdate{Name: strPtr("Nuevo")})

	require.NoError(t, err)
	assert.Equal(t, "old", user.PasswordHash)
	assert.Equal(t, "Nuevo", user.Name)
}

func TestUserService_UpdateUser_EmailTakenByAnotherUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.User{ID: 5, Email: "c@veraz.com"}, nil)
		txUserRepo.EXPECT().FindByEmail(ctx, "otro@veraz.com").Return(&entity.User{ID: 6}, nil)
	})

	_, err := fx.service.UpdateUser(ctx, adminIdentity, 5, entity.UserUpdate{Email: strPtr("otro@veraz.com")})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.UpdateUser(ctx, adminIdentity, 404, entity.UserUpdate{Name: strPtr("X")})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)
	role := entity.Role("ROOT")

	_, err := fx.service.UpdateUser(context.Background(), adminIdentity, 5, entity.UserUpdate{Role: &role})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateUser_PasswordTooLong(t *testing.T) {
	fx := createTestUserService(t)
	password := strings.Repeat("ñ", 72)

	_, err := fx.service.UpdateUser(context.Background(), adminIdentity, 5, entity.UserUpdate{Password: &password})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().Delete(ctx, uint(7)).Return(nil)
	fx.userRepo.EXPECT().Delete(ctx, uint(8)).Return(repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Delete(ctx, uint(9)).Return(domainerrors.ErrUserHasDebts)

	require.NoError(t, fx.service.DeleteUser(ctx, adminIdentity, 7))
	assert.ErrorIs(t, fx.service.DeleteUser(ctx, adminIdentity, 8), domainerrors.ErrUserNotFound)
	assert.ErrorIs(t, fx.service.DeleteUser(ctx, adminIdentity, 9), domainerrors.ErrUserHasDebts)
}

func TestUserService_BootstrapAdmin_CreatesOnce(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.BootstrapAdminInput{Email: "admin@veraz.com", Name: "Administrador", Password: "admin2300"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound).Once()
	fx.hasher.EXPECT().Hash(input.Password).Return("hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleAdmin })).
		Return(nil)

	out, err := fx.service.BootstrapAdmin(ctx, input)
	require.NoError(t, err)
	assert.True(t, out.Created)

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: 1, Email: input.Email, Role: entity.RoleAdmin}, nil).Once()

	out, err = fx.service.BootstrapAdmin(ctx, input)
	require.NoError(t, err)
	assert.False(t, out.Created)
}

func TestUserService_BootstrapAdmin_RequiresPassword(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.BootstrapAdmin(context.Background(), &usecase.BootstrapAdminInput{Email: "admin@veraz.com", Name: "Administrador"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_BootstrapAdmin_PasswordTooLong(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.BootstrapAdmin(context.Background(), &usecase.BootstrapAdminInput{
		Email:    "admin@veraz.com",
		Name:     "Administrador",
		Password: strings.Repeat("ñ", 72),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.CreateUserInput{Email: "a@veraz.com", Name: "A", Password: "p", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("p").Return("", errors.New("boom"))

	_, err := fx.service.CreateUser(ctx, adminIdentity, input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
