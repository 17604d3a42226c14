package app

import (
	"context"
	"errors"
	"testing"

	"go-empdir/internal/domain"
	"go-empdir/internal/employee"

	employeeMock "go-empdir/internal/employee/mock"
	securityMock "go-empdir/internal/security/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSeedDirector(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store - director seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		hasher := securityMock.NewMockPasswordHasher(ctrl)

		repo.EXPECT().Count(ctx).Return(int64(0), nil)
		hasher.EXPECT().Hash(seedDirectorPassword).Return("hashed-token", nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, domain.RoleDirector, e.Role)
				assert.Equal(t, seedDirectorEmail, e.Email)
				assert.Equal(t, "hashed-token", e.Password)
				assert.True(t, e.Active)
				assert.NotEqual(t, uuid.Nil, e.ID)
				assert.Nil(t, e.ManagerID)
				if assert.Len(t, e.Phones, 1) {
					assert.Equal(t, e.ID, e.Phones[0].EmployeeID)
				}
				return nil
			})

		err := seedDirector(ctx, repo, hasher, zap.NewNop())

		assert.NoError(t, err)
	})

	t.Run("populated store - left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		hasher := securityMock.NewMockPasswordHasher(ctrl)

		repo.EXPECT().Count(ctx).Return(int64(3), nil)
		hasher.EXPECT().Hash(gomock.Any()).Times(0)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		err := seedDirector(ctx, repo, hasher, zap.NewNop())

		assert.NoError(t, err)
	})

	t.Run("count failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		hasher := securityMock.NewMockPasswordHasher(ctrl)

		repo.EXPECT().Count(ctx).Return(int64(0), errors.New("db connection error"))

		err := seedDirector(ctx, repo, hasher, zap.NewNop())

		assert.Error(t, err)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		hasher := securityMock.NewMockPasswordHasher(ctrl)

		repo.EXPECT().Count(ctx).Return(int64(0), nil)
		hasher.EXPECT().Hash(seedDirectorPassword).Return("hashed-token", nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		err := seedDirector(ctx, repo, hasher, zap.NewNop())

		assert.Error(t, err)
	})
}
