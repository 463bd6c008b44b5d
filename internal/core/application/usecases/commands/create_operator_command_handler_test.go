package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOperatorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOperatorCommand("Maria Souza", "maria@empresa.com.br", "segredo123", "")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "segredo123").Return("$2a$10$hashed", nil).Once()

	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		operatorRepo.On("GetByEmail", ctx, "maria@empresa.com.br").
			Return(nil, errs.NewObjectNotFoundError("email", "maria@empresa.com.br")).Once(),
		operatorRepo.On("Add", ctx, mock.AnythingOfType("*operator.Operator")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOperatorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOperatorCommandHandler(factory, hasher)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "maria@empresa.com.br", created.Email())
	assert.Equal(t, "$2a$10$hashed", created.PasswordHash())
	assert.Equal(t, operator.RoleOperator, created.Role())

	hasher.AssertExpectations(t)
	operatorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOperatorCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOperatorCommand("Maria Souza", "maria@empresa.com.br", "segredo123", "")
	require.NoError(t, err)

	existing, err := operator.NewOperator(
		kernel.NewUUID(), "Maria Souza", "maria@empresa.com.br", "$2a$10$hash", "")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "segredo123").Return("$2a$10$hashed", nil).Once()

	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		operatorRepo.On("GetByEmail", ctx, "maria@empresa.com.br").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOperatorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOperatorCommandHandler(factory, hasher)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	operatorRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestNewCreateOperatorCommand(t *testing.T) {
	t.Run("should reject a short password", func(t *testing.T) {
		_, err := commands.NewCreateOperatorCommand("Maria", "maria@empresa.com.br", "123", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unrecognized role", func(t *testing.T) {
		_, err := commands.NewCreateOperatorCommand("Maria", "maria@empresa.com.br", "segredo123", "SUPERUSER")

		require.Error(t, err)
	})

	t.Run("should default the role", func(t *testing.T) {
		cmd, err := commands.NewCreateOperatorCommand("Maria", "maria@empresa.com.br", "segredo123", "")

		require.NoError(t, err)
		assert.Equal(t, operator.RoleOperator, cmd.Role())
	})
}

func TestUpdateOperatorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	existing, err := operator.NewOperator(
		kernel.NewUUID(), "Maria Souza", "maria@empresa.com.br", "$2a$10$old", "")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOperatorCommand(existing.ID(), "novasenha", operator.RoleAdmin)
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "novasenha").Return("$2a$10$new", nil).Once()

	operatorRepo := new(MockOperatorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OperatorRepository").Return(operatorRepo).Once(),
		operatorRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		operatorRepo.On("Update", ctx, mock.AnythingOfType("*operator.Operator")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOperatorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOperatorCommandHandler(factory, hasher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$new", updated.PasswordHash())
	assert.Equal(t, operator.RoleAdmin, updated.Role())
}

func TestNewUpdateOperatorCommand(t *testing.T) {
	t.Run("should require at least one change", func(t *testing.T) {
		_, err := commands.NewUpdateOperatorCommand(kernel.NewUUID(), "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
