package access_test

import (
	"context"
	"testing"

	"focustrack/internal/access"
	"focustrack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockOwnershipStore struct {
	mock.Mock
}

func (m *mockOwnershipStore) FindByUserAndGoal(ctx context.Context, userID, goalID uuid.UUID) (*model.UserGoal, error) {
	args := m.Called(ctx, userID, goalID)
	if v := args.Get(0); v != nil {
		return v.(*model.UserGoal), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockShareStore struct {
	mock.Mock
}

func (m *mockShareStore) FindByGoalAndContact(ctx context.Context, goalID, contactID uuid.UUID) (*model.SharedGoal, error) {
	args := m.Called(ctx, goalID, contactID)
	if v := args.Get(0); v != nil {
		return v.(*model.SharedGoal), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockHierarchyStore struct {
	mock.Mock
}

func (m *mockHierarchyStore) FindByStepGoal(ctx context.Context, stepGoalID uuid.UUID) (*model.GoalStep, error) {
	args := m.Called(ctx, stepGoalID)
	if v := args.Get(0); v != nil {
		return v.(*model.GoalStep), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockContactStore struct {
	mock.Mock
}

func (m *mockContactStore) AreContacts(ctx context.Context, a, b uuid.UUID) (bool, error) {
	args := m.Called(ctx, a, b)
	return args.Bool(0), args.Error(1)
}

func setupEngine() (*access.Engine, *mockOwnershipStore, *mockShareStore, *mockHierarchyStore, *mockContactStore) {
	ownership := new(mockOwnershipStore)
	shares := new(mockShareStore)
	hierarchy := new(mockHierarchyStore)
	contacts := new(mockContactStore)
	engine := access.NewEngine(ownership, shares, hierarchy, contacts)
	return engine, ownership, shares, hierarchy, contacts
}

func TestCanView_Owner(t *testing.T) {
	// Arrange
	engine, ownership, _, _, _ := setupEngine()
	userID := uuid.New()
	goalID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, userID, goalID).
		Return(&model.UserGoal{UserID: userID, GoalID: goalID, Role: model.RoleMain}, nil)

	// Act
	canView, err := engine.CanView(context.Background(), userID, goalID)

	// Assert
	assert.NoError(t, err)
	assert.True(t, canView)
	ownership.AssertExpectations(t)
}

func TestCanView_StepOwner(t *testing.T) {
	// A step owner passes on their ownership record alone, no share needed
	engine, ownership, _, _, _ := setupEngine()
	userID := uuid.New()
	stepID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, userID, stepID).
		Return(&model.UserGoal{UserID: userID, GoalID: stepID, Role: model.RoleStep}, nil)

	canView, err := engine.CanView(context.Background(), userID, stepID)

	assert.NoError(t, err)
	assert.True(t, canView)
}

func TestCanView_SharedContact(t *testing.T) {
	// Arrange
	engine, ownership, shares, hierarchy, _ := setupEngine()
	userID := uuid.New()
	goalID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, userID, goalID).Return(nil, nil)
	hierarchy.On("FindByStepGoal", mock.Anything, goalID).Return(nil, nil)
	shares.On("FindByGoalAndContact", mock.Anything, goalID, userID).
		Return(&model.SharedGoal{GoalID: goalID, ContactID: userID}, nil)

	// Act
	canView, err := engine.CanView(context.Background(), userID, goalID)

	// Assert
	assert.NoError(t, err)
	assert.True(t, canView)
	shares.AssertExpectations(t)
}

func TestCanView_StepResolvesToMainGoalShare(t *testing.T) {
	// A share on the main goal also covers its steps; the engine must
	// resolve the step to its main goal before consulting the share index
	engine, ownership, shares, hierarchy, _ := setupEngine()
	userID := uuid.New()
	mainID := uuid.New()
	stepID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, userID, stepID).Return(nil, nil)
	hierarchy.On("FindByStepGoal", mock.Anything, stepID).
		Return(&model.GoalStep{MainGoalID: mainID, StepGoalID: stepID}, nil)
	shares.On("FindByGoalAndContact", mock.Anything, mainID, userID).
		Return(&model.SharedGoal{GoalID: mainID, ContactID: userID}, nil)

	canView, err := engine.CanView(context.Background(), userID, stepID)

	assert.NoError(t, err)
	assert.True(t, canView)
	hierarchy.AssertExpectations(t)
	shares.AssertExpectations(t)
}

func TestCanView_Stranger(t *testing.T) {
	engine, ownership, shares, hierarchy, _ := setupEngine()
	userID := uuid.New()
	goalID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, userID, goalID).Return(nil, nil)
	hierarchy.On("FindByStepGoal", mock.Anything, goalID).Return(nil, nil)
	shares.On("FindByGoalAndContact", mock.Anything, goalID, userID).Return(nil, nil)

	canView, err := engine.CanView(context.Background(), userID, goalID)

	assert.NoError(t, err)
	assert.False(t, canView)
}

func TestIsOwner_ShareDoesNotGrantOwnership(t *testing.T) {
	// A share holder can read but must never pass owner checks
	engine, ownership, _, _, _ := setupEngine()
	userID := uuid.New()
	goalID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, userID, goalID).Return(nil, nil)

	isOwner, err := engine.IsOwner(context.Background(), userID, goalID)

	assert.NoError(t, err)
	assert.False(t, isOwner)
}

func TestIsMainOwner_StepRoleFails(t *testing.T) {
	engine, ownership, _, _, _ := setupEngine()
	userID := uuid.New()
	goalID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, userID, goalID).
		Return(&model.UserGoal{UserID: userID, GoalID: goalID, Role: model.RoleStep}, nil)

	isMainOwner, err := engine.IsMainOwner(context.Background(), userID, goalID)

	assert.NoError(t, err)
	assert.False(t, isMainOwner)
}

func TestAuthorizeShare_Success(t *testing.T) {
	// Arrange
	engine, ownership, _, _, contacts := setupEngine()
	ownerID := uuid.New()
	goalID := uuid.New()
	contactID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, ownerID, goalID).
		Return(&model.UserGoal{UserID: ownerID, GoalID: goalID, Role: model.RoleMain}, nil)
	contacts.On("AreContacts", mock.Anything, ownerID, contactID).Return(true, nil)

	// Act
	err := engine.AuthorizeShare(context.Background(), ownerID, goalID, contactID)

	// Assert
	assert.NoError(t, err)
	contacts.AssertExpectations(t)
}

func TestAuthorizeShare_SelfShare(t *testing.T) {
	engine, _, _, _, _ := setupEngine()
	ownerID := uuid.New()
	goalID := uuid.New()

	err := engine.AuthorizeShare(context.Background(), ownerID, goalID, ownerID)

	assert.ErrorIs(t, err, access.ErrSelfReference)
}

func TestAuthorizeShare_NotMainOwner(t *testing.T) {
	engine, ownership, _, _, _ := setupEngine()
	ownerID := uuid.New()
	goalID := uuid.New()
	contactID := uuid.New()

	// A step goal is never independently shareable
	ownership.On("FindByUserAndGoal", mock.Anything, ownerID, goalID).
		Return(&model.UserGoal{UserID: ownerID, GoalID: goalID, Role: model.RoleStep}, nil)

	err := engine.AuthorizeShare(context.Background(), ownerID, goalID, contactID)

	assert.ErrorIs(t, err, access.ErrNotOwner)
}

func TestAuthorizeShare_NotContacts(t *testing.T) {
	engine, ownership, _, _, contacts := setupEngine()
	ownerID := uuid.New()
	goalID := uuid.New()
	contactID := uuid.New()

	ownership.On("FindByUserAndGoal", mock.Anything, ownerID, goalID).
		Return(&model.UserGoal{UserID: ownerID, GoalID: goalID, Role: model.RoleMain}, nil)
	contacts.On("AreContacts", mock.Anything, ownerID, contactID).Return(false, nil)

	err := engine.AuthorizeShare(context.Background(), ownerID, goalID, contactID)

	assert.ErrorIs(t, err, access.ErrNotContact)
}

func TestCanModerateComment_Author(t *testing.T) {
	engine, _, _, _, _ := setupEngine()
	authorID := uuid.New()
	comment := &model.GoalComment{AuthorID: authorID, GoalID: uuid.New()}

	canModerate, err := engine.CanModerateComment(context.Background(), authorID, comment)

	assert.NoError(t, err)
	assert.True(t, canModerate)
}

func TestCanModerateComment_GoalOwner(t *testing.T) {
	// The main-goal owner may delete comments others left on their goal
	engine, ownership, _, _, _ := setupEngine()
	ownerID := uuid.New()
	goalID := uuid.New()
	comment := &model.GoalComment{AuthorID: uuid.New(), GoalID: goalID}

	ownership.On("FindByUserAndGoal", mock.Anything, ownerID, goalID).
		Return(&model.UserGoal{UserID: ownerID, GoalID: goalID, Role: model.RoleMain}, nil)

	canModerate, err := engine.CanModerateComment(context.Background(), ownerID, comment)

	assert.NoError(t, err)
	assert.True(t, canModerate)
}

func TestCanModerateComment_StepGoalOwner(t *testing.T) {
	// Comments on a step goal are moderated by the tree owner, whose
	// ownership record on the step carries the step role
	engine, ownership, _, _, _ := setupEngine()
	ownerID := uuid.New()
	stepID := uuid.New()
	comment := &model.GoalComment{AuthorID: uuid.New(), GoalID: stepID}

	ownership.On("FindByUserAndGoal", mock.Anything, ownerID, stepID).
		Return(&model.UserGoal{UserID: ownerID, GoalID: stepID, Role: model.RoleStep}, nil)

	canModerate, err := engine.CanModerateComment(context.Background(), ownerID, comment)

	assert.NoError(t, err)
	assert.True(t, canModerate)
}

func TestCanModerateComment_Stranger(t *testing.T) {
	engine, ownership, _, _, _ := setupEngine()
	userID := uuid.New()
	goalID := uuid.New()
	comment := &model.GoalComment{AuthorID: uuid.New(), GoalID: goalID}

	ownership.On("FindByUserAndGoal", mock.Anything, userID, goalID).Return(nil, nil)

	canModerate, err := engine.CanModerateComment(context.Background(), userID, comment)

	assert.NoError(t, err)
	assert.False(t, canModerate)
}
