package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	apperrors "github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

func defaultAdmin(t *testing.T) user.AdminIdentity {
	t.Helper()
	admin, err := user.NewAdminIdentity(user.DefaultAdminAccessCode, user.DefaultAdminDisplayName)
	require.NoError(t, err)
	return admin
}

func adminRow() *user.User {
	return mustUser(1, user.DefaultAdminDisplayName, user.DefaultAdminAccessCode, authorization.RoleAdmin)
}

func TestResolveLoginUseCase_Execute(t *testing.T) {
	ana := mustUser(2, "Ana", "1234", authorization.RoleUser)
	repo := newMockUserRepository(adminRow(), ana)
	uc := NewResolveLoginUseCase(repo, defaultAdmin(t), &mockLogger{})

	tests := []struct {
		name   string
		cmd    ResolveLoginCommand
		wantID uint
	}{
		{name: "regular user", cmd: ResolveLoginCommand{DisplayName: "Ana", AccessCode: "1234"}, wantID: 2},
		{name: "admin exact", cmd: ResolveLoginCommand{DisplayName: "ADMINISTRADOR", AccessCode: "9898"}, wantID: 1},
		{name: "admin any case", cmd: ResolveLoginCommand{DisplayName: "administrador", AccessCode: "9898"}, wantID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, result.User.ID())
		})
	}
}

func TestResolveLoginUseCase_Execute_InvalidCredentials(t *testing.T) {
	ana := mustUser(2, "Ana", "1234", authorization.RoleUser)
	repo := newMockUserRepository(adminRow(), ana)
	uc := NewResolveLoginUseCase(repo, defaultAdmin(t), &mockLogger{})

	tests := []struct {
		name string
		cmd  ResolveLoginCommand
	}{
		{name: "user name is case sensitive", cmd: ResolveLoginCommand{DisplayName: "ana", AccessCode: "1234"}},
		{name: "unknown code", cmd: ResolveLoginCommand{DisplayName: "Ana", AccessCode: "4321"}},
		{name: "malformed code", cmd: ResolveLoginCommand{DisplayName: "Ana", AccessCode: "12a4"}},
		{name: "wrong admin name", cmd: ResolveLoginCommand{DisplayName: "Ana", AccessCode: "9898"}},
		{name: "blank name", cmd: ResolveLoginCommand{DisplayName: "", AccessCode: "1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidCredentials))
		})
	}
}

func TestResolveLoginUseCase_Execute_AdminRowMissing(t *testing.T) {
	var logged bool
	uc := NewResolveLoginUseCase(newMockUserRepository(), defaultAdmin(t), &mockLogger{
		ErrorwFunc: func(msg string, keysAndValues ...interface{}) { logged = true },
	})

	_, err := uc.Execute(context.Background(), ResolveLoginCommand{DisplayName: "ADMINISTRADOR", AccessCode: "9898"})
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidCredentials))
	assert.True(t, logged)
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(adminRow())
	uc := NewCreateUserUseCase(repo, defaultAdmin(t), &mockLogger{})

	created, err := uc.Execute(context.Background(), CreateUserCommand{Actor: adminActor, DisplayName: " Ana ", AccessCode: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.DisplayName)
	assert.Equal(t, "1234", created.AccessCode)
	assert.Equal(t, "user", created.Role)
	assert.NotZero(t, created.ID)
}

func TestCreateUserUseCase_Execute_Rejections(t *testing.T) {
	existing := mustUser(2, "Ana", "1234", authorization.RoleUser)

	tests := []struct {
		name   string
		cmd    CreateUserCommand
		reason apperrors.Reason
	}{
		{name: "non admin", cmd: CreateUserCommand{Actor: userActor, DisplayName: "Bo", AccessCode: "5555"}, reason: apperrors.ReasonForbidden},
		{name: "blank name", cmd: CreateUserCommand{Actor: adminActor, DisplayName: "  ", AccessCode: "5555"}, reason: apperrors.ReasonMissingName},
		{name: "short code", cmd: CreateUserCommand{Actor: adminActor, DisplayName: "Bo", AccessCode: "555"}, reason: apperrors.ReasonInvalidAccessCode},
		{name: "letters in code", cmd: CreateUserCommand{Actor: adminActor, DisplayName: "Bo", AccessCode: "55a5"}, reason: apperrors.ReasonInvalidAccessCode},
		{name: "reserved code", cmd: CreateUserCommand{Actor: adminActor, DisplayName: "Bo", AccessCode: "9898"}, reason: apperrors.ReasonDuplicateAccessCode},
		{name: "taken code", cmd: CreateUserCommand{Actor: adminActor, DisplayName: "Bo", AccessCode: "1234"}, reason: apperrors.ReasonDuplicateAccessCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No admin row: the reserved code must still be refused.
			repo := newMockUserRepository(existing)
			uc := NewCreateUserUseCase(repo, defaultAdmin(t), &mockLogger{})

			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, apperrors.HasReason(err, tt.reason), "got %v", err)
			assert.Len(t, repo.users, 1)
		})
	}
}

func TestListUsersUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository(adminRow(), mustUser(2, "Ana", "1234", authorization.RoleUser))
	uc := NewListUsersUseCase(repo, &mockLogger{})

	all, err := uc.Execute(context.Background(), ListUsersQuery{Actor: adminActor})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
	assert.Equal(t, 1, all.Page)
	assert.Equal(t, 20, all.PageSize)

	users, err := uc.Execute(context.Background(), ListUsersQuery{Actor: adminActor, Role: "user"})
	require.NoError(t, err)
	require.Len(t, users.Users, 1)
	assert.Equal(t, "Ana", users.Users[0].DisplayName)

	_, err = uc.Execute(context.Background(), ListUsersQuery{Actor: adminActor, Role: "owner"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListUsersQuery{Actor: userActor})
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestGetUserUseCase_Execute(t *testing.T) {
	uc := NewGetUserUseCase(newMockUserRepository(adminRow()), &mockLogger{})

	found, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", found.Role)

	_, err = uc.Execute(context.Background(), 99)
	assert.True(t, apperrors.IsNotFoundError(err))
}

type cascadeFixture struct {
	log     *cascadeLog
	users   *mockUserRepository
	tickets *mockTicketRepository
	photos  *mockPhotoRemover
	cache   *mockUnreadCache
	tx      *mockTransactor
	uc      *DeleteUserUseCase
}

func newCascadeFixture() *cascadeFixture {
	f := &cascadeFixture{
		log:    &cascadeLog{},
		users:  newMockUserRepository(adminRow(), mustUser(2, "Ana", "1234", authorization.RoleUser)),
		photos: &mockPhotoRemover{},
		cache:  &mockUnreadCache{},
		tx:     &mockTransactor{},
	}
	f.tickets = &mockTicketRepository{log: f.log, photoKeys: []string{"tickets/a.jpg", "tickets/b.jpg"}}
	f.uc = NewDeleteUserUseCase(
		f.users,
		f.tickets,
		&mockCommentRepository{log: f.log},
		&mockNotificationRepository{log: f.log},
		f.photos,
		f.cache,
		f.tx,
		&mockLogger{},
	)
	return f
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	f := newCascadeFixture()

	result, err := f.uc.Execute(context.Background(), DeleteUserCommand{Actor: adminActor, UserID: 2})
	require.NoError(t, err)

	assert.True(t, result.Deleted)
	assert.Equal(t, int64(2), result.TicketsDeleted)
	assert.Equal(t, int64(4), result.CommentsDeleted)
	assert.Equal(t, int64(4), result.NotificationsDeleted)
	assert.Equal(t, []string{
		"delete_comments_on_tickets",
		"delete_authored_comments",
		"delete_notifications",
		"list_photos",
		"delete_tickets",
	}, f.log.steps)
	assert.Equal(t, []uint{2}, f.users.deleted)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"tickets/a.jpg", "tickets/b.jpg"}, f.photos.deleted)
	assert.Equal(t, []uint{2}, f.cache.invalidated)
}

func TestDeleteUserUseCase_Execute_PhotoFailureIgnored(t *testing.T) {
	f := newCascadeFixture()
	f.photos.DeleteErr = stderrors.New("disk gone")

	result, err := f.uc.Execute(context.Background(), DeleteUserCommand{Actor: adminActor, UserID: 2})
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Len(t, f.photos.deleted, 2)
}

func TestDeleteUserUseCase_Execute_TransactionFailure(t *testing.T) {
	f := newCascadeFixture()
	f.tickets.DeleteErr = stderrors.New("locked")

	_, err := f.uc.Execute(context.Background(), DeleteUserCommand{Actor: adminActor, UserID: 2})
	require.Error(t, err)
	assert.Empty(t, f.users.deleted)
	assert.Empty(t, f.photos.deleted)
	assert.Empty(t, f.cache.invalidated)
}

func TestDeleteUserUseCase_Execute_Guards(t *testing.T) {
	f := newCascadeFixture()

	_, err := f.uc.Execute(context.Background(), DeleteUserCommand{Actor: userActor, UserID: 2})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = f.uc.Execute(context.Background(), DeleteUserCommand{Actor: adminActor, UserID: 99})
	assert.True(t, apperrors.IsNotFoundError(err))

	result, err := f.uc.Execute(context.Background(), DeleteUserCommand{Actor: adminActor, UserID: 1})
	require.NoError(t, err)
	assert.False(t, result.Deleted)
	assert.Empty(t, f.log.steps)
	assert.Zero(t, f.tx.calls)
}

func TestBootstrapAdminUseCase_Execute(t *testing.T) {
	repo := newMockUserRepository()
	uc := NewBootstrapAdminUseCase(repo, defaultAdmin(t), &mockLogger{})

	created, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.users, 1)

	admin, err := repo.GetByAccessCode(context.Background(), "9898")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
}

func TestBootstrapAdminUseCase_Execute_CodeHeldByUser(t *testing.T) {
	repo := newMockUserRepository(mustUser(2, "Ana", "9898", authorization.RoleUser))
	uc := NewBootstrapAdminUseCase(repo, defaultAdmin(t), &mockLogger{})

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
