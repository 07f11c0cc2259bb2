package usersvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/paging"
	"github.com/dalemusser/weatherhub/internal/domain/models"
	"github.com/dalemusser/weatherhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type clock struct{ ms int64 }

func (c *clock) now() time.Time { return time.UnixMilli(c.ms) }

func newService(t *testing.T) (*Service, *testutil.MemStore[models.User], *clock) {
	t.Helper()
	store := testutil.NewMemStore[models.User]("username", "email")
	svc := New(store, nil)
	svc.HashCost = bcrypt.MinCost
	c := &clock{ms: 1_700_000_000_000}
	svc.Now = c.now
	return svc, store, c
}

func strPtr(s string) *string { return &s }

func TestCreate_StampsAndHashes(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: " alice ", Email: "Alice@Example.com", Password: "s3cret"})
	require.NoError(t, err)

	assert.False(t, u.ID.IsZero())
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, int64(1_700_000_000_000), u.CreatedAt)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	assert.NotEqual(t, "s3cret", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")))
	assert.Equal(t, 1, store.Len())
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Username: "bob", Email: "bob@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Username: "bob", Email: "bob2@example.com", Password: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, docstore.ErrConstraintViolation))
	assert.Equal(t, 1, store.Len())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Username: "c1", Email: "same@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Username: "c2", Email: "SAME@example.com", Password: "x"})
	assert.True(t, errors.Is(err, docstore.ErrConstraintViolation))
}

func TestUpdate_EmailRefreshesUpdatedAt(t *testing.T) {
	svc, _, c := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "dan", Email: "dan@example.com", Password: "old"})
	require.NoError(t, err)

	c.ms += 5000
	got, err := svc.Update(ctx, u.ID, UpdateInput{Email: strPtr("dan@new.example.com")})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "dan@new.example.com", got.Email)
	assert.Equal(t, "dan", got.Username)
	assert.Equal(t, u.CreatedAt, got.CreatedAt)
	assert.Greater(t, got.UpdatedAt, got.CreatedAt)
	assert.Equal(t, u.Password, got.Password, "password untouched")
}

func TestUpdate_PasswordRehashed(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "eve", Email: "eve@example.com", Password: "old"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, u.ID, UpdateInput{Password: strPtr("new")})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("new")))
	assert.Equal(t, "eve@example.com", got.Email)
}

func TestUpdate_Missing(t *testing.T) {
	svc, store, _ := newService(t)

	got, err := svc.Update(context.Background(), primitive.NewObjectID(), UpdateInput{Email: strPtr("x@example.com")})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.Len())
}

func TestUpdate_EmailCollision(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Username: "f1", Email: "taken@example.com", Password: "x"})
	require.NoError(t, err)
	u2, err := svc.Create(ctx, CreateInput{Username: "f2", Email: "free@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, u2.ID, UpdateInput{Email: strPtr("taken@example.com")})
	assert.True(t, errors.Is(err, docstore.ErrConstraintViolation))
}

func TestGetAll_Pagination(t *testing.T) {
	svc, _, c := newService(t)
	ctx := context.Background()

	for _, name := range []string{"u1", "u2", "u3", "u4", "u5"} {
		c.ms++
		_, err := svc.Create(ctx, CreateInput{Username: name, Email: name + "@example.com", Password: "x"})
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantNames []string
		wantPages int64
	}{
		{"first page", 1, 2, []string{"u5", "u4"}, 3},
		{"last partial page", 3, 2, []string{"u1"}, 3},
		{"past the end", 4, 2, []string{}, 3},
		{"everything", 1, 10, []string{"u5", "u4", "u3", "u2", "u1"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetAll(ctx, paging.Params{Page: tt.page, Limit: tt.limit})
			require.NoError(t, err)

			names := make([]string, 0, len(got.Data))
			for _, u := range got.Data {
				names = append(names, u.Username)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, int64(5), got.Total)
			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.limit, got.Limit)
			assert.Equal(t, tt.wantPages, got.TotalPages)
		})
	}
}

func TestGetAll_Empty(t *testing.T) {
	svc, _, _ := newService(t)

	got, err := svc.GetAll(context.Background(), paging.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, got.Data)
	assert.Empty(t, got.Data)
	assert.Equal(t, int64(0), got.Total)
	assert.Equal(t, int64(0), got.TotalPages)
}

func TestGetAll_StoreError(t *testing.T) {
	svc, store, _ := newService(t)
	store.Err = errors.New("boom")

	_, err := svc.GetAll(context.Background(), paging.Params{Page: 1, Limit: 10})
	assert.Error(t, err)
}

func TestGetByIDAndDelete(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{Username: "gil", Email: "gil@example.com", Password: "x"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "gil", got.Username)

	require.NoError(t, svc.Delete(ctx, u.ID))
	require.NoError(t, svc.Delete(ctx, u.ID))

	got, err = svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
