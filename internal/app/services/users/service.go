// Package usersvc implements account operations on top of the users collection.
package usersvc

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/normalize"
	"github.com/dalemusser/weatherhub/internal/app/system/paging"
	"github.com/dalemusser/weatherhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// DefaultHashCost is the bcrypt cost used for stored passwords.
const DefaultHashCost = 12

// CreateInput is a validated create request.
type CreateInput struct {
	Username string
	Email    string
	Password string
}

// UpdateInput carries the updatable fields. Nil means "leave unchanged".
type UpdateInput struct {
	Email    *string
	Password *string
}

type Service struct {
	store docstore.Store[models.User]
	log   *zap.Logger

	// Now and HashCost are replaceable in tests.
	Now      func() time.Time
	HashCost int
}

func New(store docstore.Store[models.User], log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		log:      log,
		Now:      time.Now,
		HashCost: DefaultHashCost,
	}
}

func (s *Service) nowMillis() int64 { return s.Now().UnixMilli() }

func (s *Service) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.HashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Create stores a new user. created_at and updated_at are both set to now.
// Returns docstore.ErrConstraintViolation when the username or email is taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.User, error) {
	hashed, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.nowMillis()
	u := models.User{
		Username:  normalize.Name(in.Username),
		Email:     normalize.Email(in.Email),
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.store.Insert(ctx, &u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	u.ID = id

	s.log.Info("user created", zap.String("user_id", id.Hex()))
	return &u, nil
}

// Update changes email and/or password and refreshes updated_at.
// Returns (nil, nil) when no user has id.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.User, error) {
	set := bson.M{"updated_at": s.nowMillis()}
	if in.Email != nil {
		set["email"] = normalize.Email(*in.Email)
	}
	if in.Password != nil {
		hashed, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		set["password"] = hashed
	}

	u, err := s.store.UpdateByID(ctx, id, set)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id.Hex(), err)
	}
	return u, nil
}

// GetAll returns one page of users, newest first.
func (s *Service) GetAll(ctx context.Context, p paging.Params) (paging.Page[models.User], error) {
	var (
		rows  []models.User
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.store.FindPage(gctx, bson.M{}, "created_at", -1, p.Skip(), int64(p.Limit))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, bson.M{})
		return err
	})
	if err := g.Wait(); err != nil {
		return paging.Page[models.User]{}, fmt.Errorf("list users: %w", err)
	}

	return paging.NewPage(rows, total, p), nil
}

// GetByID returns the user or (nil, nil) when absent.
func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id.Hex(), err)
	}
	return u, nil
}

// Delete removes the user. Deleting a missing user succeeds.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id.Hex(), err)
	}
	return nil
}
