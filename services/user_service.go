package services

import (
	"context"
	"errors"
	"time"

	"PortfolioAPI/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUserNotFound is returned by lookups that matched no user.
var ErrUserNotFound = errors.New("user not found")

// UserStore is everything the controllers and middleware need from the user
// collection. Credential writes are separated from content writes so a save
// of profile/stack/projects can never clobber the password hash.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetOTP(ctx context.Context, otp int, now time.Time) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	SetResetOTP(ctx context.Context, id primitive.ObjectID, otp int, expiry time.Time) error
}

// UserService is the Mongo-backed UserStore.
type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// defaultProjection hides credential fields from reads that don't need them,
// mirroring the "password is never selected unless asked for" contract.
var defaultProjection = bson.M{
	"password":               0,
	"resetPasswordOtp":       0,
	"resetPasswordOtpExpiry": 0,
}

func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (s *UserService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(defaultProjection))
}

// FindByEmail includes the password hash; it backs login and the
// forgot-password lookup, both of which need credentials.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// FindByResetOTP matches a user whose stored code equals otp and whose expiry
// is still in the future.
func (s *UserService) FindByResetOTP(ctx context.Context, otp int, now time.Time) (*models.User, error) {
	filter := bson.M{
		"resetPasswordOtp":       otp,
		"resetPasswordOtpExpiry": bson.M{"$gt": now},
	}
	return s.findOne(ctx, filter)
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{}, options.Find().SetProjection(defaultProjection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser persists the content fields of user. The password and reset
// code are deliberately not part of this write.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{
		"name":      user.Name,
		"email":     user.Email,
		"avatar":    user.Avatar,
		"techStack": user.TechStack,
		"aboutMe":   user.AboutMe,
		"projects":  user.Projects,
	}}
	res, err := s.users.UpdateByID(ctx, user.ID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdatePassword stores a new hash and clears any outstanding reset code, so
// a consumed OTP can never be replayed.
func (s *UserService) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	update := bson.M{
		"$set":   bson.M{"password": hash},
		"$unset": bson.M{"resetPasswordOtp": "", "resetPasswordOtpExpiry": ""},
	}
	res, err := s.users.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) SetResetOTP(ctx context.Context, id primitive.ObjectID, otp int, expiry time.Time) error {
	update := bson.M{"$set": bson.M{
		"resetPasswordOtp":       otp,
		"resetPasswordOtpExpiry": expiry,
	}}
	res, err := s.users.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, filter, opts...).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
