package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// BcryptCost is the work factor applied whenever a password is (re)hashed.
const BcryptCost = 12

// Image is a reference to a blob held by the image-hosting service.
// Whoever holds the reference must destroy the blob before discarding it.
type Image struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

type AboutMe struct {
	Heading     string `bson:"heading,omitempty" json:"heading,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Project lives only inside its owning User document. It has no independent
// lifecycle: mutations load the parent, edit the array and persist the parent.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Github      string             `bson:"github" json:"github"`
	ProjectLink string             `bson:"projectLink" json:"projectLink"`
	Image       *Image             `bson:"image,omitempty" json:"image,omitempty"`
	Stack       []string           `bson:"stack" json:"stack"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"` // Exclude password from JSON responses for security
	Role      string             `bson:"role" json:"role"`
	Avatar    Image              `bson:"avatar" json:"avatar"`
	TechStack []Image            `bson:"techStack" json:"techStack"`
	AboutMe   *AboutMe           `bson:"aboutMe,omitempty" json:"aboutMe,omitempty"`
	Projects  []Project          `bson:"projects" json:"projects"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`

	ResetPasswordOTP       *int       `bson:"resetPasswordOtp,omitempty" json:"-"`
	ResetPasswordOTPExpiry *time.Time `bson:"resetPasswordOtpExpiry,omitempty" json:"-"`
}

// SetPassword replaces the in-memory hash with a bcrypt digest of plain.
// The hash is persisted only through UserStore.UpdatePassword, never through
// a content save, so an unchanged password is never re-hashed.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
