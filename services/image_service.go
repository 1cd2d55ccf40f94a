package services

import (
	"context"

	"PortfolioAPI/config/environment"
	"PortfolioAPI/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore is the external image-hosting collaborator: upload a blob into
// a folder, get back a reference, destroy a reference when it is discarded.
type ImageStore interface {
	Upload(ctx context.Context, file string, folder string) (models.Image, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryService is the Cloudinary-backed ImageStore. Uploads accept the
// same base64 data-URI strings the API receives from clients.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cfg *environment.Config) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

func (s *CloudinaryService) Upload(ctx context.Context, file string, folder string) (models.Image, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return models.Image{}, err
	}
	return models.Image{PublicID: res.PublicID, URL: res.SecureURL}, nil
}

func (s *CloudinaryService) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
