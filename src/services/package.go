package services

import (
	"context"
	"log"
	"studio/src/models"
	"studio/src/store"
	"studio/src/types"

	"github.com/gosimple/slug"
)

const resourcePackage = "Package"

// ImageStore owns uploaded package images.
type ImageStore interface {
	Delete(ctx context.Context, url string) error
}

type NopImageStore struct{}

func (NopImageStore) Delete(_ context.Context, url string) error {
	log.Printf("No image store configured; leaving %s in place\n", url)
	return nil
}

type PackageService struct {
	repo   store.PackageRepository
	images ImageStore
}

func NewPackageService(repo store.PackageRepository, images ImageStore) *PackageService {
	if images == nil {
		images = NopImageStore{}
	}
	return &PackageService{repo: repo, images: images}
}

func validatePackage(body types.PackageRequestBody) error {
	switch {
	case body.Name == "":
		return &types.ValidationError{Msg: "Package name is required"}
	case body.Duration <= 0:
		return &types.ValidationError{Msg: "Duration must be greater than zero"}
	case body.Price < 0:
		return &types.ValidationError{Msg: "Price must not be negative"}
	}
	return nil
}

func imageURL(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func (s *PackageService) removeImage(ctx context.Context, url string) {
	if err := s.images.Delete(ctx, url); err != nil {
		log.Printf("Error deleting package image %s: %s\n", url, err.Error())
	}
}

func (s *PackageService) List(ctx context.Context, activeOnly bool) ([]models.Package, error) {
	packages, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, storeError(err, resourcePackage, "list packages")
	}
	return packages, nil
}

func (s *PackageService) Get(ctx context.Context, id string) (*models.Package, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, resourcePackage, "get package")
	}
	return p, nil
}

func (s *PackageService) Create(ctx context.Context, body types.PackageRequestBody, createdBy string) (*models.Package, error) {
	if err := validatePackage(body); err != nil {
		return nil, err
	}
	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	p := &models.Package{
		Name:        body.Name,
		Slug:        slug.Make(body.Name),
		Description: body.Description,
		Image:       imageURL(body.Image),
		Price:       body.Price,
		Duration:    body.Duration,
		IsActive:    isActive,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, storeError(err, resourcePackage, "create package")
	}
	return p, nil
}

// Update replaces the package fields. An omitted image keeps the current
// one; a different or empty image removes the old file from the image store.
func (s *PackageService) Update(ctx context.Context, id string, body types.PackageRequestBody) (*models.Package, error) {
	if err := validatePackage(body); err != nil {
		return nil, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, resourcePackage, "get package")
	}

	image := current.Image
	if body.Image != nil {
		image = imageURL(body.Image)
		if current.Image != nil && (image == nil || *image != *current.Image) {
			s.removeImage(ctx, *current.Image)
		}
	}
	isActive := current.IsActive
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	p := &models.Package{
		ID:          id,
		Name:        body.Name,
		Slug:        slug.Make(body.Name),
		Description: body.Description,
		Image:       image,
		Price:       body.Price,
		Duration:    body.Duration,
		IsActive:    isActive,
		CreatedBy:   current.CreatedBy,
		Timestamps:  current.Timestamps,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, storeError(err, resourcePackage, "update package")
	}
	return s.Get(ctx, id)
}

// Delete removes the package and asks the image store to drop its image.
// Image removal is best effort.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return storeError(err, resourcePackage, "get package")
	}
	if current.Image != nil {
		s.removeImage(ctx, *current.Image)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, resourcePackage, "delete package")
	}
	return nil
}
