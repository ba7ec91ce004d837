package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	auth      usecase.AuthUsecase
	catalog   service.CatalogAPI
	admin     service.AdminAPI
	confirmer service.Confirmer
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Auth      usecase.AuthUsecase
	Catalog   service.CatalogAPI
	Admin     service.AdminAPI
	Confirmer service.Confirmer
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		auth:      params.Auth,
		catalog:   params.Catalog,
		admin:     params.Admin,
		confirmer: params.Confirmer,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) requireAdmin(ctx context.Context) error {
	_, err := srv.auth.Authorize(ctx, entity.RoleAdmin)

	return err
}

func (srv *adminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return nil, err
	}

	return srv.catalog.ListProducts(ctx, entity.ProductFilter{})
}

func (srv *adminService) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return "", err
	}
	if content == nil || strings.TrimSpace(filename) == "" {
		return "", domainerrors.NewValidationError("image is required")
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(filename))] {
		return "", domainerrors.NewValidationError("unsupported image type %q", filepath.Ext(filename))
	}

	imageURL, err := srv.admin.UploadImage(ctx, filepath.Base(filename), content)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Image uploaded", slog.String("image_url", imageURL))

	return imageURL, nil
}

func (srv *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return nil, err
	}

	draft, err := toProductDraft(input)
	if err != nil {
		return nil, err
	}

	product, err := srv.admin.CreateProduct(ctx, draft)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID), slog.String("title", product.Title))

	return product, nil
}

func (srv *adminService) UpdateProduct(ctx context.Context, id string, input usecase.ProductInput) (*entity.Product, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.NewValidationError("product id is required")
	}

	draft, err := toProductDraft(input)
	if err != nil {
		return nil, err
	}

	product, err := srv.admin.UpdateProduct(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated", slog.String("product_id", id))

	return product, nil
}

func (srv *adminService) DeleteProduct(ctx context.Context, id string, confirm bool) (bool, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return false, err
	}
	if strings.TrimSpace(id) == "" {
		return false, domainerrors.NewValidationError("product id is required")
	}

	if confirm {
		ok, err := srv.confirmer.Confirm(ctx, usecase.DeletePrompt)
		if err != nil {
			return false, errors.Wrap(err, "delete confirmation failed")
		}
		if !ok {
			return false, nil
		}
	}

	if err := srv.admin.DeleteProduct(ctx, id); err != nil {
		return false, err
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id))

	return true, nil
}

// toProductDraft validates the form and parses the price. The image must
// already be uploaded.
func toProductDraft(input usecase.ProductInput) (*entity.ProductDraft, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Price = strings.TrimSpace(input.Price)
	input.ImageURL = strings.TrimSpace(input.ImageURL)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, domainerrors.NewValidationError("price must be a number")
	}
	if price.IsNegative() {
		return nil, domainerrors.NewValidationError("price must not be negative")
	}

	return &entity.ProductDraft{
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		Price:       price,
		Category:    strings.TrimSpace(input.Category),
		ImageURL:    input.ImageURL,
	}, nil
}
