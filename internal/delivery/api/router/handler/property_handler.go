package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/response"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imagesFormField = "images"

type PropertyHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	NearbyUC  usecase.NearbyUsecase
	Logger    *slog.Logger
}

// PropertyHandler serves listing CRUD and the radius search.
type PropertyHandler struct {
	listingUC usecase.ListingUsecase
	nearbyUC  usecase.NearbyUsecase
	logger    *slog.Logger
}

func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		listingUC: params.ListingUC,
		nearbyUC:  params.NearbyUC,
		logger:    params.Logger,
	}
}

type LocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// CreatePropertyRequest carries a new listing. Conditional field rules are
// enforced by the listing usecase so every client gets the same details.
type CreatePropertyRequest struct {
	Address         entity.Address            `json:"address"`
	Location        *LocationRequest          `json:"location"`
	Price           float64                   `json:"price"`
	Description     string                    `json:"description" validate:"max=5000"`
	Purpose         entity.Purpose            `json:"purpose"`
	PropertyType    entity.PropertyType       `json:"propertyType"`
	ResidentialType entity.ResidentialType    `json:"residentialType"`
	CommercialType  entity.CommercialType     `json:"commercialType"`
	Residential     entity.ResidentialDetails `json:"residential"`
	Rental          entity.RentalDetails      `json:"rental"`
	Images          []string                  `json:"images" validate:"max=10,dive,url"`
}

// UpdatePropertyRequest lists the only fields an owner may change. Anything
// else in the body is ignored.
type UpdatePropertyRequest struct {
	Price       *float64                   `json:"price" validate:"omitempty,gt=0"`
	Description *string                    `json:"description" validate:"omitempty,max=5000"`
	Residential *entity.ResidentialDetails `json:"residential"`
	Rental      *entity.RentalDetails      `json:"rental"`
	Images      *[]string                  `json:"images"`
}

func (r *CreatePropertyRequest) toInput() *usecase.ListingInput {
	input := &usecase.ListingInput{
		Address:         r.Address,
		Price:           r.Price,
		Description:     r.Description,
		Purpose:         r.Purpose,
		PropertyType:    r.PropertyType,
		ResidentialType: r.ResidentialType,
		CommercialType:  r.CommercialType,
		Residential:     r.Residential,
		Rental:          r.Rental,
		Images:          r.Images,
	}
	if r.Location != nil {
		input.Location = &entity.GeoPoint{Latitude: r.Location.Lat, Longitude: r.Location.Lng}
	}

	return input
}

func (h *PropertyHandler) Create(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreatePropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, "property created", listing)
}

// Nearby answers GET /property/nearby?lat&lng&distance&location.
func (h *PropertyHandler) Nearby(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	query := usecase.NearbyQuery{Location: c.QueryParam("location")}
	var lat, lng float64
	binder := echo.QueryParamsBinder(c).Float64("distance", &query.RadiusKm)
	if c.QueryParam("lat") != "" {
		binder = binder.Float64("lat", &lat)
		query.Latitude = &lat
	}
	if c.QueryParam("lng") != "" {
		binder = binder.Float64("lng", &lng)
		query.Longitude = &lng
	}
	if err := binder.BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("lat, lng and distance must be numbers"))
	}

	result, err := h.nearbyUC.LocateNearby(c.Request().Context(), principal, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "nearby properties fetched", result)
}

// List answers GET /property/all with optional purpose, propertyType, city,
// includeSold, limit and offset filters.
func (h *PropertyHandler) List(c echo.Context) error {
	var (
		purpose, propertyType string
		filter                entity.ListingFilter
	)
	err := echo.QueryParamsBinder(c).
		String("purpose", &purpose).
		String("propertyType", &propertyType).
		String("city", &filter.City).
		Bool("includeSold", &filter.IncludeSold).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid query parameters"))
	}
	filter.Purpose = entity.Purpose(purpose)
	filter.PropertyType = entity.PropertyType(propertyType)

	listings, err := h.listingUC.ListListings(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "properties fetched", listings)
}

func (h *PropertyHandler) ListSold(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listings, err := h.listingUC.ListSold(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "sold properties fetched", listings)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "property fetched", listing)
}

// QRCode returns a PNG that links to the listing's share page.
func (h *PropertyHandler) QRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.listingUC.ShareQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), principal, id, &usecase.ListingUpdate{
		Price:       req.Price,
		Description: req.Description,
		Residential: req.Residential,
		Rental:      req.Rental,
		Images:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "property updated", listing)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "property deleted", nil)
}

func (h *PropertyHandler) ToggleSold(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.ToggleSold(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "property marked as available"
	if listing.IsSold {
		message = "property marked as sold"
	}

	return response.OK(c, message, listing)
}

func (h *PropertyHandler) RecordVisit(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.RecordVisit(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "visit recorded", listing)
}

// UploadImages accepts multipart files under the "images" field.
func (h *PropertyHandler) UploadImages(c echo.Context) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("expected multipart form data"))
	}

	headers := form.File[imagesFormField]
	files := make([]usecase.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll(files)

			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unreadable file "+fh.Filename))
		}
		files = append(files, usecase.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Body:        f,
		})
	}
	defer closeAll(files)

	listing, err := h.listingUC.UploadImages(c.Request().Context(), principal, id, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, "images uploaded", listing)
}

func closeAll(files []usecase.ImageUpload) {
	for _, f := range files {
		if closer, ok := f.Body.(multipart.File); ok {
			_ = closer.Close()
		}
	}
}
