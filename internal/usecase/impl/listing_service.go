package impl

import (
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	listingFeedTTL    = 5 * time.Minute
	maxImagesPerBatch = 10
)

type listingService struct {
	txManager    repository.TransactionManager
	listingRepo  repository.ListingRepository
	userRepo     repository.UserRepository
	assigner     usecase.IdentityAssigner
	geocoder     service.Geocoder
	publisher    service.EventPublisher
	cache        service.QueryCache
	images       service.ImageStore
	qrCodes      service.QRCodeService
	countryCode  string
	shareBaseURL string
	now          func() time.Time
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	UserRepo    repository.UserRepository
	Assigner    usecase.IdentityAssigner
	Geocoder    service.Geocoder
	Publisher   service.EventPublisher
	Cache       service.QueryCache `optional:"true"`
	Images      service.ImageStore
	QRCodes     service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	srv := &listingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		userRepo:    params.UserRepo,
		assigner:    params.Assigner,
		geocoder:    params.Geocoder,
		publisher:   params.Publisher,
		cache:       params.Cache,
		images:      params.Images,
		qrCodes:     params.QRCodes,
		now:         time.Now,
		logger:      params.Logger,
	}
	if params.Config.Geocoding != nil {
		srv.countryCode = params.Config.Geocoding.CountryCode
	}
	if params.Config.Listing != nil {
		srv.shareBaseURL = strings.TrimRight(params.Config.Listing.ShareBaseURL, "/")
	}

	return srv
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing validates, geocodes, then assigns the custom id and persists
// the listing in one transaction.
func (srv *listingService) CreateListing(ctx context.Context, poster entity.Principal, input *usecase.ListingInput) (*entity.Listing, error) {
	if poster.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}

	listing := &entity.Listing{
		Address:         input.Address,
		Price:           input.Price,
		Description:     strings.TrimSpace(input.Description),
		Purpose:         input.Purpose,
		PropertyType:    input.PropertyType,
		ResidentialType: input.ResidentialType,
		CommercialType:  input.CommercialType,
		Residential:     input.Residential,
		Rental:          input.Rental,
		Images:          input.Images,
		VisitedBy:       []entity.Visit{},
	}
	if listing.Images == nil {
		listing.Images = []string{}
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if err := validateListing(listing); err != nil {
		return nil, err
	}
	if input.Location == nil {
		listing.Location = srv.geocodeAddress(ctx, listing.Address)
	}
	listing.SetOwner(poster)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		assignment, err := srv.assigner.Assign(ctx, repos, poster)
		if err != nil {
			return err
		}
		listing.CustomID = assignment.CustomID

		if err := repos.NewListingRepository().CreateListing(ctx, listing); err != nil {
			if errors.Is(err, repository.ErrDuplicateCustomID) {
				return errors.Wrap(domainerrors.ErrConflict, listing.CustomID)
			}

			return errors.Wrap(err, "failed to create listing")
		}

		if poster.IsUser() {
			return errors.Wrap(repos.NewUserRepository().IncrementListingCount(ctx, poster.ID), "failed to bump listing count")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("listing created",
		slog.String("listing_id", listing.ID.String()),
		slog.String("custom_id", listing.CustomID),
		slog.String("poster_kind", poster.Kind.String()),
	)
	srv.invalidateFeed(ctx)
	srv.publish(ctx, entity.ListingEventCreated, listing, poster)

	return listing, nil
}

// geocodeAddress never blocks creation; an unresolvable address stores (0,0).
func (srv *listingService) geocodeAddress(ctx context.Context, address entity.Address) entity.GeoPoint {
	results, err := srv.geocoder.Forward(ctx, address.GeocodeQuery(), srv.countryCode)
	if err != nil {
		srv.log(ctx).Warn("listing address geocoding failed", slog.Any("error", err))

		return entity.GeoPoint{}
	}
	if len(results) == 0 {
		srv.log(ctx).Warn("listing address not found", slog.String("query", address.GeocodeQuery()))

		return entity.GeoPoint{}
	}

	return results[0].Point
}

func (srv *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		return nil, mapListingErr(err)
	}

	return listing, nil
}

func (srv *listingService) ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	key := service.QueryKey(constants.CachePrefixListingFeed, map[string]string{
		"purpose":      string(filter.Purpose),
		"propertyType": string(filter.PropertyType),
		"city":         strings.ToLower(strings.TrimSpace(filter.City)),
		"includeSold":  strconv.FormatBool(filter.IncludeSold),
		"limit":        strconv.Itoa(filter.Limit),
		"offset":       strconv.Itoa(filter.Offset),
	})

	if srv.cache != nil {
		var cached []*entity.Listing
		hit, err := srv.cache.Get(ctx, key, &cached)
		if err != nil {
			srv.log(ctx).Warn("listing feed cache read failed", slog.Any("error", err))
		}
		if hit {
			return cached, nil
		}
	}

	listings, err := srv.listingRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	if srv.cache != nil {
		if err := srv.cache.Set(ctx, key, listings, listingFeedTTL); err != nil {
			srv.log(ctx).Warn("listing feed cache write failed", slog.Any("error", err))
		}
	}

	return listings, nil
}

// UpdateListing applies only the editable fields and re-validates the result.
func (srv *listingService) UpdateListing(ctx context.Context, caller entity.Principal, id uuid.UUID, update *usecase.ListingUpdate) (*entity.Listing, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}

	var updated *entity.Listing
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		listingRepo := repos.NewListingRepository()

		listing, err := srv.lockManaged(ctx, listingRepo, caller, id)
		if err != nil {
			return err
		}

		if update.Price != nil {
			listing.Price = *update.Price
		}
		if update.Description != nil {
			listing.Description = strings.TrimSpace(*update.Description)
		}
		if update.Residential != nil {
			listing.Residential = *update.Residential
		}
		if update.Rental != nil {
			listing.Rental = *update.Rental
		}
		if update.Images != nil {
			listing.Images = *update.Images
		}
		if err := validateListing(listing); err != nil {
			return err
		}

		if err := listingRepo.UpdateListing(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to update listing")
		}
		updated = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidateFeed(ctx)

	return updated, nil
}

// DeleteListing removes the listing and its marks, and gives the owning user
// back one listing. A dangling owner is logged and otherwise ignored.
func (srv *listingService) DeleteListing(ctx context.Context, caller entity.Principal, id uuid.UUID) error {
	if caller.IsZero() {
		return domainerrors.ErrUnauthorized
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		listingRepo := repos.NewListingRepository()

		listing, err := srv.lockManaged(ctx, listingRepo, caller, id)
		if err != nil {
			return err
		}

		if err := repos.NewMarkRepository().DeleteMarksForListing(ctx, id); err != nil {
			return errors.Wrap(err, "failed to drop listing marks")
		}
		if err := listingRepo.DeleteListing(ctx, id); err != nil {
			return mapListingErr(err)
		}

		if listing.OwnerUserID == nil {
			return nil
		}
		found, err := repos.NewUserRepository().DecrementListingCount(ctx, *listing.OwnerUserID)
		if err != nil {
			return errors.Wrap(err, "failed to decrement listing count")
		}
		if !found {
			srv.log(ctx).Warn("deleted listing has no owning user",
				slog.String("listing_id", id.String()),
				slog.String("owner_user_id", listing.OwnerUserID.String()),
			)
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.invalidateFeed(ctx)

	return nil
}

func (srv *listingService) ToggleSold(ctx context.Context, caller entity.Principal, id uuid.UUID) (*entity.Listing, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}

	var toggled *entity.Listing
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		listingRepo := repos.NewListingRepository()

		listing, err := srv.lockManaged(ctx, listingRepo, caller, id)
		if err != nil {
			return err
		}

		listing.IsSold = !listing.IsSold
		if err := listingRepo.UpdateListing(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to toggle sold")
		}
		toggled = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidateFeed(ctx)
	if toggled.IsSold {
		srv.publish(ctx, entity.ListingEventSold, toggled, caller)
	}

	return toggled, nil
}

func (srv *listingService) ListSold(ctx context.Context, caller entity.Principal) ([]*entity.Listing, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}

	listings, err := srv.listingRepo.FindSoldByOwner(ctx, caller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sold listings")
	}

	return listings, nil
}

// RecordVisit counts every user visit. Admin views are not tracked.
func (srv *listingService) RecordVisit(ctx context.Context, visitor entity.Principal, id uuid.UUID) (*entity.Listing, error) {
	if visitor.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}
	if visitor.IsAdmin() {
		return srv.GetListing(ctx, id)
	}

	var (
		visited  *entity.Listing
		newVisit bool
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		listingRepo := repos.NewListingRepository()

		listing, err := listingRepo.FindListingByIDForUpdate(ctx, id)
		if err != nil {
			return mapListingErr(err)
		}

		newVisit = listing.RecordVisit(visitor.ID, srv.now().UTC())
		if err := listingRepo.UpdateListing(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to record visit")
		}
		visited = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	if newVisit && !visitor.Owns(visited) {
		srv.publish(ctx, entity.ListingEventVisited, visited, visitor)
	}

	return visited, nil
}

// UploadImages stores the files first and only then appends their URLs, so a
// failed upload leaves the listing untouched.
func (srv *listingService) UploadImages(ctx context.Context, caller entity.Principal, id uuid.UUID, files []usecase.ImageUpload) (*entity.Listing, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}
	if len(files) == 0 || len(files) > maxImagesPerBatch {
		return nil, domainerrors.ErrValidationFailed.WithDetails("between 1 and " + strconv.Itoa(maxImagesPerBatch) + " images are required")
	}

	listing, err := srv.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanManage(listing) {
		return nil, domainerrors.ErrForbidden
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		name := listing.CustomID + "-" + uuid.NewString() + strings.ToLower(path.Ext(file.Filename))
		url, err := srv.images.Upload(ctx, name, file.ContentType, file.Body)
		if err != nil {
			srv.log(ctx).Error("image upload failed", slog.String("listing_id", id.String()), slog.Any("error", err))

			return nil, errors.Join(domainerrors.ErrUpstreamUnavailable, err)
		}
		urls = append(urls, url)
	}

	var updated *entity.Listing
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		listingRepo := repos.NewListingRepository()

		listing, err := listingRepo.FindListingByIDForUpdate(ctx, id)
		if err != nil {
			return mapListingErr(err)
		}

		listing.Images = append(listing.Images, urls...)
		if err := listingRepo.UpdateListing(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to attach images")
		}
		updated = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidateFeed(ctx)

	return updated, nil
}

// ShareQRCode renders a PNG pointing at the listing's public page.
func (srv *listingService) ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	listing, err := srv.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.Encode(srv.shareBaseURL + "/property/" + listing.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode share code")
	}

	return png, nil
}

func (srv *listingService) ReconcileListingCounts(ctx context.Context, caller entity.Principal) (int64, error) {
	if caller.IsZero() {
		return 0, domainerrors.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return 0, domainerrors.ErrForbidden
	}

	fixed, err := srv.userRepo.ReconcileListingCounts(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reconcile listing counts")
	}
	srv.log(ctx).Info("listing counts reconciled", slog.Int64("users_corrected", fixed))

	return fixed, nil
}

// lockManaged loads the listing FOR UPDATE and checks the caller may change it.
func (srv *listingService) lockManaged(ctx context.Context, listingRepo repository.ListingRepository, caller entity.Principal, id uuid.UUID) (*entity.Listing, error) {
	listing, err := listingRepo.FindListingByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapListingErr(err)
	}
	if !caller.CanManage(listing) {
		return nil, domainerrors.ErrForbidden
	}

	return listing, nil
}

func (srv *listingService) invalidateFeed(ctx context.Context) {
	if srv.cache == nil {
		return
	}
	if err := srv.cache.InvalidatePrefix(ctx, constants.CachePrefixListingFeed); err != nil {
		srv.log(ctx).Warn("listing feed cache invalidation failed", slog.Any("error", err))
	}
}

// publish is fire and forget; the listing write has already committed.
func (srv *listingService) publish(ctx context.Context, eventType entity.ListingEventType, listing *entity.Listing, actor entity.Principal) {
	event := &entity.ListingEvent{
		Type:        eventType,
		ListingID:   listing.ID,
		CustomID:    listing.CustomID,
		OwnerUserID: listing.OwnerUserID,
		ActorID:     actor.ID,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt:  srv.now().UTC(),
	}
	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("failed to publish listing event",
			slog.String("event_type", string(eventType)),
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err),
		)
	}
}

func mapListingErr(err error) error {
	if errors.Is(err, repository.ErrListingNotFound) {
		return errors.Wrap(domainerrors.ErrListingNotFound, "listing lookup")
	}

	return errors.Wrap(err, "listing store")
}
