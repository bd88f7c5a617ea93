package member

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"time"

	"gymdesk/internal/email"
	"gymdesk/internal/logger"
	"gymdesk/internal/storage"
)

const photoFolder = "members"

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrPhoneTaken        = errors.New("phone already registered")
	ErrHasFutureBookings = errors.New("member has bookings for upcoming sessions")
	ErrInvalidBirthDate  = errors.New("invalid date of birth")
)

type Service interface {
	Create(ctx context.Context, req CreateMemberRequest, photo *multipart.FileHeader) (*Member, error)
	Update(ctx context.Context, id int, req UpdateMemberRequest, photo *multipart.FileHeader) (*Member, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]Member, error)
	GetDetails(ctx context.Context, id int) (*MemberWithMembership, error)
}

type service struct {
	repo         Repository
	photos       storage.Store
	emailService *email.Service
}

func NewService(repo Repository, photos storage.Store, emailService *email.Service) Service {
	return &service{
		repo:         repo,
		photos:       photos,
		emailService: emailService,
	}
}

func (s *service) Create(ctx context.Context, req CreateMemberRequest, photo *multipart.FileHeader) (*Member, error) {
	emailTaken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, ErrEmailTaken
	}

	phoneTaken, err := s.repo.PhoneExists(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if phoneTaken {
		return nil, ErrPhoneTaken
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	var photoName string
	if photo != nil {
		photoName, err = s.photos.Upload(photoFolder, photo)
		if err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, &Member{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    dob,
		Gender:         req.Gender,
		Street:         req.Street,
		City:           req.City,
		BuildingNumber: req.BuildingNumber,
		Photo:          photoName,
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		BloodType:      req.BloodType,
		HealthNote:     req.HealthNote,
	})
	if err != nil {
		// Do not leave an orphaned photo behind a failed insert.
		if photoName != "" {
			if delErr := s.photos.Delete(photoFolder, photoName); delErr != nil {
				logger.Errorf("Failed to remove photo %s after insert failure: %v", photoName, delErr)
			}
		}
		return nil, err
	}

	if err := s.emailService.SendWelcome(ctx, created.Email, created.Name); err != nil {
		logger.Errorf("Failed to queue welcome email for member %d: %v", created.ID, err)
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateMemberRequest, photo *multipart.FileHeader) (*Member, error) {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != existing.Phone {
		phoneTaken, err := s.repo.PhoneExists(ctx, req.Phone)
		if err != nil {
			return nil, err
		}
		if phoneTaken {
			return nil, ErrPhoneTaken
		}
	}

	oldPhoto := existing.Photo
	if photo != nil {
		newPhoto, err := s.photos.Upload(photoFolder, photo)
		if err != nil {
			return nil, err
		}
		existing.Photo = newPhoto
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Street = req.Street
	existing.City = req.City
	existing.BuildingNumber = req.BuildingNumber
	existing.HeightCm = req.HeightCm
	existing.WeightKg = req.WeightKg
	existing.BloodType = req.BloodType
	existing.HealthNote = req.HealthNote

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if photo != nil && oldPhoto != "" && oldPhoto != existing.Photo {
		if err := s.photos.Delete(photoFolder, oldPhoto); err != nil {
			logger.Errorf("Failed to remove replaced photo %s: %v", oldPhoto, err)
		}
	}

	return existing, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	existing, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}

	hasFuture, err := s.repo.HasFutureSessionBookings(ctx, id)
	if err != nil {
		return err
	}
	if hasFuture {
		return ErrHasFutureBookings
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Photo != "" {
		if err := s.photos.Delete(photoFolder, existing.Photo); err != nil {
			logger.Errorf("Failed to remove photo %s of deleted member %d: %v", existing.Photo, id, err)
		}
	}

	return nil
}

func (s *service) GetAll(ctx context.Context) ([]Member, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetDetails(ctx context.Context, id int) (*MemberWithMembership, error) {
	m, err := s.repo.GetWithMembership(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) getExisting(ctx context.Context, id int) (*Member, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return existing, nil
}
