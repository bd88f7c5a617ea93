package trainer

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/storage"
)

const photoFolder = "trainers"

var (
	ErrTrainerNotFound   = errors.New("trainer not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrPhoneTaken        = errors.New("phone already registered")
	ErrHasFutureSessions = errors.New("trainer has upcoming sessions")
	ErrInvalidDate       = errors.New("invalid date")
)

type Service interface {
	Create(ctx context.Context, req CreateTrainerRequest, photo *multipart.FileHeader) (*Trainer, error)
	Update(ctx context.Context, id int, req UpdateTrainerRequest, photo *multipart.FileHeader) (*Trainer, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
}

type service struct {
	repo   Repository
	photos storage.Store
}

func NewService(repo Repository, photos storage.Store) Service {
	return &service{repo: repo, photos: photos}
}

func (s *service) Create(ctx context.Context, req CreateTrainerRequest, photo *multipart.FileHeader) (*Trainer, error) {
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
		return nil, ErrInvalidDate
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var photoName string
	if photo != nil {
		photoName, err = s.photos.Upload(photoFolder, photo)
		if err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, &Trainer{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    dob,
		Gender:         req.Gender,
		Street:         req.Street,
		City:           req.City,
		BuildingNumber: req.BuildingNumber,
		Photo:          photoName,
		Speciality:     req.Speciality,
		BasicSalary:    req.BasicSalary,
		HireDate:       hireDate,
	})
	if err != nil {
		if photoName != "" {
			if delErr := s.photos.Delete(photoFolder, photoName); delErr != nil {
				logger.Errorf("Failed to remove photo %s after insert failure: %v", photoName, delErr)
			}
		}
		return nil, err
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateTrainerRequest, photo *multipart.FileHeader) (*Trainer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTrainerNotFound
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
	existing.Speciality = req.Speciality
	existing.BasicSalary = req.BasicSalary

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
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrTrainerNotFound
	}

	hasFuture, err := s.repo.HasFutureSessions(ctx, id)
	if err != nil {
		return err
	}
	if hasFuture {
		return ErrHasFutureSessions
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Photo != "" {
		if err := s.photos.Delete(photoFolder, existing.Photo); err != nil {
			logger.Errorf("Failed to remove photo %s of deleted trainer %d: %v", existing.Photo, id, err)
		}
	}

	return nil
}

func (s *service) GetAll(ctx context.Context) ([]Trainer, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Trainer, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTrainerNotFound
	}
	return t, nil
}
