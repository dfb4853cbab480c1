package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/book/domain"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Book{})
}

func (r *GormBookRepository) Create(book *domain.Book) error {
	err := r.db.Create(book).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrISBNTaken
	}
	return err
}

func (r *GormBookRepository) FindByID(id uint) (*domain.Book, error) {
	var book domain.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) FindByISBN(isbn string) (*domain.Book, error) {
	var book domain.Book
	err := r.db.Where("isbn = ?", isbn).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) FindAll(limit, offset int) ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&books).Error
	return books, err
}

func (r *GormBookRepository) FindByGenre(genre string, limit, offset int) ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Where("genre = ?", genre).Limit(limit).Offset(offset).Order("id").Find(&books).Error
	return books, err
}

func (r *GormBookRepository) Update(book *domain.Book) error {
	err := r.db.Save(book).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrISBNTaken
	}
	return err
}

func (r *GormBookRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *GormBookRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Book{}).Count(&count).Error
	return count, err
}
