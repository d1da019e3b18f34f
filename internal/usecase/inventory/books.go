package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
)

// Publication years are accepted within [minYear, current year + 1]; next
// year's titles show up in catalogs ahead of print.
const minYear = -1000

// AddBook validates the metadata and either registers a new catalog entry
// or, when an entry with the same trimmed title and author already exists,
// adds one more copy to it.
func (i *inventoryImpl) AddBook(ctx context.Context, title string, author string, year int, genre string) (entity.Book, error) {
	i.logger.Info("Add book request is being made to the database.")

	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	maxYear := i.now().Year() + 1
	if year > maxYear {
		return entity.Book{}, fmt.Errorf("%w: %d is after %d", entity.ErrInvalidYear, year, maxYear)
	}
	if year < minYear {
		return entity.Book{}, fmt.Errorf("%w: %d is before %d", entity.ErrInvalidYear, year, minYear)
	}

	var book entity.Book

	err := i.transactor.WithTx(ctx, func(ctx context.Context) error {
		existing, txErr := i.bookRepository.FindByTitleAuthor(ctx, title, author)

		if txErr == nil {
			existing.TotalCopies++
			existing.AvailableCopies++

			if txErr = i.bookRepository.Update(ctx, existing); txErr != nil {
				return txErr
			}

			book = existing
			return i.sendBookEvent(ctx, book)
		}

		if !errors.Is(txErr, entity.ErrBookNotFound) {
			return txErr
		}

		book, txErr = i.bookRepository.Add(ctx, entity.Book{
			ID:              uuid.NewString(),
			Title:           title,
			Author:          author,
			Year:            year,
			Genre:           genre,
			TotalCopies:     1,
			AvailableCopies: 1,
		})

		if txErr != nil {
			return txErr
		}

		return i.sendBookEvent(ctx, book)
	})

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (i *inventoryImpl) Search(ctx context.Context, query string) ([]entity.Book, error) {
	return i.bookRepository.Search(ctx, strings.TrimSpace(query))
}

func (i *inventoryImpl) sendBookEvent(ctx context.Context, book entity.Book) error {
	serialized, err := jsoniter.ConfigFastest.Marshal(book)
	if err != nil {
		return err
	}

	idempotencyKey := repository.OutboxKindBook.String() + "_" + uuid.NewString()
	return i.outboxRepository.SendMessage(ctx, idempotencyKey, repository.OutboxKindBook, serialized)
}
