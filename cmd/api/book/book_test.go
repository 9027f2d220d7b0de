package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/book"
	bookmock "github.com/library-service/cmd/api/book/mocks"
	"github.com/library-service/cmd/api/pkgerrors"
	"github.com/library-service/cmd/api/query"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

var ctx context.Context = context.Background()

func TestCreateBook(t *testing.T) {

	t.Run("creates a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		reqBook := book.Book{Title: "As aventuras", Author: "Artur", Isbn: "001"}
		newID := uuid.New()

		mockRepo.EXPECT().ExistsBookByIsbn(gomock.Any(), "001").Return(false, nil)
		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b book.Book) (book.Book, error) {
			is.Equal(b.ID, uuid.Nil) //identity is assigned by the store
			is.Equal(b.Title, reqBook.Title)
			is.Equal(b.Author, reqBook.Author)
			is.Equal(b.Isbn, reqBook.Isbn)
			b.ID = newID
			return b, nil
		})

		createdBook, err := mS.Create(ctx, reqBook)
		is.NoErr(err)
		is.Equal(createdBook.ID, newID)
		is.Equal(createdBook.Title, reqBook.Title)
	})

	t.Run("expected conflict error when isbn is already registered", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		mockRepo.EXPECT().ExistsBookByIsbn(gomock.Any(), "001").Return(true, nil)
		//CreateBook must never be reached.

		createdBook, err := mS.Create(ctx, book.Book{Title: "Another", Author: "Someone", Isbn: "001"})
		is.True(errors.Is(err, book.ErrResponseIsbnAlreadyRegistered))
		is.True(errors.Is(err, pkgerrors.ErrConflict))
		is.Equal(createdBook, book.Book{})
	})

	t.Run("expected conflict error when the store detects the isbn race", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		mockRepo.EXPECT().ExistsBookByIsbn(gomock.Any(), "002").Return(false, nil)
		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(book.Book{}, book.ErrResponseIsbnAlreadyRegistered)

		_, err := mS.Create(ctx, book.Book{Isbn: "002"})
		is.True(errors.Is(err, pkgerrors.ErrConflict))
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		mockRepo.EXPECT().ExistsBookByIsbn(gomock.Any(), "003").Return(false, context.DeadlineExceeded)

		_, err := mS.Create(ctx, book.Book{Isbn: "003"})
		is.True(errors.Is(err, context.DeadlineExceeded))
		is.Equal(err.Error(), "timeout on call to Create: "+context.DeadlineExceeded.Error())
	})
}

func TestUpdateBook(t *testing.T) {
	t.Run("updates a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		reqBook := book.Book{ID: uuid.New(), Title: "Updated title", Author: "Updated author", Isbn: "001"}

		mockRepo.EXPECT().UpdateBook(gomock.Any(), reqBook).Return(reqBook, nil)

		updatedBook, err := mS.Update(ctx, reqBook)
		is.NoErr(err)
		is.Equal(updatedBook, reqBook)
	})

	t.Run("expected invalid argument error when id is absent", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		updatedBook, err := mS.Update(ctx, book.Book{Title: "No id"})
		is.True(errors.Is(err, book.ErrResponseBookIDRequired))
		is.True(errors.Is(err, pkgerrors.ErrInvalidArgument))
		is.Equal(updatedBook, book.Book{})
	})

	t.Run("does not check the isbn on update", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		reqBook := book.Book{ID: uuid.New(), Isbn: "already-used"}
		//ExistsBookByIsbn is not expected.
		mockRepo.EXPECT().UpdateBook(gomock.Any(), reqBook).Return(reqBook, nil)

		_, err := mS.Update(ctx, reqBook)
		is.NoErr(err)
	})

	t.Run("expected not found error from the store", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		reqBook := book.Book{ID: uuid.New()}
		mockRepo.EXPECT().UpdateBook(gomock.Any(), reqBook).Return(book.Book{}, book.ErrResponseBookNotFound)

		_, err := mS.Update(ctx, reqBook)
		is.True(errors.Is(err, pkgerrors.ErrNotFound))
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("deletes a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		id := uuid.New()
		mockRepo.EXPECT().DeleteBook(gomock.Any(), id).Return(nil)

		err := mS.Delete(ctx, book.Book{ID: id})
		is.NoErr(err)
	})

	t.Run("expected invalid argument error when id is absent", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		err := mS.Delete(ctx, book.Book{Isbn: "001"})
		is.True(errors.Is(err, book.ErrResponseBookIDRequired))
	})
}

func TestGetBook(t *testing.T) {
	t.Run("Gets a book by ID without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		b := book.Book{ID: uuid.New(), Title: "Fetched", Author: "Author", Isbn: "010"}
		mockRepo.EXPECT().GetBookByID(gomock.Any(), b.ID).Return(b, nil)

		returnedBook, err := mS.GetByID(ctx, b.ID)
		is.NoErr(err)
		is.Equal(returnedBook, b)
	})

	t.Run("expected not found error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		id := uuid.New()
		mockRepo.EXPECT().GetBookByID(gomock.Any(), id).Return(book.Book{}, book.ErrResponseBookNotFound)

		_, err := mS.GetByID(ctx, id)
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})

	t.Run("Gets a book by isbn without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		b := book.Book{ID: uuid.New(), Isbn: "011"}
		mockRepo.EXPECT().GetBookByIsbn(gomock.Any(), "011").Return(b, nil)

		returnedBook, err := mS.GetByIsbn(ctx, "011")
		is.NoErr(err)
		is.Equal(returnedBook, b)
	})
}

func TestListAllBooks(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	mockRepo := bookmock.NewMockRepository(ctrl)
	mS := book.NewService(mockRepo)

	books := []book.Book{{ID: uuid.New(), Isbn: "1"}, {ID: uuid.New(), Isbn: "2"}}
	mockRepo.EXPECT().ListAllBooks(gomock.Any()).Return(books, nil)

	returnedBooks, err := mS.ListAll(ctx)
	is.NoErr(err)
	is.Equal(returnedBooks, books)
}

func TestFindBooks(t *testing.T) {
	t.Run("passes only the set filter fields to the store", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		page := query.PageRequest{Page: 0, Size: 10}
		expected := query.NewPage([]book.Book{{ID: uuid.New(), Title: "As aventuras"}}, page, 1)

		mockRepo.EXPECT().FindBooks(gomock.Any(), gomock.Any(), page).DoAndReturn(func(ctx context.Context, filter query.Example, p query.PageRequest) (query.Page[book.Book], error) {
			is.Equal(len(filter.Fields()), 1)
			is.Equal(filter.Fields()[0], query.Contains(book.ColumnTitle, "avent"))
			return expected, nil
		})

		result, err := mS.Find(ctx, book.Book{Title: "avent"}, page)
		is.NoErr(err)
		is.Equal(result, expected)
	})

	t.Run("expected invalid page error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo)

		result, err := mS.Find(ctx, book.Book{}, query.PageRequest{Page: -1, Size: 10})
		is.True(errors.Is(err, pkgerrors.ErrResponseQueryPageInvalid))
		is.Equal(result.TotalElements, 0)
	})
}

func TestBookExample(t *testing.T) {
	is := is.New(t)

	is.True(book.Book{}.Example().IsEmpty())

	b := book.Book{ID: uuid.New(), Title: "As aventuras", Author: "Artur", Isbn: "001"}
	is.True(book.Book{Author: "ART"}.Example().Matches(b.Column))
	is.True(book.Book{ID: b.ID}.Example().Matches(b.Column))
	is.True(!book.Book{ID: uuid.New()}.Example().Matches(b.Column))
}
