package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/album-catalog/domain"
)

const (
	countAlbumsQuery = "SELECT count\\(\\*\\) FROM `albums` WHERE id = \\?"
	countLikesQuery  = "SELECT count\\(\\*\\) FROM `user_album_likes` WHERE album_id = \\?"
	insertLikeQuery  = "INSERT INTO `user_album_likes`"
	deleteLikeQuery  = "DELETE FROM `user_album_likes` WHERE user_id = \\? AND album_id = \\?"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestAddLike(t *testing.T) {
	like := domain.AlbumLike{
		AlbumID: faker.UUIDHyphenated(),
		UserID:  faker.UUIDHyphenated(),
	}

	t.Run("success", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(countAlbumsQuery).
			WithArgs(like.AlbumID).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
		mock.ExpectExec(insertLikeQuery).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewLikeRepository(gdb).AddLike(context.TODO(), like)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already liked", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(countAlbumsQuery).
			WithArgs(like.AlbumID).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
		mock.ExpectExec(insertLikeQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := NewLikeRepository(gdb).AddLike(context.TODO(), like)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("album not found", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(countAlbumsQuery).
			WithArgs(like.AlbumID).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
		mock.ExpectRollback()

		err := NewLikeRepository(gdb).AddLike(context.TODO(), like)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert fails", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(countAlbumsQuery).
			WithArgs(like.AlbumID).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
		mock.ExpectExec(insertLikeQuery).WillReturnError(errors.New("deadlock"))
		mock.ExpectRollback()

		err := NewLikeRepository(gdb).AddLike(context.TODO(), like)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveLike(t *testing.T) {
	like := domain.AlbumLike{
		AlbumID: faker.UUIDHyphenated(),
		UserID:  faker.UUIDHyphenated(),
	}

	t.Run("existing like", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectExec(deleteLikeQuery).
			WithArgs(like.UserID, like.AlbumID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewLikeRepository(gdb).RemoveLike(context.TODO(), like))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("never liked", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectExec(deleteLikeQuery).
			WithArgs(like.UserID, like.AlbumID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, NewLikeRepository(gdb).RemoveLike(context.TODO(), like))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountLikes(t *testing.T) {
	albumID := faker.UUIDHyphenated()

	t.Run("success", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectQuery(countAlbumsQuery).
			WithArgs(albumID).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
		mock.ExpectQuery(countLikesQuery).
			WithArgs(albumID).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

		likes, err := NewLikeRepository(gdb).CountLikes(context.TODO(), albumID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), likes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("album not found", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectQuery(countAlbumsQuery).
			WithArgs(albumID).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

		_, err := NewLikeRepository(gdb).CountLikes(context.TODO(), albumID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
