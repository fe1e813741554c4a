package dao

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ego-component/egorm"
	mysqlerr "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"notification-dispatch/internal/errs"
)

func newMockDB(t *testing.T) (*egorm.Component, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestNotificationDAO_BatchCreate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "通知和渠道状态一起写入",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `notification`").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectExec("INSERT INTO `notification_channel_state`").
					WillReturnResult(sqlmock.NewResult(1, 3))
				mock.ExpectCommit()
			},
		},
		{
			name: "主键冲突",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `notification`").
					WillReturnError(&mysqlerr.MySQLError{Number: 1062, Message: "Duplicate entry"})
				mock.ExpectRollback()
			},
			wantErr: errs.ErrNotificationDuplicate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			tc.mock(mock)

			d := NewNotificationDAO(db)
			err := d.BatchCreate(t.Context(), []Notification{
				{ID: 1, Title: "t", Route: "OrderCreated", RecipientID: 1},
				{ID: 2, Title: "t", Route: "OrderCreated", RecipientID: 2},
			}, []NotificationChannelState{
				{NotificationID: 1, Channel: "EMAIL", Status: "PENDING"},
				{NotificationID: 1, Channel: "PUSH", Status: "PENDING"},
				{NotificationID: 2, Channel: "EMAIL", Status: "PENDING"},
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotificationDAO_BatchCreateEmpty(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	err := NewNotificationDAO(db).BatchCreate(t.Context(), nil, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationDAO_CASStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "状态符合", affected: 1},
		{name: "状态不符", affected: 0, wantErr: errs.ErrInvalidStatusTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE `notification_channel_state` SET").
				WithArgs("READ", sqlmock.AnyArg(), uint64(7), "IN_APP", "SENT").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))
			mock.ExpectCommit()

			err := NewNotificationDAO(db).CASStatus(t.Context(), 7, "IN_APP", "SENT", "READ")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotificationDAO_GetByIDNotFound(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `notification`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewNotificationDAO(db).GetByID(t.Context(), 42)
	assert.ErrorIs(t, err, errs.ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationDAO_FindStates(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `notification_channel_state`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "notification_id", "channel", "status"}).
			AddRow(1, 10, "EMAIL", "SENT").
			AddRow(2, 10, "PUSH", "FAILED").
			AddRow(3, 11, "EMAIL", "SKIPPED"))

	res, err := NewNotificationDAO(db).FindStates(t.Context(), []uint64{10, 11})
	require.NoError(t, err)
	require.Len(t, res[10], 2)
	require.Len(t, res[11], 1)
	assert.Equal(t, "FAILED", res[10][1].Status)
	assert.Equal(t, "SKIPPED", res[11][0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateDAO_GetByName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
		check   func(t *testing.T, tpl Template)
	}{
		{
			name: "查询成功",
			rows: sqlmock.NewRows([]string{"id", "name", "subject", "content", "channel_overrides"}).
				AddRow(1, "order-created", "Order {{orderNumber}}", "Hi {{customerName}}", `{"SMS":"short"}`),
			check: func(t *testing.T, tpl Template) {
				assert.Equal(t, "order-created", tpl.Name)
				require.True(t, tpl.ChannelOverrides.Valid)
				assert.Equal(t, "short", tpl.ChannelOverrides.Val["SMS"])
			},
		},
		{
			name:    "模板不存在",
			rows:    sqlmock.NewRows([]string{"id"}),
			wantErr: errs.ErrTemplateNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			mock.ExpectQuery("SELECT \\* FROM `notification_template`").WillReturnRows(tc.rows)

			tpl, err := NewTemplateDAO(db).GetByName(t.Context(), "order-created")
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				tc.check(t, tpl)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserDAO(t *testing.T) {
	t.Parallel()

	t.Run("FindByID 不存在", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `user`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
		_, err := NewUserDAO(db).FindByID(t.Context(), 3)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("FindByIDs 空列表不查库", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		users, err := NewUserDAO(db).FindByIDs(t.Context(), nil)
		require.NoError(t, err)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindByIDs", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `user` WHERE id IN").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
				AddRow(1, "Ann", "ann@example.com").
				AddRow(2, "Bob", "bob@example.com"))
		users, err := NewUserDAO(db).FindByIDs(t.Context(), []int64{1, 2})
		require.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "Bob", users[1].Name)
	})
}

func TestPreferenceDAO_Find(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		rows      *sqlmock.Rows
		wantFound bool
		wantPref  UserRoutePreference
	}{
		{
			name:      "没有记录",
			rows:      sqlmock.NewRows([]string{"id", "user_id", "route", "enabled"}),
			wantFound: false,
		},
		{
			name: "关闭了路由",
			rows: sqlmock.NewRows([]string{"id", "user_id", "route", "enabled"}).
				AddRow(1, 5, "OrderCreated", false),
			wantFound: true,
			wantPref:  UserRoutePreference{ID: 1, UserID: 5, Route: "OrderCreated", Enabled: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			mock.ExpectQuery("SELECT \\* FROM `user_route_preference`").WillReturnRows(tc.rows)

			pref, found, err := NewPreferenceDAO(db).Find(t.Context(), 5, "OrderCreated")
			require.NoError(t, err)
			assert.Equal(t, tc.wantFound, found)
			assert.Equal(t, tc.wantPref, pref)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPreferenceDAO_Upsert(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user_route_preference` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := NewPreferenceDAO(db).Upsert(t.Context(), UserRoutePreference{UserID: 5, Route: "OrderCreated"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
