package notification

import (
	"encoding/json"
	"time"
)

type DispatchReq struct {
	Route      string          `json:"route"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Channels   []string        `json:"channels"`
	Parameters json.RawMessage `json:"parameters"`
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type DispatchResp struct {
	Title                  string        `json:"title"`
	Route                  string        `json:"route"`
	CreatedAt              time.Time     `json:"createdAt"`
	Recipients             []UserSummary `json:"recipients"`
	CreatedNotificationIDs []string      `json:"createdNotificationIds"`
	StatusMessage          string        `json:"statusMessage"`
}

type ListReq struct {
	UserID int64 `form:"userId" json:"userId"`
	Offset int   `form:"offset" json:"offset"`
	Limit  int   `form:"limit" json:"limit"`
}

type ChannelState struct {
	Channel   string    `json:"channel"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Notification struct {
	ID                    string         `json:"id"`
	Title                 string         `json:"title"`
	Message               string         `json:"message"`
	Route                 string         `json:"route"`
	CreatedAt             time.Time      `json:"createdAt"`
	RecipientID           int64          `json:"recipientId"`
	DeliveryChannelsState []ChannelState `json:"deliveryChannelsState"`
}

type ListResp struct {
	Notifications []Notification `json:"notifications"`
}

type MarkReadReq struct {
	NotificationID string `json:"notificationId"`
	UserID         int64  `json:"userId"`
}

type SetPreferenceReq struct {
	UserID  int64  `json:"userId"`
	Route   string `json:"route"`
	Enabled bool   `json:"enabled"`
}

type ListPreferencesReq struct {
	UserID int64 `form:"userId" json:"userId"`
}

type Preference struct {
	Route   string `json:"route"`
	Enabled bool   `json:"enabled"`
}

type ListPreferencesResp struct {
	Preferences []Preference `json:"preferences"`
}
