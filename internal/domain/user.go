package domain

// User 接收人
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DeviceToken string `json:"deviceToken,omitempty"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// UserRoutePreference 用户对某个路由的订阅开关，没有记录视为开启
type UserRoutePreference struct {
	UserID  int64  `json:"userId"`
	Route   string `json:"route"`
	Enabled bool   `json:"enabled"`
}
