package v1

import (
	"fmt"
	"time"

	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name     string            `json:"name" example:"Layla" default:""`                  // Name of the user
	Email    string            `json:"email" example:"layla@example.com" default:""`     // E-mail address, unique
	Password string            `json:"password,omitempty" example:"correct horse"`       // Password. Only stored as a bcrypt hash
	Role     models.Role       `json:"role" example:"volunteer" enums:"admin,volunteer"` // Role of the user, defaults to volunteer
	Status   models.UserStatus `json:"status" example:"active" enums:"active,inactive"`  // Status of the user, defaults to active. Only active users receive alerts
}

// model returns the user with the password hashed.
func (editable UserEditable) model() (models.User, error) {
	user := models.User{
		Name:   editable.Name,
		Email:  editable.Email,
		Role:   editable.Role,
		Status: editable.Status,
	}

	err := user.SetPassword(editable.Password)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// apply sets all fields of the user that are set in the request body.
func (editable UserEditable) apply(user *models.User, fields []string) error {
	for _, field := range fields {
		switch field {
		case "Name":
			user.Name = editable.Name
		case "Email":
			user.Email = editable.Email
		case "Role":
			user.Role = editable.Role
		case "Status":
			user.Status = editable.Status
		case "Password":
			err := user.SetPassword(editable.Password)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

type UserLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/users/9b2f5b45-3e0a-4c8d-8a4f-ff2f3e1b9a10"`                       // The user itself
	Notifications string `json:"notifications" example:"https://example.com/api/v1/notifications?user=9b2f5b45-3e0a-4c8d-8a4f-ff2f3e1b9a10"` // Notifications for the user
}

type User struct {
	models.DefaultModel
	Name       string            `json:"name" example:"Layla"`                      // Name of the user
	Email      string            `json:"email" example:"layla@example.com"`         // E-mail address
	Role       models.Role       `json:"role" example:"volunteer"`                  // Role of the user
	Status     models.UserStatus `json:"status" example:"active"`                   // Status of the user
	LastActive *time.Time        `json:"lastActive" example:"2025-03-14T10:00:00Z"` // Last time the user was active
	Links      UserLinks         `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		Role:         model.Role,
		Status:       model.Status,
		LastActive:   model.LastActive,
		Links: UserLinks{
			Self:          fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Notifications: fmt.Sprintf("%s/v1/notifications?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Data  []UserResponse `json:"data"`                                                          // List of the created users or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (u *UserCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	u.Data = append(u.Data, UserResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Name   string            `form:"name" filterField:"false"`   // By name
	Role   models.Role       `form:"role"`                       // By role
	Status models.UserStatus `form:"status"`                     // By status
	Search string            `form:"search" filterField:"false"` // By string in name or e-mail address
	Offset uint              `form:"offset" filterField:"false"` // The offset of the first user returned. Defaults to 0.
	Limit  int               `form:"limit" filterField:"false"`  // Maximum number of users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		Role:   f.Role,
		Status: f.Status,
	}
}
