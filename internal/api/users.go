package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// User is a customer account on the platform.
type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Plan        string     `json:"plan"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type UserCreate struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Plan     string `json:"plan,omitempty"`
}

type UserUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Plan     *string `json:"plan,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type UserList struct {
	Items []User `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
}

// Admin is an administrator account with panel access.
type Admin struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminCreate struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AdminList struct {
	Items []Admin `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Pages int     `json:"pages"`
}

func (c *Client) ListUsers(ctx context.Context, opts ListOptions) (UserList, error) {
	var list UserList
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("users", opts.values()), nil), &list)
	return list, err
}

func (c *Client) GetUser(ctx context.Context, id int64) (User, error) {
	var user User
	err := decode(c.Do(ctx, http.MethodGet, resourcePath(fmt.Sprintf("users/%d", id), url.Values{}), nil), &user)
	return user, err
}

func (c *Client) CreateUser(ctx context.Context, req UserCreate) (User, error) {
	var user User
	err := decode(c.Do(ctx, http.MethodPost, resourcePath("users", url.Values{}), req), &user)
	return user, err
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req UserUpdate) (User, error) {
	var user User
	err := decode(c.Do(ctx, http.MethodPut, resourcePath(fmt.Sprintf("users/%d", id), url.Values{}), req), &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, resourcePath(fmt.Sprintf("users/%d", id), url.Values{}), nil).Err()
}

func (c *Client) ListAdmins(ctx context.Context, opts ListOptions) (AdminList, error) {
	var list AdminList
	err := decode(c.Do(ctx, http.MethodGet, resourcePath("admins", opts.values()), nil), &list)
	return list, err
}

func (c *Client) CreateAdmin(ctx context.Context, req AdminCreate) (Admin, error) {
	var admin Admin
	err := decode(c.Do(ctx, http.MethodPost, resourcePath("admins", url.Values{}), req), &admin)
	return admin, err
}

func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, resourcePath(fmt.Sprintf("admins/%d", id), url.Values{}), nil).Err()
}
