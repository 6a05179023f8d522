package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FullName     string    `json:"fullName"`
	Username     *string   `json:"username" gorm:"uniqueIndex;size:64"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:128"`
	Phone        string    `json:"phone" gorm:"uniqueIndex;size:32"`
	PasswordHash string    `json:"-"`
	Gender       string    `json:"gender"`
	ProfileImage []byte    `json:"profileImage,omitempty" gorm:"type:longblob"`
	Status       string    `json:"status"`
	Role         string    `json:"role"`
	Addresses    []Address `json:"addresses" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Address struct {
	gorm.Model
	AddressID    string `json:"addressId" gorm:"uniqueIndex;size:32"`
	UserID       uint   `json:"userId"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Division     string `json:"division"`
	District     string `json:"district"`
	Upazila      string `json:"upazila"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"isDefault"`
}

type LoginData struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
